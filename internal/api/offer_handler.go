package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/perlow/catalog-api/internal/api/shared"
)

// OfferHandler handles the nested-shape echo endpoints.
type OfferHandler struct {
	validator *validator.Validate
	logger    *slog.Logger
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(logger *slog.Logger) *OfferHandler {
	if logger == nil {
		panic("logger must not be nil")
	}
	return &OfferHandler{
		validator: shared.Validate,
		logger:    logger,
	}
}

// CreateOffer handles POST /offers/. The offer, including every nested
// item, is validated and echoed back. Nothing is stored.
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var offer Offer
	if err := shared.DecodeJSON(r, &offer); err != nil {
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(offer); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	for i := range offer.Items {
		offer.Items[i].Tags = dedupeTags(offer.Items[i].Tags)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, offer)
}

// CreateMultipleImages handles POST /images/multiple/, validating and
// echoing an ordered sequence of images.
func (h *OfferHandler) CreateMultipleImages(w http.ResponseWriter, r *http.Request) {
	var images []Image
	if err := shared.DecodeJSON(r, &images); err != nil {
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(imageList{Images: images}); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, images)
}
