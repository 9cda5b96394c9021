package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/perlow/catalog-api/internal/api/shared"
	"github.com/perlow/catalog-api/internal/domain"
)

// Per-model messages returned by GetModel.
const (
	alexNetMessage  = "Deep Learning FTW!"
	leNetMessage    = "LeCNN all the images"
	residualMessage = "Have some residuals"
)

// SiteHandler handles the routes that take no body: the greeting, the
// model dispatch and the file-path echo.
type SiteHandler struct {
	logger *slog.Logger
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(logger *slog.Logger) *SiteHandler {
	if logger == nil {
		panic("logger must not be nil")
	}
	return &SiteHandler{logger: logger}
}

// Home handles GET /, returning the fixed greeting.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Hello World!"})
}

// GetModel handles GET /models/{model_name}. The path segment is parsed
// into the closed ModelName set before the dispatch runs, so the switch
// only sees known values. Branch order follows the declared dispatch:
// alexnet, then lenet, then the residual default.
func (h *SiteHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	model, err := domain.ParseModelName(chi.URLParam(r, "model_name"))
	if err != nil {
		RespondWithValidationError(w, r,
			domain.NewValidationError("model_name", "must be one of alexnet, resnet, lenet", err))
		return
	}

	resp := ModelResponse{ModelName: model}
	switch model {
	case domain.ModelAlexNet:
		resp.Message = alexNetMessage
	case domain.ModelLeNet:
		resp.Message = leNetMessage
	default:
		resp.Message = residualMessage
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ReadFile handles GET /files/*, echoing the remaining path segments
// including any embedded slashes.
func (h *SiteHandler) ReadFile(w http.ResponseWriter, r *http.Request) {
	filePath := chi.URLParam(r, "*")
	shared.RespondWithJSON(w, r, http.StatusOK, FilePathResponse{FilePath: filePath})
}
