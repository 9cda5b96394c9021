package api

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/perlow/catalog-api/internal/api/shared"
	"github.com/perlow/catalog-api/internal/store"
)

// longItemDescription is the canned description attached to item
// lookups unless the short flag is set.
const longItemDescription = "This is an amazing item that has a long description"

// Parameter schemas owned by the item routes.
var (
	// itemQueryParam is kept for wire compatibility with older clients;
	// the only accepted value is the fixed query string.
	itemQueryParam = QueryParam{
		Name:       "q",
		Alias:      "item-query",
		Kind:       KindString,
		MinLen:     3,
		MaxLen:     50,
		Pattern:    regexp.MustCompile(`^fixedquery$`),
		Deprecated: true,
	}

	shortParam = QueryParam{Name: "short", Kind: KindBool, Default: "false"}
	qParam     = QueryParam{Name: "q", Kind: KindString}
	skipParam  = QueryParam{Name: "skip", Kind: KindInt, Default: "0"}
	limitParam = QueryParam{Name: "limit", Kind: KindInt, Default: "10"}
)

// ItemHandler handles item-related HTTP requests against the seed catalog.
type ItemHandler struct {
	catalog   *store.Catalog
	validator *validator.Validate
	logger    *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(catalog *store.Catalog, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		panic("logger must not be nil")
	}
	return &ItemHandler{
		catalog:   catalog,
		validator: shared.Validate,
		logger:    logger,
	}
}

// ReadItem handles GET /items/{item_id}. The ID must be a UUID present
// in the seed mapping; misses are a 404 with detail "Item not found".
func (h *ItemHandler) ReadItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getPathUUID(r, "item_id")
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	query := r.URL.Query()

	// The item-query constraint is checked before the store lookup, so
	// a bad query value is a 422 even for an unknown item ID.
	q, qPresent, err := itemQueryParam.Value(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}
	if qPresent && itemQueryParam.Deprecated {
		h.logger.Warn("deprecated query parameter supplied",
			slog.String("param", itemQueryParam.WireName()),
			slog.String("path", r.URL.Path))
	}

	short, err := shortParam.Bool(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	if _, err := h.catalog.GetItem(r.Context(), itemID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := ItemDetailResponse{ItemID: itemID}
	if qPresent && q != "" {
		resp.Q = q
	}
	if !short {
		resp.Description = longItemDescription
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ReadUserItem handles GET /users/{user_id}/items/{item_id}.
func (h *ItemHandler) ReadUserItem(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathInt(r, "user_id")
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}
	itemID := chi.URLParam(r, "item_id")

	query := r.URL.Query()
	q, _, err := qParam.Value(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}
	short, err := shortParam.Bool(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	resp := UserItemResponse{ItemID: itemID, OwnerID: userID}
	if q != "" {
		resp.Q = q
	}
	if !short {
		resp.Description = longItemDescription
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListItems handles GET /items/, returning the skip/limit window of the
// fixed item-name list.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, err := skipParam.Int(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}
	limit, err := limitParam.Int(query)
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.catalog.ListItemNames(r.Context(), skip, limit))
}

// CreateItem handles POST /items/. The validated item is echoed back,
// with price_with_tax added when the supplied tax is non-zero. Nothing
// is stored.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := shared.DecodeJSON(r, &item); err != nil {
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(item); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	// Tags behaves like a set: duplicates collapse, first occurrence wins.
	item.Tags = dedupeTags(item.Tags)

	resp := ItemWithTaxResponse{Item: item}
	if item.Tax != nil && *item.Tax != 0 {
		priceWithTax := item.Price + *item.Tax
		resp.PriceWithTax = &priceWithTax
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdateItem handles PUT /items/{item_id}, composing the path ID with
// the nested item, user and importance from the body.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getPathInt(r, "item_id")
	if err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithValidationError(w, r, err)
		return
	}

	req.Item.Tags = dedupeTags(req.Item.Tags)

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateItemResponse{
		ItemID:     itemID,
		Item:       req.Item,
		User:       req.User,
		Importance: *req.Importance,
	})
}
