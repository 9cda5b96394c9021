package api

import (
	"github.com/google/uuid"

	"github.com/perlow/catalog-api/internal/domain"
)

// Request and response shapes for the endpoint contract table. Every
// constraint lives in the validate tags; the handlers only see input
// that already satisfies its declared shape.

// Image is a nested shape carried by Item and by the bulk image route.
type Image struct {
	URL  string `json:"url"  validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

// Item is the main catalog shape.
type Item struct {
	Name        string   `json:"name"        validate:"required"`
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Tax         *float64 `json:"tax"`
	Tags        []string `json:"tags"`
	Image       *Image   `json:"image"`
}

// dedupeTags drops repeated tags, keeping the first occurrence of each.
// A nil slice becomes an empty one so responses always carry "tags": [].
func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Offer groups an ordered sequence of items under one price.
type Offer struct {
	Name        string  `json:"name"  validate:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"required"`
	Items       []Item  `json:"items" validate:"required,dive"`
}

// UserIn is the input shape for user creation. Password is input-only:
// no response shape carries it.
type UserIn struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	FullName *string `json:"full_name"`
}

// UserOut is the projection of UserIn with the password removed.
type UserOut struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

// User is the bare user shape embedded in the item update body.
type User struct {
	Username string  `json:"username" validate:"required"`
	FullName *string `json:"full_name"`
}

// LoginRequest defines the form fields for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse echoes the authenticated username. The endpoint is a
// stub: no credential check, no session.
type LoginResponse struct {
	Username string `json:"username"`
}

// UpdateItemRequest is the composed body for PUT /items/{item_id}.
// Importance is a pointer so a client-supplied zero still counts as present.
type UpdateItemRequest struct {
	Item       Item `json:"item"`
	User       User `json:"user"`
	Importance *int `json:"importance" validate:"required"`
}

// UpdateItemResponse is the composed result of an item update.
type UpdateItemResponse struct {
	ItemID     int  `json:"item_id"`
	Item       Item `json:"item"`
	User       User `json:"user"`
	Importance int  `json:"importance"`
}

// ItemWithTaxResponse echoes a created item, adding price_with_tax when
// the submitted tax is present and non-zero.
type ItemWithTaxResponse struct {
	Item
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

// ItemDetailResponse is the single-item lookup result.
type ItemDetailResponse struct {
	ItemID      uuid.UUID `json:"item_id"`
	Q           string    `json:"q,omitempty"`
	Description string    `json:"description,omitempty"`
}

// UserItemResponse is the composed owner/item lookup result.
type UserItemResponse struct {
	ItemID      string `json:"item_id"`
	OwnerID     int    `json:"owner_id"`
	Q           string `json:"q,omitempty"`
	Description string `json:"description,omitempty"`
}

// imageList wraps the bulk-image body so the slice and every nested
// image can run through struct validation.
type imageList struct {
	Images []Image `json:"images" validate:"required,dive"`
}

// MessageResponse is the fixed greeting shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// ModelResponse pairs a model name with its per-model message.
type ModelResponse struct {
	ModelName domain.ModelName `json:"model_name"`
	Message   string           `json:"message"`
}

// FilePathResponse echoes a captured file path.
type FilePathResponse struct {
	FilePath string `json:"file_path"`
}
