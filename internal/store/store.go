// Package store holds the read-only seed data that stands in for a real
// datastore. The catalog is constructed once at startup and handed to
// the handlers; nothing mutates it afterwards, so it is safe to share
// across concurrent requests without locking.
//
// This is sample data for a teaching example. It is not a substitute
// for persistent storage and must never be treated as one.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store errors.
var (
	// ErrItemNotFound is returned when an item ID is not in the seed map.
	ErrItemNotFound = errors.New("item not found")
)

// ItemName is one record of the fixed item-name list served by the
// GET /items/ listing route.
type ItemName struct {
	ItemName string `json:"item_name"`
}

// Catalog exposes the two seed structures: an items-by-id mapping and a
// fixed ordered list of item-name records.
type Catalog struct {
	items     map[uuid.UUID]string
	itemNames []ItemName
}

// GetItem looks up the seed description for the given item ID.
// Returns ErrItemNotFound when the ID is not seeded.
func (c *Catalog) GetItem(ctx context.Context, id uuid.UUID) (string, error) {
	desc, ok := c.items[id]
	if !ok {
		return "", ErrItemNotFound
	}
	return desc, nil
}

// ListItemNames returns the [skip, skip+limit) window of the fixed
// item-name list. Out-of-range indices clamp to the list bounds, so the
// result is never an error, only a shorter (possibly empty) slice.
func (c *Catalog) ListItemNames(ctx context.Context, skip, limit int) []ItemName {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip > len(c.itemNames) {
		skip = len(c.itemNames)
	}
	end := skip + limit
	if end > len(c.itemNames) {
		end = len(c.itemNames)
	}
	return c.itemNames[skip:end]
}
