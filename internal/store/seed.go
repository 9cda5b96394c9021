package store

import "github.com/google/uuid"

// SeedItemID is the one item ID present in the seed mapping. Fixed so
// clients of the example (and the tests) can hit the found branch of
// GET /items/{item_id}.
var SeedItemID = uuid.MustParse("8b3f9c2e-4a1d-4e8f-9c6b-2f7a5d1e0b43")

// NewSeededCatalog constructs the catalog with its fixed sample data.
// Called once from main; the returned catalog is read-only.
func NewSeededCatalog() *Catalog {
	return &Catalog{
		items: map[uuid.UUID]string{
			SeedItemID: "foo is not fool",
		},
		itemNames: []ItemName{
			{ItemName: "Foo"},
			{ItemName: "Bar"},
			{ItemName: "Baz"},
		},
	}
}
