// internal/models/common.go
package models

// Collection names a JSON document persisted as <dataDir>/<name>.json.
type Collection string

const (
	CollectionProducts Collection = "products"
	CollectionHome     Collection = "home"
	CollectionContact  Collection = "contact"
	CollectionMessages Collection = "messages"
	CollectionAdmin    Collection = "admin"
)

func (c Collection) FileName() string {
	return string(c) + ".json"
}

// Enums
type ProductCategory string

const (
	CategorySuits ProductCategory = "suits"
	CategoryPants ProductCategory = "pants"
	CategoryWeave ProductCategory = "weave"
	CategoryShirt ProductCategory = "shirt"
)

// Categories lists the catalog sections in display order.
var Categories = []ProductCategory{CategorySuits, CategoryPants, CategoryWeave, CategoryShirt}

func (c ProductCategory) Valid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Bilingual is an English/Persian text pair.
type Bilingual struct {
	En string `json:"en"`
	Fa string `json:"fa"`
}

// CategoryLabels carries the catalog section titles shown on the products page.
var CategoryLabels = map[ProductCategory]Bilingual{
	CategorySuits: {En: "Suits", Fa: "کت و شلوار"},
	CategoryPants: {En: "Pants", Fa: "شلوار"},
	CategoryWeave: {En: "Weave", Fa: "بافت"},
	CategoryShirt: {En: "Shirts", Fa: "پیراهن"},
}
