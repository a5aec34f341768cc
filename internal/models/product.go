// internal/models/product.go
package models

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	NameFa        string          `json:"nameFa"`
	Description   string          `json:"description"`
	DescriptionFa string          `json:"descriptionFa"`
	Price         string          `json:"price"`
	Image         string          `json:"image"`
	Featured      bool            `json:"featured"`
	Category      ProductCategory `json:"category,omitempty"`
}

// ProductFilter narrows a product listing. Zero value matches everything.
type ProductFilter struct {
	Category ProductCategory
	Featured *bool
}

func (f ProductFilter) IsZero() bool {
	return f.Category == "" && f.Featured == nil
}

func (f ProductFilter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}
