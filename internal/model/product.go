package model

// Product represents one record in the catalog.
type Product struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"inStock"`
}

// ProductInput is the request body for creating a product. All three
// fields are required; pointers distinguish an absent field from its
// zero value.
type ProductInput struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	InStock *bool    `json:"inStock"`
}

// ProductPatch is the request body for updating a product. Any subset
// of fields may be supplied; only supplied fields are changed.
type ProductPatch struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	InStock *bool    `json:"inStock"`
}

// Apply merges the supplied fields of the patch into the product.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.InStock != nil {
		product.InStock = *p.InStock
	}
}
