package model

type Product struct {
	BaseModel
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Collection  *string     `json:"collection"` // Nullable
	Stock       int         `json:"stock"`
	IsVisible   bool        `json:"is_visible"`
	Tags        []string    `json:"tags"`
	SKU         *string     `json:"sku"`    // Nullable, unique when present
	Images      []string    `json:"images"` // Optional
	Weight      *float64    `json:"weight"` // Nullable, grams
	Dimensions  *Dimensions `json:"dimensions"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// InStock reports whether the product has any on-hand quantity.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
