package dto

import "github.com/shoppilot/shoppilot-assistant/internal/model"

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Collection  string // Optional
	Stock       int
	IsVisible   *bool // nil defaults to visible
	Tags        []string
	SKU         string // Optional, unique when set
	Images      []string
	Weight      *float64
	Dimensions  *model.Dimensions
}

// UpdateProductInput is a partial patch: nil fields are left untouched.
// Stock is deliberately absent; stock moves only through the inventory
// usecase so every mutation is clamped and audited.
type UpdateProductInput struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Collection  *string
	IsVisible   *bool
	Tags        []string // nil leaves tags unchanged
	SKU         *string
	Images      []string // nil leaves images unchanged
	Weight      *float64
	Dimensions  *model.Dimensions
}
