package product

import "errors"

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateSKU  = errors.New("sku already exists")
	ErrDuplicateName = errors.New("product name already exists")
	ErrInvalidInput  = errors.New("invalid product input")
)
