package product

import (
	"context"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, ident Identifier) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, ident Identifier) error

	Categories(ctx context.Context) ([]string, error)
	Collections(ctx context.Context) ([]string, error)
}
