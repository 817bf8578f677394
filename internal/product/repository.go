package product

import (
	"context"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product/dto"
)

// Repository is the product side of the store. Missing entities are reported
// as nil results, never as errors; the usecase layer translates them.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindFirstByName(ctx context.Context, fragment string) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) (bool, error)

	// Uniqueness checks for create/update policy
	IsSKUUnique(ctx context.Context, sku, excludeID string) (bool, error)
	IsNameUnique(ctx context.Context, name, excludeID string) (bool, error)

	Categories(ctx context.Context) ([]string, error)
	Collections(ctx context.Context) ([]string, error)
}
