package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	"github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	if input.SKU != "" {
		unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, "")
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("%w: %s", product.ErrDuplicateSKU, input.SKU)
		}
	}

	unique, err := uc.repo.IsNameUnique(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("%w: %s", product.ErrDuplicateName, input.Name)
	}

	id := uuid.New().String()
	now := time.Now()

	visible := true
	if input.IsVisible != nil {
		visible = *input.IsVisible
	}
	var collection *string
	if input.Collection != "" {
		collection = &input.Collection
	}
	var sku *string
	if input.SKU != "" {
		sku = &input.SKU
	}

	p := &model.Product{
		BaseModel:   model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Collection:  collection,
		Stock:       input.Stock,
		IsVisible:   visible,
		Tags:        input.Tags,
		SKU:         sku,
		Images:      input.Images,
		Weight:      input.Weight,
		Dimensions:  input.Dimensions,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("category", p.Category))

	return p, nil
}

func validateCreate(input *dto.CreateProductInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", product.ErrInvalidInput)
	}
	if input.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", product.ErrInvalidInput)
	}
	if input.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", product.ErrInvalidInput)
	}
	return nil
}

// GetProduct resolves an identifier through the matching repository lookup
// and converts the repository's nil sentinel into ErrNotFound.
func (uc *productUseCase) GetProduct(ctx context.Context, ident product.Identifier) (*model.Product, error) {
	p, err := uc.resolve(ctx, ident)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", product.ErrNotFound, ident)
	}
	return p, nil
}

func (uc *productUseCase) resolve(ctx context.Context, ident product.Identifier) (*model.Product, error) {
	switch ident.Kind {
	case product.ByID:
		return uc.repo.FindByID(ctx, ident.Value)
	case product.ByName:
		return uc.repo.FindFirstByName(ctx, ident.Value)
	case product.BySKU:
		return uc.repo.FindBySKU(ctx, ident.Value)
	}
	return nil, fmt.Errorf("%w: %q", product.ErrInvalidIdentifierType, ident.Kind)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]*model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: id=%q", product.ErrNotFound, input.ID)
	}

	if input.SKU != nil && *input.SKU != "" && (p.SKU == nil || *p.SKU != *input.SKU) {
		unique, err := uc.repo.IsSKUUnique(ctx, *input.SKU, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("%w: %s", product.ErrDuplicateSKU, *input.SKU)
		}
	}

	// Merge provided fields over the existing record
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", product.ErrInvalidInput)
		}
		p.Price = *input.Price
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Collection != nil {
		if *input.Collection == "" {
			p.Collection = nil
		} else {
			p.Collection = input.Collection
		}
	}
	if input.IsVisible != nil {
		p.IsVisible = *input.IsVisible
	}
	if input.Tags != nil {
		p.Tags = input.Tags
	}
	if input.SKU != nil {
		if *input.SKU == "" {
			p.SKU = nil
		} else {
			p.SKU = input.SKU
		}
	}
	if input.Images != nil {
		p.Images = input.Images
	}
	if input.Weight != nil {
		p.Weight = input.Weight
	}
	if input.Dimensions != nil {
		p.Dimensions = input.Dimensions
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.String("product_id", p.ID))
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, ident product.Identifier) error {
	p, err := uc.resolve(ctx, ident)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: %s", product.ErrNotFound, ident)
	}

	existed, err := uc.repo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !existed {
		return fmt.Errorf("%w: %s", product.ErrNotFound, ident)
	}

	uc.logger.Info("product deleted",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name))
	return nil
}

func (uc *productUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

func (uc *productUseCase) Collections(ctx context.Context) ([]string, error) {
	return uc.repo.Collections(ctx)
}
