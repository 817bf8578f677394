package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shoppilot/shoppilot-assistant/internal/content"
	"github.com/shoppilot/shoppilot-assistant/internal/inventory"
	invdto "github.com/shoppilot/shoppilot-assistant/internal/inventory/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"github.com/shoppilot/shoppilot-assistant/internal/product"
	productdto "github.com/shoppilot/shoppilot-assistant/internal/product/dto"
	"github.com/shoppilot/shoppilot-assistant/internal/sales"
	salesdto "github.com/shoppilot/shoppilot-assistant/internal/sales/dto"
)

// Deps are the usecases the tool set executes against.
type Deps struct {
	Products  product.UseCase
	Inventory inventory.UseCase
	Sales     sales.UseCase
	Content   content.Generator
}

// RegisterAll binds the full tool set onto the registry.
func RegisterAll(r *Registry, deps Deps) error {
	tools := []Tool{
		checkStockTool(deps),
		getProductTool(deps),
		listProductsTool(deps),
		createProductTool(deps),
		updateProductTool(deps),
		deleteProductTool(deps),
		adjustStockTool(deps),
		lowStockReportTool(deps),
		recordSaleTool(deps),
		salesAnalyticsTool(deps),
		topSellingProductsTool(deps),
		generateDescriptionTool(deps),
		storeCategoriesTool(deps),
	}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

type identifierArgs struct {
	Identifier     string `json:"identifier"`
	IdentifierType string `json:"identifier_type"`
}

func (a identifierArgs) parse() (product.Identifier, error) {
	return product.ParseIdentifier(a.Identifier, a.IdentifierType)
}

func identifierProps() map[string]any {
	return map[string]any{
		"identifier":      prop("string", "Product id, name fragment, or SKU"),
		"identifier_type": enumProp("How to interpret the identifier; defaults to name", "id", "name", "sku"),
	}
}

func checkStockTool(deps Deps) Tool {
	type result struct {
		Product *model.Product `json:"product"`
		Stock   int            `json:"stock"`
		InStock bool           `json:"in_stock"`
	}
	return Tool{
		Name:        "check_stock",
		Description: "Look up the current stock level of a product.",
		Parameters:  schema([]string{"identifier"}, identifierProps()),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[identifierArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			p, err := deps.Products.GetProduct(ctx, ident)
			if err != nil {
				return nil, err
			}
			return &result{Product: p, Stock: p.Stock, InStock: p.InStock()}, nil
		},
	}
}

func getProductTool(deps Deps) Tool {
	return Tool{
		Name:        "get_product",
		Description: "Fetch a single product by id, name fragment, or SKU.",
		Parameters:  schema([]string{"identifier"}, identifierProps()),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[identifierArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			return deps.Products.GetProduct(ctx, ident)
		},
	}
}

func listProductsTool(deps Deps) Tool {
	type listArgs struct {
		Category   string   `json:"category"`
		Collection string   `json:"collection"`
		Tag        string   `json:"tag"`
		MinPrice   *float64 `json:"min_price"`
		MaxPrice   *float64 `json:"max_price"`
		InStock    *bool    `json:"in_stock"`
		IsVisible  *bool    `json:"is_visible"`
	}
	return Tool{
		Name:        "list_products",
		Description: "List products matching optional filters; all filters are combined with AND.",
		Parameters: schema(nil, map[string]any{
			"category":   prop("string", "Case-insensitive category substring"),
			"collection": prop("string", "Case-insensitive collection substring"),
			"tag":        prop("string", "Case-insensitive substring matched against any tag"),
			"min_price":  prop("number", "Minimum price, inclusive"),
			"max_price":  prop("number", "Maximum price, inclusive"),
			"in_stock":   prop("boolean", "true for stock > 0, false for stock == 0"),
			"is_visible": prop("boolean", "Filter by visibility flag"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[listArgs](args)
			if err != nil {
				return nil, err
			}
			return deps.Products.ListProducts(ctx, &productdto.ProductFilters{
				Category:   a.Category,
				Collection: a.Collection,
				Tag:        a.Tag,
				MinPrice:   a.MinPrice,
				MaxPrice:   a.MaxPrice,
				InStock:    a.InStock,
				IsVisible:  a.IsVisible,
			})
		},
	}
}

func createProductTool(deps Deps) Tool {
	type createArgs struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Category    string   `json:"category"`
		Collection  string   `json:"collection"`
		Stock       int      `json:"stock"`
		IsVisible   *bool    `json:"is_visible"`
		Tags        []string `json:"tags"`
		SKU         string   `json:"sku"`
		Images      []string `json:"images"`
		Weight      *float64 `json:"weight"`
	}
	return Tool{
		Name:        "create_product",
		Description: "Create a new product. Fails if the name or SKU is already taken.",
		Parameters: schema([]string{"name", "price", "category"}, map[string]any{
			"name":        prop("string", "Product name, unique across the catalog"),
			"description": prop("string", "Product description"),
			"price":       prop("number", "Unit price, must be positive"),
			"category":    prop("string", "Category name"),
			"collection":  prop("string", "Optional collection name"),
			"stock":       prop("integer", "Initial stock level, defaults to 0"),
			"is_visible":  prop("boolean", "Storefront visibility, defaults to true"),
			"tags":        arrayProp("string", "Ordered list of tags"),
			"sku":         prop("string", "Optional SKU, unique when set"),
			"images":      arrayProp("string", "Image URLs"),
			"weight":      prop("number", "Weight in grams"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[createArgs](args)
			if err != nil {
				return nil, err
			}
			return deps.Products.CreateProduct(ctx, &productdto.CreateProductInput{
				Name:        a.Name,
				Description: a.Description,
				Price:       a.Price,
				Category:    a.Category,
				Collection:  a.Collection,
				Stock:       a.Stock,
				IsVisible:   a.IsVisible,
				Tags:        a.Tags,
				SKU:         a.SKU,
				Images:      a.Images,
				Weight:      a.Weight,
			})
		},
	}
}

func updateProductTool(deps Deps) Tool {
	type updateArgs struct {
		ID          string   `json:"id"`
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Collection  *string  `json:"collection"`
		IsVisible   *bool    `json:"is_visible"`
		Tags        []string `json:"tags"`
		SKU         *string  `json:"sku"`
		Images      []string `json:"images"`
		Weight      *float64 `json:"weight"`
	}
	return Tool{
		Name:        "update_product",
		Description: "Update fields of an existing product by id; omitted fields are left unchanged.",
		Parameters: schema([]string{"id"}, map[string]any{
			"id":          prop("string", "Product id"),
			"name":        prop("string", "New name"),
			"description": prop("string", "New description"),
			"price":       prop("number", "New price, must be positive"),
			"category":    prop("string", "New category"),
			"collection":  prop("string", "New collection; empty string clears it"),
			"is_visible":  prop("boolean", "New visibility"),
			"tags":        arrayProp("string", "Replacement tag list"),
			"sku":         prop("string", "New SKU; empty string clears it"),
			"images":      arrayProp("string", "Replacement image list"),
			"weight":      prop("number", "New weight in grams"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[updateArgs](args)
			if err != nil {
				return nil, err
			}
			return deps.Products.UpdateProduct(ctx, &productdto.UpdateProductInput{
				ID:          a.ID,
				Name:        a.Name,
				Description: a.Description,
				Price:       a.Price,
				Category:    a.Category,
				Collection:  a.Collection,
				IsVisible:   a.IsVisible,
				Tags:        a.Tags,
				SKU:         a.SKU,
				Images:      a.Images,
				Weight:      a.Weight,
			})
		},
	}
}

func deleteProductTool(deps Deps) Tool {
	type result struct {
		Deleted bool `json:"deleted"`
	}
	return Tool{
		Name:        "delete_product",
		Description: "Delete a product. Past sales referencing it are kept.",
		Parameters:  schema([]string{"identifier"}, identifierProps()),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[identifierArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			if err := deps.Products.DeleteProduct(ctx, ident); err != nil {
				return nil, err
			}
			return &result{Deleted: true}, nil
		},
	}
}

func adjustStockTool(deps Deps) Tool {
	type adjustArgs struct {
		identifierArgs
		Operation string `json:"operation"`
		Quantity  int    `json:"quantity"`
		Reason    string `json:"reason"`
	}
	return Tool{
		Name:        "adjust_stock",
		Description: "Add to, subtract from, or set a product's stock. Subtract and set floor at zero.",
		Parameters: schema([]string{"identifier", "operation", "quantity"}, merge(identifierProps(), map[string]any{
			"operation": enumProp("Stock operation to apply", "add", "subtract", "set"),
			"quantity":  prop("integer", "Quantity for the operation, non-negative"),
			"reason":    prop("string", "Optional free-text reason, recorded in the movement log"),
		})),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[adjustArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			return deps.Inventory.AdjustStock(ctx, &invdto.AdjustStockInput{
				Identifier: ident,
				Op:         model.StockOp(a.Operation),
				Quantity:   a.Quantity,
				Reason:     a.Reason,
			})
		},
	}
}

func lowStockReportTool(deps Deps) Tool {
	type reportArgs struct {
		Threshold         int  `json:"threshold"`
		IncludeOutOfStock bool `json:"include_out_of_stock"`
	}
	return Tool{
		Name:        "low_stock_report",
		Description: "Report products at or below the low-stock threshold, with total inventory value at risk.",
		Parameters: schema(nil, map[string]any{
			"threshold":            prop("integer", "Low-stock threshold; defaults to the configured value"),
			"include_out_of_stock": prop("boolean", "Also list products with zero stock"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[reportArgs](args)
			if err != nil {
				return nil, err
			}
			return deps.Inventory.LowStockReport(ctx, &invdto.LowStockInput{
				Threshold:         a.Threshold,
				IncludeOutOfStock: a.IncludeOutOfStock,
			})
		},
	}
}

func recordSaleTool(deps Deps) Tool {
	type saleArgs struct {
		identifierArgs
		Quantity        int      `json:"quantity"`
		UnitPrice       *float64 `json:"unit_price"`
		CustomerEmail   string   `json:"customer_email"`
		CustomerName    *string  `json:"customer_name"`
		ShippingAddress *string  `json:"shipping_address"`
		Status          string   `json:"status"`
		PaymentMethod   string   `json:"payment_method"`
	}
	return Tool{
		Name:        "record_sale",
		Description: "Record a sale and decrement the product's stock (clamped at zero).",
		Parameters: schema([]string{"identifier", "quantity", "customer_email"}, merge(identifierProps(), map[string]any{
			"quantity":         prop("integer", "Units sold, must be positive"),
			"unit_price":       prop("number", "Unit price; defaults to the product's current price"),
			"customer_email":   prop("string", "Customer email"),
			"customer_name":    prop("string", "Optional customer name"),
			"shipping_address": prop("string", "Optional shipping address"),
			"status":           enumProp("Order status, defaults to pending", "pending", "processing", "shipped", "delivered", "cancelled"),
			"payment_method":   prop("string", "Payment method label"),
		})),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[saleArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			return deps.Sales.RecordSale(ctx, &salesdto.RecordSaleInput{
				Identifier:      ident,
				Quantity:        a.Quantity,
				UnitPrice:       a.UnitPrice,
				CustomerEmail:   a.CustomerEmail,
				CustomerName:    a.CustomerName,
				ShippingAddress: a.ShippingAddress,
				Status:          model.SaleStatus(a.Status),
				PaymentMethod:   a.PaymentMethod,
			})
		},
	}
}

func salesAnalyticsTool(deps Deps) Tool {
	type analyticsArgs struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	return Tool{
		Name:        "sales_analytics",
		Description: "Compute store metrics: totals, top products, category performance, period rollups, low-stock alerts.",
		Parameters: schema(nil, map[string]any{
			"start_date": prop("string", "Window start, YYYY-MM-DD or RFC 3339; omit for the full log"),
			"end_date":   prop("string", "Window end, inclusive"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[analyticsArgs](args)
			if err != nil {
				return nil, err
			}
			start, err := parseDate(a.StartDate, false)
			if err != nil {
				return nil, err
			}
			end, err := parseDate(a.EndDate, true)
			if err != nil {
				return nil, err
			}
			return deps.Sales.Analytics(ctx, &salesdto.AnalyticsInput{Start: start, End: end})
		},
	}
}

func topSellingProductsTool(deps Deps) Tool {
	type topArgs struct {
		Limit     int    `json:"limit"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	return Tool{
		Name:        "top_selling_products",
		Description: "Rank products by units sold over an optional date window.",
		Parameters: schema(nil, map[string]any{
			"limit":      prop("integer", "Number of products to return, defaults to 5"),
			"start_date": prop("string", "Window start, YYYY-MM-DD or RFC 3339"),
			"end_date":   prop("string", "Window end, inclusive"),
		}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[topArgs](args)
			if err != nil {
				return nil, err
			}
			start, err := parseDate(a.StartDate, false)
			if err != nil {
				return nil, err
			}
			end, err := parseDate(a.EndDate, true)
			if err != nil {
				return nil, err
			}
			return deps.Sales.TopSellingProducts(ctx, &salesdto.TopSellingInput{
				Limit: a.Limit,
				Start: start,
				End:   end,
			})
		},
	}
}

func generateDescriptionTool(deps Deps) Tool {
	type result struct {
		ProductID   string `json:"product_id"`
		Description string `json:"description"`
	}
	return Tool{
		Name:        "generate_description",
		Description: "Generate marketing copy for a product from its catalog data.",
		Parameters:  schema([]string{"identifier"}, identifierProps()),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			a, err := decode[identifierArgs](args)
			if err != nil {
				return nil, err
			}
			ident, err := a.parse()
			if err != nil {
				return nil, err
			}
			p, err := deps.Products.GetProduct(ctx, ident)
			if err != nil {
				return nil, err
			}
			text, err := deps.Content.GenerateDescription(ctx, p)
			if err != nil {
				return nil, err
			}
			return &result{ProductID: p.ID, Description: text}, nil
		},
	}
}

func storeCategoriesTool(deps Deps) Tool {
	type result struct {
		Categories  []string `json:"categories"`
		Collections []string `json:"collections"`
	}
	return Tool{
		Name:        "store_categories",
		Description: "List every category and collection the store has ever tracked.",
		Parameters:  schema(nil, map[string]any{}),
		Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
			categories, err := deps.Products.Categories(ctx)
			if err != nil {
				return nil, err
			}
			collections, err := deps.Products.Collections(ctx)
			if err != nil {
				return nil, err
			}
			return &result{Categories: categories, Collections: collections}, nil
		},
	}
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Date-only end bounds are bumped
// to the last instant of that day so the range stays inclusive.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrBadArguments, s)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func schema(required []string, props map[string]any) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func arrayProp(itemType, desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": itemType},
	}
}

func merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
