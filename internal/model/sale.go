package model

import "time"

type SaleStatus string

const (
	SaleStatusPending    SaleStatus = "pending"
	SaleStatusProcessing SaleStatus = "processing"
	SaleStatusShipped    SaleStatus = "shipped"
	SaleStatusDelivered  SaleStatus = "delivered"
	SaleStatusCancelled  SaleStatus = "cancelled"
)

// Sale is an immutable record of a single order line. ProductName is a
// snapshot of the product name at sale time; ProductID is not enforced as a
// foreign key, so a sale may outlive its product.
type Sale struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	TotalAmount     float64    `json:"total_amount"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerName    *string    `json:"customer_name"`    // Nullable
	ShippingAddress *string    `json:"shipping_address"` // Nullable
	Status          SaleStatus `json:"status"`
	PaymentMethod   string     `json:"payment_method"`
	Timestamp       time.Time  `json:"timestamp"`
}

// ValidSaleStatus reports whether s is one of the known order states.
func ValidSaleStatus(s SaleStatus) bool {
	switch s {
	case SaleStatusPending, SaleStatusProcessing, SaleStatusShipped, SaleStatusDelivered, SaleStatusCancelled:
		return true
	}
	return false
}
