package entity

import "time"

// OrderStatus is the backend-owned order lifecycle state. The web tier only
// displays and forwards these values, it never derives transitions itself.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipping  OrderStatus = "shipping"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipping, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a product snapshot captured when the order was placed.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Order is a placed order as served by the backend.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	RecipientName   string      `json:"recipientName"`
	Phone           string      `json:"phone"`
	ShippingAddress string      `json:"shippingAddress"`
	Note            string      `json:"note,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
