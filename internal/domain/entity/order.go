package entity

import "github.com/google/uuid"

// OrderStatus represents the lifecycle stage of a past order.
type OrderStatus string

const (
	// OrderActive indicates the order is still being fulfilled.
	OrderActive OrderStatus = "active"
	// OrderDelivered indicates the order reached the customer.
	OrderDelivered OrderStatus = "delivered"
	// OrderCancelled indicates the order was cancelled.
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderActive, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a history entry on the profile screen. Items keeps display names
// only; the full line detail is not retained after checkout.
type Order struct {
	ID        string
	DateLabel string // Pre-rendered relative date, e.g. "Сегодня, 14:20".
	Total     int
	Items     []string
	Status    OrderStatus
	Image     string
}

// NewOrderID mints an identifier for a completed order.
func NewOrderID() string {
	return uuid.NewString()
}
