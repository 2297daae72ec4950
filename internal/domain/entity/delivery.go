package entity

// DeliveryType represents how the order reaches the customer.
type DeliveryType string

const (
	// DeliveryCourier indicates courier delivery to the saved address.
	DeliveryCourier DeliveryType = "delivery"
	// DeliveryPickup indicates pickup at a restaurant.
	DeliveryPickup DeliveryType = "pickup"
)

// String returns the string representation of the DeliveryType.
func (d DeliveryType) String() string {
	return string(d)
}

// IsValid checks if the DeliveryType is a valid value.
func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryCourier, DeliveryPickup:
		return true
	default:
		return false
	}
}

// DeliveryTimeASAP is the sentinel slot label meaning "as soon as possible".
const DeliveryTimeASAP = "ASAP"

// DeliveryContext holds where and when the order should arrive. Location is
// an opaque display string; Time is either DeliveryTimeASAP or a chosen slot
// label.
type DeliveryContext struct {
	Location string
	Type     DeliveryType
	Time     string
}
