package entity

// RestaurantStatus represents whether a restaurant currently accepts orders.
type RestaurantStatus string

const (
	// RestaurantOpen indicates the restaurant is open.
	RestaurantOpen RestaurantStatus = "open"
	// RestaurantClosed indicates the restaurant is closed.
	RestaurantClosed RestaurantStatus = "closed"
)

// String returns the string representation of the RestaurantStatus.
func (s RestaurantStatus) String() string {
	return string(s)
}

// IsValid checks if the RestaurantStatus is a valid value.
func (s RestaurantStatus) IsValid() bool {
	switch s {
	case RestaurantOpen, RestaurantClosed:
		return true
	default:
		return false
	}
}

// Restaurant is a physical storefront location shown on the restaurants
// screen. Distance is a pre-rendered label, not a measurement.
type Restaurant struct {
	ID       string
	Name     string
	Address  string
	Hours    string
	Status   RestaurantStatus
	Distance string
	Image    string
	Phone    string
}
