package entity

// UserProfile is the single account the storefront runs for. LoyaltyPoints
// is credited on completed orders.
type UserProfile struct {
	Name          string
	Avatar        string
	Email         string
	Phone         string
	LoyaltyPoints int
}

// NotificationPrefs holds the three notification toggles on the profile
// screen.
type NotificationPrefs struct {
	OrderStatus     bool
	DeliveryUpdates bool
	Promotions      bool
}

// NotificationKind names one of the notification toggles.
type NotificationKind string

const (
	// NotifyOrderStatus toggles order status notifications.
	NotifyOrderStatus NotificationKind = "order_status"
	// NotifyDeliveryUpdates toggles courier progress notifications.
	NotifyDeliveryUpdates NotificationKind = "delivery_updates"
	// NotifyPromotions toggles marketing notifications.
	NotifyPromotions NotificationKind = "promotions"
)

// String returns the string representation of the NotificationKind.
func (k NotificationKind) String() string {
	return string(k)
}

// IsValid checks if the NotificationKind is a valid value.
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotifyOrderStatus, NotifyDeliveryUpdates, NotifyPromotions:
		return true
	default:
		return false
	}
}
