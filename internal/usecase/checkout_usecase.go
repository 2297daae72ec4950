package usecase

// CheckoutUsecase defines the interface for the order submission flow.
type CheckoutUsecase interface {
	// Submit starts the simulated payment. It refuses while a submission is
	// in flight and when the payment method is card with no card selected;
	// in both cases no state changes and no timer starts. On completion the
	// order is recorded, loyalty points are credited, the cart is cleared,
	// and the success screen is presented with a delayed return home.
	Submit() error

	// CancelSubmission aborts an in-flight submission before it completes
	// and reports whether there was one.
	CancelSubmission() bool

	// Processing reports whether a submission is waiting out its simulated
	// latency.
	Processing() bool
}
