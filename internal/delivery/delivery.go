// Package delivery defines the contract every front end of the storefront
// implements.
package delivery

import "context"

// Delivery serves one front end until the context is done or input ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
