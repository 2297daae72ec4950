package entity

// CartLine pairs a catalog product with an ordered quantity. The cart holds
// at most one line per product id; Quantity never drops below 1 except by
// removing the whole line.
type CartLine struct {
	Product  *Product // Shared reference into the catalog, never owned.
	Quantity int
}

// Cart is the ordered collection of lines in the active order. Insertion
// order is stable for display.
type Cart []CartLine

// Count returns the total quantity across all lines, shown on the cart badge.
func (c Cart) Count() int {
	var n int
	for _, line := range c {
		n += line.Quantity
	}

	return n
}

// IndexOf returns the position of the line holding the given product id,
// or -1 when the cart has no such line.
func (c Cart) IndexOf(productID string) int {
	for i, line := range c {
		if line.Product.ID == productID {
			return i
		}
	}

	return -1
}
