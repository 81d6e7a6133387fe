package service

import (
	"errors"
	"fmt"
)

// Every failure here aborts the whole operation before any mutation; none of
// them is transient and nothing retries.
var (
	// ErrInvalidQuantity is returned by AddToCart when the requested
	// quantity is not positive or exceeds currently known stock.
	ErrInvalidQuantity = errors.New("quantity exceeds available stock")

	// ErrEmptyCart is returned by Checkout on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientBalance is returned by Checkout when the customer
	// cannot afford subtotal plus shipping.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ExpiredProductError names the expired line item that aborted checkout.
type ExpiredProductError struct {
	Product string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s is expired", e.Product)
}

// InsufficientStockError reports a line item whose requested quantity
// exceeds live stock at checkout time. The add-time check in AddToCart is a
// snapshot, not a reservation, so stock may have changed in between.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d",
		e.Product, e.Requested, e.Available)
}
