package service

// CartItem pairs a product ID (a handle into the store, not an owned copy)
// with the requested quantity.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Cart is an ordered list of requested items. The same product may appear in
// several entries; entries are never merged. Items are appended through
// Service.AddToCart, which validates the requested quantity against current
// stock.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}
