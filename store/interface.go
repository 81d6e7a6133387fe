package store

import "retail-checkout/model"

// Store is the product table. Carts and the checkout algorithm reference
// products through the IDs it hands out rather than through copies, so a
// stock decrement is visible to every holder of the same ID.
type Store interface {
	CreateProduct(p *model.Product) (string, error)
	GetProduct(id string) (*model.Product, error)
	ListProducts() []*model.Product

	GetStock(id string) (int, error)
	DecreaseStock(id string, qty int) error
}
