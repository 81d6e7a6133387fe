package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"retail-checkout/model"
)

// ErrProductNotFound is returned when an ID does not resolve to a product.
var ErrProductNotFound = errors.New("product not found")

// MemoryStore keeps the catalog in process memory. Products live for the
// whole process; they are mutated only through DecreaseStock and never
// deleted.
//
// There is no locking here: one checkout runs to completion before the next
// begins, and the design assumes exclusive access to the referenced products
// for that duration.
type MemoryStore struct {
	products map[string]*model.Product
	order    []string // insertion order of IDs
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[string]*model.Product)}
}

// CreateProduct registers a product and returns its ID.
func (s *MemoryStore) CreateProduct(p *model.Product) (string, error) {
	if p == nil {
		return "", errors.New("product required")
	}
	if p.Name() == "" {
		return "", errors.New("name required")
	}
	if p.Price().IsNegative() {
		return "", errors.New("price must be >= 0")
	}
	if p.Quantity() < 0 {
		return "", errors.New("stock cannot be negative")
	}
	id := uuid.NewString()
	s.products[id] = p
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) GetProduct(id string) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// ListProducts returns the catalog in insertion order.
func (s *MemoryStore) ListProducts() []*model.Product {
	out := make([]*model.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id])
	}
	return out
}

// GetStock returns current stock for a product.
func (s *MemoryStore) GetStock(id string) (int, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return 0, err
	}
	return p.Quantity(), nil
}

// DecreaseStock subtracts qty from a product's stock. It fails only on an
// unknown ID; quantity validation is the checkout algorithm's job and is not
// repeated here.
func (s *MemoryStore) DecreaseStock(id string, qty int) error {
	p, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	p.DecreaseQuantity(qty)
	return nil
}
