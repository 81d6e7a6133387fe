package model

import "github.com/shopspring/decimal"

// Product is a catalog entry with mutable stock. Whether a product is
// shippable is fixed at construction via the dedicated constructors; there
// is no runtime type inspection anywhere.
type Product struct {
	name      string
	price     decimal.Decimal
	quantity  int
	expired   bool
	shippable bool
	weightKg  float64
}

// NewPerishable builds a shippable product whose expiry is set by the caller
// (cheese, biscuits and the like).
func NewPerishable(name string, price decimal.Decimal, quantity int, expired bool, weightKg float64) *Product {
	return &Product{
		name:      name,
		price:     price,
		quantity:  quantity,
		expired:   expired,
		shippable: true,
		weightKg:  weightKg,
	}
}

// NewDurable builds a shippable product that never expires (a TV).
func NewDurable(name string, price decimal.Decimal, quantity int, weightKg float64) *Product {
	return &Product{
		name:      name,
		price:     price,
		quantity:  quantity,
		shippable: true,
		weightKg:  weightKg,
	}
}

// NewDigital builds a non-shippable product that never expires (a mobile
// top-up, a scratch card). It carries no weight and is excluded from
// shipment manifests.
func NewDigital(name string, price decimal.Decimal, quantity int) *Product {
	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
	}
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) IsExpired() bool        { return p.expired }
func (p *Product) IsShippable() bool      { return p.shippable }

// Weight returns the unit weight in kilograms. Zero for non-shippable
// products.
func (p *Product) Weight() float64 { return p.weightKg }

// DecreaseQuantity subtracts q from the current stock. It performs no bounds
// check: validation happens in the checkout algorithm before any mutation,
// and that ordering is the sole guard against negative stock.
func (p *Product) DecreaseQuantity(q int) {
	p.quantity -= q
}
