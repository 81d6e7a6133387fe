package service

import "retail-checkout/model"

type ServiceInterface interface {
	AddToCart(cart *Cart, productID string, qty int) error
	Checkout(customer *model.Customer, cart *Cart) (Order, error)
}

// ShipmentUnit is one physical item to be shipped. A cart line with
// quantity N expands into N identical units.
type ShipmentUnit struct {
	Name     string
	WeightKg float64
}

// Shipper receives the shipment manifest of a successful checkout. The
// checkout algorithm only calls it when the manifest is non-empty.
type Shipper interface {
	Ship(units []ShipmentUnit)
}
