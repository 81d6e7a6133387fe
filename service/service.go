package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"retail-checkout/model"
	"retail-checkout/store"
)

// Service runs cart operations and checkout against the product table.
type Service struct {
	store       store.Store
	shipper     Shipper
	shippingFee decimal.Decimal
	log         *zap.Logger
}

// NewService wires the checkout service. shipper may be nil when no shippable
// products exist; logger may be nil to keep the service silent.
func NewService(st store.Store, shipper Shipper, shippingFee decimal.Decimal, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, shipper: shipper, shippingFee: shippingFee, log: logger}
}

// AddToCart appends a line item after checking the requested quantity
// against current stock. The check is a snapshot: nothing is reserved, and
// Checkout re-validates against live stock. Two carts filled against the
// same product can therefore both pass here and race at checkout; that
// window is a known property of the design, not something this layer hides.
func (s *Service) AddToCart(cart *Cart, productID string, qty int) error {
	p, err := s.store.GetProduct(productID)
	if err != nil {
		return err
	}
	if qty <= 0 || qty > p.Quantity() {
		return ErrInvalidQuantity
	}
	cart.items = append(cart.items, CartItem{ProductID: productID, Quantity: qty})
	s.log.Info("item added to cart",
		zap.String("product", p.Name()),
		zap.Int("quantity", qty))
	return nil
}

// Checkout validates the cart, computes totals, commits stock and balance
// mutations, hands the manifest to the shipper, and returns the finished
// order for rendering.
//
// Validation runs strictly in cart order and the first failure wins. No
// product stock and no balance changes unless every check passes: the
// validate phase is fully separated from the commit phase.
func (s *Service) Checkout(customer *model.Customer, cart *Cart) (Order, error) {
	if cart.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	type line struct {
		product *model.Product
		qty     int
	}

	subtotal := decimal.Zero
	lines := make([]line, 0, len(cart.items))
	var manifest []ShipmentUnit

	for _, it := range cart.items {
		p, err := s.store.GetProduct(it.ProductID)
		if err != nil {
			return Order{}, err
		}
		if p.IsExpired() {
			return Order{}, &ExpiredProductError{Product: p.Name()}
		}
		if it.Quantity > p.Quantity() {
			return Order{}, &InsufficientStockError{
				Product:   p.Name(),
				Requested: it.Quantity,
				Available: p.Quantity(),
			}
		}

		subtotal = subtotal.Add(p.Price().Mul(decimal.NewFromInt(int64(it.Quantity))))
		if p.IsShippable() {
			// one manifest unit per physical item, not per cart line
			for i := 0; i < it.Quantity; i++ {
				manifest = append(manifest, ShipmentUnit{Name: p.Name(), WeightKg: p.Weight()})
			}
		}
		lines = append(lines, line{product: p, qty: it.Quantity})
	}

	shipping := decimal.Zero
	if len(manifest) > 0 {
		shipping = s.shippingFee
	}
	total := subtotal.Add(shipping)

	if customer.Balance().LessThan(total) {
		return Order{}, ErrInsufficientBalance
	}

	// commit phase: only reached when every validation passed
	for _, it := range cart.items {
		if err := s.store.DecreaseStock(it.ProductID, it.Quantity); err != nil {
			return Order{}, err
		}
	}
	customer.Deduct(total)

	if len(manifest) > 0 && s.shipper != nil {
		s.shipper.Ship(manifest)
	}

	ord := Order{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now(),
		Subtotal:         subtotal,
		Shipping:         shipping,
		Total:            total,
		RemainingBalance: customer.Balance(),
		Manifest:         manifest,
		Lines:            make([]OrderLine, 0, len(lines)),
	}
	for _, l := range lines {
		ord.Lines = append(ord.Lines, OrderLine{
			Name:      l.product.Name(),
			Quantity:  l.qty,
			LineTotal: l.product.Price().Mul(decimal.NewFromInt(int64(l.qty))),
		})
	}

	s.log.Info("checkout completed",
		zap.String("order_id", ord.ID),
		zap.String("customer", customer.Name()),
		zap.String("total", total.String()),
		zap.Int("shipment_units", len(manifest)))
	return ord, nil
}

// DTOs
type OrderLine struct {
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

type Order struct {
	ID               string
	CreatedAt        time.Time
	Lines            []OrderLine
	Subtotal         decimal.Decimal
	Shipping         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Manifest         []ShipmentUnit
}
