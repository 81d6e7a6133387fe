package model

import "github.com/shopspring/decimal"

// Customer holds a name and the funds available for checkout.
type Customer struct {
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{name: name, balance: balance}
}

func (c *Customer) Name() string             { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }

// Deduct subtracts amount from the balance unconditionally. Sufficiency is
// validated by the checkout algorithm before commit; there is no guard here.
func (c *Customer) Deduct(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
