package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeduct(t *testing.T) {
	c := NewCustomer("John", decimal.NewFromInt(5000))
	c.Deduct(decimal.NewFromInt(380))
	if !c.Balance().Equal(decimal.NewFromInt(4620)) {
		t.Fatalf("expected balance 4620, got %s", c.Balance())
	}
}

func TestDeductHasNoGuard(t *testing.T) {
	c := NewCustomer("John", decimal.NewFromInt(10))
	c.Deduct(decimal.NewFromInt(25))
	if !c.Balance().Equal(decimal.NewFromInt(-15)) {
		t.Fatalf("expected balance -15, got %s", c.Balance())
	}
}
