package config

import (
	"os"

	"github.com/shopspring/decimal"
)

// Config carries the few tunables the program has. Defaults reproduce the
// standard retail policy: a flat 30-unit fee on any shipment.
type Config struct {
	ShippingFee decimal.Decimal
	DevLog      bool
}

func Load() Config {
	fee, err := decimal.NewFromString(getenv("SHIPPING_FEE", "30"))
	if err != nil {
		fee = decimal.NewFromInt(30)
	}
	return Config{
		ShippingFee: fee,
		DevLog:      getenv("LOG_MODE", "prod") == "dev",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
