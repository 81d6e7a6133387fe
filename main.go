package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"retail-checkout/config"
	"retail-checkout/model"
	"retail-checkout/render"
	"retail-checkout/service"
	"retail-checkout/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	st := store.NewMemoryStore()

	cheeseID := mustCreate(logger, st, model.NewPerishable("Cheese", decimal.NewFromInt(100), 5, false, 0.2))
	biscuitsID := mustCreate(logger, st, model.NewPerishable("Biscuits", decimal.NewFromInt(150), 2, false, 0.7))
	mustCreate(logger, st, model.NewDurable("TV", decimal.NewFromInt(5000), 2, 15))
	mustCreate(logger, st, model.NewDigital("ScratchCard", decimal.NewFromInt(50), 10))
	mustCreate(logger, st, model.NewDigital("Mobile", decimal.NewFromInt(3000), 5))

	var svc service.ServiceInterface = service.NewService(st, &render.ShipmentWriter{Out: os.Stdout}, cfg.ShippingFee, logger)

	customer := model.NewCustomer("John", decimal.NewFromInt(5000))
	cart := service.NewCart()

	if err := svc.AddToCart(cart, cheeseID, 2); err != nil {
		logger.Fatal("add to cart failed", zap.Error(err))
	}
	if err := svc.AddToCart(cart, biscuitsID, 1); err != nil {
		logger.Fatal("add to cart failed", zap.Error(err))
	}

	ord, err := svc.Checkout(customer, cart)
	if err != nil {
		logger.Fatal("checkout failed", zap.Error(err))
	}
	render.WriteReceipt(os.Stdout, ord)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.DevLog {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func mustCreate(logger *zap.Logger, st store.Store, p *model.Product) string {
	id, err := st.CreateProduct(p)
	if err != nil {
		logger.Fatal("create product failed", zap.Error(err))
	}
	return id
}
