package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/young4chick/kukuhub/internal/accounts"
	"github.com/young4chick/kukuhub/internal/catalog"
	"github.com/young4chick/kukuhub/internal/checkout"
	"github.com/young4chick/kukuhub/internal/earnings"
	"github.com/young4chick/kukuhub/internal/inventory"
	"github.com/young4chick/kukuhub/internal/messaging"
	"github.com/young4chick/kukuhub/internal/state"
	"github.com/young4chick/kukuhub/internal/wallet"
	"github.com/young4chick/kukuhub/pkg/config"
	"github.com/young4chick/kukuhub/pkg/enums"
	"github.com/young4chick/kukuhub/pkg/logger"
	"github.com/young4chick/kukuhub/pkg/metrics"
	"go.uber.org/multierr"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "kukuhub"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "kukuhub",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(context.Background(), cfg, logg); err != nil {
		logg.Error(context.Background(), "kukuhub session failed", err)
		os.Exit(1)
	}
}

// run composes the app the way the navigation root would: one store,
// one of each collaborator, all passed by reference.
func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	store := state.New(state.WithMetrics(storeMetrics))
	listings := catalog.New()

	accountsService, err := accounts.NewService(store, cfg.Password)
	if err != nil {
		return err
	}
	checkoutService, err := checkout.NewService(store, cfg.Checkout)
	if err != nil {
		return err
	}

	buyerWallet := wallet.New()
	chats := messaging.New()
	stock := inventory.New(cfg.Inventory.LowStockThreshold)

	if cfg.Seed.DemoData {
		if err := seedDemoData(buyerWallet, chats, stock); err != nil {
			return err
		}
		logg.Info(ctx, "demo data seeded")
	}

	return demoSession(ctx, logg, demoDeps{
		store:    store,
		listings: listings,
		accounts: accountsService,
		checkout: checkoutService,
		wallet:   buyerWallet,
		chats:    chats,
		stock:    stock,
	})
}

type demoDeps struct {
	store    *state.Store
	listings *catalog.Catalog
	accounts accounts.Service
	checkout checkout.Service
	wallet   *wallet.Wallet
	chats    *messaging.Service
	stock    *inventory.Service
}

// demoSession walks one buyer journey end to end, then the farmer
// views, logging what each screen would render.
func demoSession(ctx context.Context, logg *logger.Logger, deps demoDeps) error {
	err := deps.accounts.Register(ctx, accounts.RegisterInput{
		Name:            "Amina Nakato",
		Email:           "amina@kukuhub.ug",
		Phone:           "0772123456",
		Password:        "Kuku#Hub1",
		ConfirmPassword: "Kuku#Hub1",
		UserType:        enums.UserTypeBuyer,
	})
	if err != nil {
		return fmt.Errorf("register demo buyer: %w", err)
	}

	user, _ := deps.store.User()
	ctx = logg.WithUserEmail(ctx, user.Email)
	ctx = logg.WithUserType(ctx, deps.store.UserType().String())
	logg.Info(ctx, "signed in")

	for _, pick := range []struct {
		productID string
		quantity  int
	}{
		{productID: "1", quantity: 2},
		{productID: "2", quantity: 3},
		{productID: "1", quantity: 1},
	} {
		product, err := deps.listings.ProductByID(pick.productID)
		if err != nil {
			return err
		}
		if err := deps.store.AddToCart(product, pick.quantity); err != nil {
			return err
		}
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"cart_total": deps.store.CartTotal(),
		"cart_count": deps.store.CartCount(),
	}), "cart ready")

	quote, err := deps.checkout.Quote(ctx)
	if err != nil {
		return err
	}
	if _, err := deps.wallet.Withdraw("Order Payment", "Checkout via wallet", quote.Total); err != nil {
		return err
	}
	order, err := deps.checkout.PlaceOrder(ctx)
	if err != nil {
		return err
	}
	logg.Info(logg.WithOrderID(ctx, order.ID), "order placed")

	for _, notification := range deps.store.Notifications() {
		deps.store.MarkNotificationRead(notification.ID)
	}
	logg.Info(ctx, "notifications read")

	conversation, err := deps.chats.StartConversation("Biyinzika Poultry")
	if err != nil {
		return err
	}
	if _, err := deps.chats.Send(conversation.ID, "When will my chicks ship?", true); err != nil {
		return err
	}

	// farmer side of the house
	deps.store.UpdateOrderStatus(order.ID, enums.OrderStatusDelivered)
	summary := earnings.Summarize(deps.store.Orders(), order.CreatedAt)
	logg.Info(logg.WithFields(ctx, map[string]any{
		"total_earnings": summary.TotalEarnings,
		"stock_units":    deps.stock.TotalUnits(),
		"stock_value":    deps.stock.TotalValue(),
	}), "farmer dashboard")

	deps.store.Logout()
	logg.Info(ctx, "signed out")
	return nil
}

// seedDemoData loads the fixtures the mock screens shipped with.
func seedDemoData(buyerWallet *wallet.Wallet, chats *messaging.Service, stock *inventory.Service) error {
	var errs []error

	seedTransaction := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	_, err := buyerWallet.Deposit("Wallet Top Up", "Via MTN Mobile Money", 100000)
	seedTransaction(err)
	_, err = buyerWallet.Deposit("Wallet Top Up", "Via Airtel Money", 200000)
	seedTransaction(err)
	_, err = buyerWallet.Withdraw("Service Payment", "Vaccination Service", 15000)
	seedTransaction(err)

	if conversation, err := chats.StartConversation("Biyinzika Poultry"); err != nil {
		errs = append(errs, err)
	} else if _, err := chats.Send(conversation.ID, "Yes, 200 Kuroiler chicks available this week.", false); err != nil {
		errs = append(errs, err)
	}

	for _, line := range []struct {
		name     string
		category string
		quantity int
		price    int
	}{
		{name: "Layer Chicks (1 day)", category: "Layers", quantity: 500, price: 4000},
		{name: "Broiler Chicks (1 day)", category: "Broilers", quantity: 350, price: 5000},
		{name: "Kuroiler Chicks (1 week)", category: "Local", quantity: 45, price: 8000},
		{name: "Layer Chicks (2 weeks)", category: "Layers", quantity: 0, price: 12000},
	} {
		if _, err := stock.Add(line.name, line.category, line.quantity, line.price); err != nil {
			errs = append(errs, err)
		}
	}

	return multierr.Combine(errs...)
}
