// Package checkout turns the active cart into a placed order using the
// flat delivery pricing the checkout screen displays.
package checkout

import (
	"context"

	"github.com/young4chick/kukuhub/internal/state"
	"github.com/young4chick/kukuhub/pkg/config"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// Quote is the order summary shown before placing: whole-shilling
// amounts, total = subtotal + delivery fee - discount.
type Quote struct {
	Subtotal    int
	DeliveryFee int
	Discount    int
	Total       int
}

// Service prices and places orders from the current cart.
type Service interface {
	Quote(ctx context.Context) (Quote, error)
	PlaceOrder(ctx context.Context) (state.Order, error)
}

type service struct {
	store *state.Store
	cfg   config.CheckoutConfig
}

// NewService wires checkout against the state store.
func NewService(store *state.Store, cfg config.CheckoutConfig) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "state store required")
	}
	if cfg.DeliveryFee < 0 || cfg.Discount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout amounts must be non-negative")
	}
	return &service{store: store, cfg: cfg}, nil
}

// Quote prices the current cart. An empty cart cannot be quoted.
func (s *service) Quote(ctx context.Context) (Quote, error) {
	if s.store.CartCount() == 0 {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	subtotal := s.store.CartTotal()
	discount := s.cfg.Discount
	if discount > subtotal {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "discount exceeds subtotal")
	}
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: s.cfg.DeliveryFee,
		Discount:    discount,
		Total:       subtotal + s.cfg.DeliveryFee - discount,
	}, nil
}

// PlaceOrder snapshots the cart into an order and clears the cart. The
// state store emits the order-placed notification as part of AddOrder.
func (s *service) PlaceOrder(ctx context.Context) (state.Order, error) {
	quote, err := s.Quote(ctx)
	if err != nil {
		return state.Order{}, err
	}

	order := s.store.AddOrder(state.OrderDraft{
		Items:       s.store.Cart(),
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Discount:    quote.Discount,
		Total:       quote.Total,
	})
	s.store.ClearCart()
	return order, nil
}
