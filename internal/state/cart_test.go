package state

import (
	"fmt"
	"testing"

	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

func testStore() *Store {
	seq := 0
	return New(
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func chickProduct(id string, price int) Product {
	return Product{
		ID:        id,
		Name:      "Kuroiler Chicks",
		Price:     price,
		PriceUnit: "1 day old",
		Category:  "local",
	}
}

func TestAddToCartMergesByProductID(t *testing.T) {
	store := testStore()

	if err := store.AddToCart(chickProduct("p1", 4000), 2); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := store.AddToCart(chickProduct("p1", 4000), 3); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if err := store.AddToCart(chickProduct("p2", 3500), 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	cart := store.Cart()
	if len(cart) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart))
	}
	if cart[0].ProductID() != "p1" || cart[0].Quantity != 5 {
		t.Fatalf("expected p1 quantity 5, got %s quantity %d", cart[0].ProductID(), cart[0].Quantity)
	}
	if cart[1].ProductID() != "p2" || cart[1].Quantity != 1 {
		t.Fatalf("expected p2 quantity 1, got %s quantity %d", cart[1].ProductID(), cart[1].Quantity)
	}
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	store := testStore()

	tests := []struct {
		name     string
		product  Product
		quantity int
	}{
		{name: "missing id", product: chickProduct("", 4000), quantity: 1},
		{name: "negative price", product: chickProduct("p1", -1), quantity: 1},
		{name: "zero quantity", product: chickProduct("p1", 4000), quantity: 0},
		{name: "negative quantity", product: chickProduct("p1", 4000), quantity: -2},
	}
	for _, tt := range tests {
		err := store.AddToCart(tt.product, tt.quantity)
		if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", tt.name, err)
		}
	}
	if len(store.Cart()) != 0 {
		t.Fatal("rejected adds must not touch the cart")
	}
}

func TestCartTotalsAndCount(t *testing.T) {
	store := testStore()
	mustAdd(t, store, chickProduct("p1", 4000), 2)
	mustAdd(t, store, chickProduct("p2", 3500), 3)

	if got := store.CartTotal(); got != 4000*2+3500*3 {
		t.Fatalf("unexpected cart total %d", got)
	}
	if got := store.CartCount(); got != 5 {
		t.Fatalf("expected unit count 5, got %d", got)
	}
	if lines := len(store.Cart()); lines != 2 {
		t.Fatalf("unit count must differ from line count; lines=%d", lines)
	}
}

func TestUpdateCartQuantityReplacesAndFloors(t *testing.T) {
	store := testStore()
	mustAdd(t, store, chickProduct("p1", 4000), 2)

	store.UpdateCartQuantity("p1", 7)
	if cart := store.Cart(); cart[0].Quantity != 7 {
		t.Fatalf("expected replace semantics, got quantity %d", cart[0].Quantity)
	}

	store.UpdateCartQuantity("p1", 0)
	if len(store.Cart()) != 0 {
		t.Fatal("quantity 0 must remove the line")
	}

	mustAdd(t, store, chickProduct("p1", 4000), 2)
	store.UpdateCartQuantity("p1", -3)
	if len(store.Cart()) != 0 {
		t.Fatal("negative quantity must remove the line")
	}

	// absent id is a silent no-op
	store.UpdateCartQuantity("ghost", 4)
	if len(store.Cart()) != 0 {
		t.Fatal("updating an absent line must not create it")
	}
}

func TestRemoveFromCart(t *testing.T) {
	store := testStore()
	mustAdd(t, store, chickProduct("p1", 4000), 1)
	mustAdd(t, store, chickProduct("p2", 3500), 1)

	store.RemoveFromCart("p1")
	cart := store.Cart()
	if len(cart) != 1 || cart[0].ProductID() != "p2" {
		t.Fatalf("unexpected cart after remove: %+v", cart)
	}

	store.RemoveFromCart("p1")
	if len(store.Cart()) != 1 {
		t.Fatal("removing an absent id must be a no-op")
	}
}

func TestClearCart(t *testing.T) {
	store := testStore()
	mustAdd(t, store, chickProduct("p1", 4000), 2)

	store.ClearCart()
	if len(store.Cart()) != 0 || store.CartTotal() != 0 || store.CartCount() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestCartReturnsCopies(t *testing.T) {
	store := testStore()
	mustAdd(t, store, chickProduct("p1", 4000), 2)

	cart := store.Cart()
	cart[0].Quantity = 99

	if store.Cart()[0].Quantity != 2 {
		t.Fatal("mutating the returned slice must not affect the store")
	}
}

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{Product: chickProduct("p1", 4000), Quantity: 3}
	if line.Subtotal() != 12000 {
		t.Fatalf("unexpected line subtotal %d", line.Subtotal())
	}
}

func mustAdd(t *testing.T, store *Store, product Product, quantity int) {
	t.Helper()
	if err := store.AddToCart(product, quantity); err != nil {
		t.Fatalf("add to cart %s: %v", product.ID, err)
	}
}
