package state

import (
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// AddToCart merges the product into the cart: an existing line for the
// same product id has its quantity incremented, otherwise a new line is
// appended. A product without an id is rejected rather than keyed on
// the zero value.
func (s *Store) AddToCart(product Product, quantity int) error {
	if product.ID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if product.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price must be non-negative")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID() == product.ID {
			s.cart[i].Quantity += quantity
			s.metrics.AddCartUnits(quantity)
			return nil
		}
	}

	s.cart = append(s.cart, CartLine{Product: product, Quantity: quantity})
	s.metrics.AddCartUnits(quantity)
	return nil
}

// RemoveFromCart deletes the line with the given product id. Absent ids
// are a silent no-op, not an error.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID)
}

// UpdateCartQuantity sets (not increments) the line's quantity. A
// quantity at or below zero removes the line; quantities are never
// stored as zero or negative. Absent ids are a silent no-op.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLineLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ProductID() == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.cart)
}

// CartTotal sums price times quantity over all lines, recomputed on
// every call so it always reflects the latest mutation.
func (s *Store) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.cart {
		total += line.Price * line.Quantity
	}
	return total
}

// CartCount sums quantities over all lines, for the badge. This is the
// unit count, not the number of distinct lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// ProductID is the merge key for a cart line.
func (l CartLine) ProductID() string {
	return l.Product.ID
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}

func (s *Store) removeLineLocked(productID string) {
	for i := range s.cart {
		if s.cart[i].ProductID() == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

func copyLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return nil
	}
	copied := make([]CartLine, len(lines))
	copy(copied, lines)
	return copied
}
