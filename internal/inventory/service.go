// Package inventory tracks a farmer's stock lines. Status is derived
// from the remaining quantity and the configured low-stock threshold,
// never stored independently.
package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/young4chick/kukuhub/pkg/enums"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// Line is one stock entry. Price is whole shillings per unit.
type Line struct {
	ID          string
	Name        string
	Category    string
	Quantity    int
	Price       int
	Status      enums.StockStatus
	LastUpdated time.Time
}

// Service owns the stock lines for the signed-in farmer.
type Service struct {
	mu                sync.Mutex
	lines             []Line
	lowStockThreshold int

	now   func() time.Time
	newID func() string
}

// Option customizes a Service at construction time.
type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New builds an empty inventory. A non-positive threshold disables the
// low-stock band so lines go straight from in stock to out of stock.
func New(lowStockThreshold int, opts ...Option) *Service {
	s := &Service{
		lowStockThreshold: lowStockThreshold,
		now:               func() time.Time { return time.Now().UTC() },
		newID:             func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a stock line.
func (s *Service) Add(name, category string, quantity, price int) (Line, error) {
	if name == "" {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if quantity < 0 {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if price < 0 {
		return Line{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := Line{
		ID:          s.newID(),
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		Price:       price,
		Status:      s.statusFor(quantity),
		LastUpdated: s.now(),
	}
	s.lines = append(s.lines, line)
	return line, nil
}

// Adjust moves a line's quantity by delta. Quantities floor at zero;
// status and the update timestamp are rederived.
func (s *Service) Adjust(id string, delta int) (Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}
		quantity := s.lines[i].Quantity + delta
		if quantity < 0 {
			quantity = 0
		}
		s.lines[i].Quantity = quantity
		s.lines[i].Status = s.statusFor(quantity)
		s.lines[i].LastUpdated = s.now()
		return s.lines[i], nil
	}
	return Line{}, pkgerrors.New(pkgerrors.CodeNotFound, "stock line not found")
}

// Lines returns a copy of all stock lines, optionally filtered by
// status. An empty filter returns everything.
func (s *Service) Lines(filter enums.StockStatus) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	var listed []Line
	for _, line := range s.lines {
		if filter == "" || line.Status == filter {
			listed = append(listed, line)
		}
	}
	return listed
}

// TotalUnits sums the remaining quantity over all lines.
func (s *Service) TotalUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalValue sums quantity times unit price over all lines.
func (s *Service) TotalValue() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity * line.Price
	}
	return total
}

func (s *Service) statusFor(quantity int) enums.StockStatus {
	switch {
	case quantity <= 0:
		return enums.StockStatusOutOfStock
	case s.lowStockThreshold > 0 && quantity < s.lowStockThreshold:
		return enums.StockStatusLowStock
	default:
		return enums.StockStatusInStock
	}
}
