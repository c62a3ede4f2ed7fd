package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/young4chick/kukuhub/pkg/enums"
	"github.com/young4chick/kukuhub/pkg/metrics"
)

// Identity is the signed-in user. Authentication is simulated upstream;
// the store never inspects the fields.
type Identity struct {
	Email string
	Name  string
}

// Product is the catalog payload carried into cart lines.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int
	PriceUnit   string
	Category    string
	Rating      float64
	Image       string
}

// CartLine is one distinct product in the cart with its requested
// quantity. Price is whole Ugandan shillings.
type CartLine struct {
	Product
	Quantity int
}

// Order is an immutable snapshot of the cart and its totals taken at
// checkout time. Items and totals never change after placement.
type Order struct {
	ID          string
	Items       []CartLine
	Subtotal    int
	DeliveryFee int
	Discount    int
	Total       int
	Status      enums.OrderStatus
	CreatedAt   time.Time
}

// OrderDraft is the caller-provided portion of an order; the store
// fills in id, status and timestamp.
type OrderDraft struct {
	Items       []CartLine
	Subtotal    int
	DeliveryFee int
	Discount    int
	Total       int
}

// Notification is a user-facing message. Read starts false and only
// ever flips to true.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      enums.NotificationType
	Read      bool
	CreatedAt time.Time
}

// NotificationDraft is the caller-provided portion of a notification.
type NotificationDraft struct {
	Title   string
	Message string
	Type    enums.NotificationType
}

// Store is the single source of truth for session, cart, orders and
// notifications. Every screen holds a reference and goes through the
// operation set; the raw collections are never exposed mutably. It is
// built once by the composition root and lives for the process.
type Store struct {
	mu            sync.Mutex
	user          *Identity
	userType      enums.UserType
	cart          []CartLine
	orders        []Order
	notifications []Notification

	now     func() time.Time
	newID   func() string
	metrics *metrics.StoreMetrics
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithMetrics attaches store counters.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New builds an empty store: no user, buyer role, empty collections.
func New(opts ...Option) *Store {
	s := &Store{
		userType: enums.UserTypeBuyer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login records the identity and role. Invalid roles fall back to
// buyer so the role invariant holds without an error path.
func (s *Store) Login(identity Identity, userType enums.UserType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !userType.IsValid() {
		userType = enums.UserTypeBuyer
	}
	copied := identity
	s.user = &copied
	s.userType = userType
}

// Logout clears the session and the cart. Orders and notifications are
// in-process history and survive until the process exits.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.userType = enums.UserTypeBuyer
	s.cart = nil
}

// User returns the signed-in identity, if any.
func (s *Store) User() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return Identity{}, false
	}
	return *s.user, true
}

// UserType returns the active role.
func (s *Store) UserType() enums.UserType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userType
}
