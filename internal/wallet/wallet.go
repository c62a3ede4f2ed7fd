// Package wallet is the in-memory wallet behind the wallet screen:
// a whole-shilling balance plus a most-recent-first transaction feed.
// No payment provider is involved; top-ups and payments only move the
// in-process balance.
package wallet

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/young4chick/kukuhub/pkg/enums"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// Transaction is one wallet movement.
type Transaction struct {
	ID          string
	Type        enums.TransactionType
	Title       string
	Description string
	Amount      int
	CreatedAt   time.Time
}

// Wallet holds the balance and its transaction history.
type Wallet struct {
	mu           sync.Mutex
	balance      int
	transactions []Transaction

	now   func() time.Time
	newID func() string
}

// Option customizes a Wallet at construction time.
type Option func(*Wallet)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(w *Wallet) {
		if now != nil {
			w.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(w *Wallet) {
		if newID != nil {
			w.newID = newID
		}
	}
}

// New builds a wallet with a zero balance.
func New(opts ...Option) *Wallet {
	w := &Wallet{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Balance returns the current balance in whole shillings.
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Transactions returns a copy of the history, most recent first.
func (w *Wallet) Transactions() []Transaction {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.transactions) == 0 {
		return nil
	}
	copied := make([]Transaction, len(w.transactions))
	copy(copied, w.transactions)
	return copied
}

// Deposit credits the balance. Amount must be positive.
func (w *Wallet) Deposit(title, description string, amount int) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.balance += amount
	return w.recordLocked(enums.TransactionTypeCredit, title, description, amount), nil
}

// Withdraw debits the balance. Overdrawing is a conflict, not a
// negative balance.
func (w *Wallet) Withdraw(title, description string, amount int) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if amount > w.balance {
		return Transaction{}, pkgerrors.New(pkgerrors.CodeConflict, "insufficient balance")
	}
	w.balance -= amount
	return w.recordLocked(enums.TransactionTypeDebit, title, description, amount), nil
}

func (w *Wallet) recordLocked(transactionType enums.TransactionType, title, description string, amount int) Transaction {
	transaction := Transaction{
		ID:          w.newID(),
		Type:        transactionType,
		Title:       title,
		Description: description,
		Amount:      amount,
		CreatedAt:   w.now(),
	}
	w.transactions = append([]Transaction{transaction}, w.transactions...)
	return transaction
}
