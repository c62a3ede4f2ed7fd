package wallet

import (
	"fmt"
	"testing"

	"github.com/young4chick/kukuhub/pkg/enums"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

func testWallet() *Wallet {
	seq := 0
	return New(WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("tx-%d", seq)
	}))
}

func TestDepositAndWithdraw(t *testing.T) {
	w := testWallet()

	if _, err := w.Deposit("Wallet Top Up", "Via MTN Mobile Money", 100000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := w.Withdraw("Order Payment", "Order #1003", 50000); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := w.Balance(); got != 50000 {
		t.Fatalf("expected balance 50000, got %d", got)
	}
}

func TestWithdrawOverdraw(t *testing.T) {
	w := testWallet()
	if _, err := w.Deposit("Wallet Top Up", "Via Airtel Money", 10000); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	_, err := w.Withdraw("Order Payment", "Order #1", 10001)
	if !pkgerrors.HasCode(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if got := w.Balance(); got != 10000 {
		t.Fatalf("failed withdrawal must not move the balance, got %d", got)
	}
	if len(w.Transactions()) != 1 {
		t.Fatal("failed withdrawal must not be recorded")
	}
}

func TestAmountsMustBePositive(t *testing.T) {
	w := testWallet()
	for _, amount := range []int{0, -500} {
		if _, err := w.Deposit("Top Up", "", amount); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("deposit %d: expected validation error, got %v", amount, err)
		}
		if _, err := w.Withdraw("Payment", "", amount); !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("withdraw %d: expected validation error, got %v", amount, err)
		}
	}
}

func TestTransactionsMostRecentFirst(t *testing.T) {
	w := testWallet()
	w.Deposit("Wallet Top Up", "Via MTN Mobile Money", 100000)
	w.Withdraw("Order Payment", "Order #1003 - Biyinzika Poultry", 50000)
	w.Deposit("Refund", "Order #1001 cancelled", 25000)

	transactions := w.Transactions()
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}
	if transactions[0].Title != "Refund" || transactions[0].Type != enums.TransactionTypeCredit {
		t.Fatalf("unexpected newest transaction %+v", transactions[0])
	}
	if transactions[2].Title != "Wallet Top Up" {
		t.Fatalf("unexpected oldest transaction %+v", transactions[2])
	}

	transactions[0].Amount = -1
	if w.Transactions()[0].Amount == -1 {
		t.Fatal("caller mutation leaked into the wallet")
	}
}
