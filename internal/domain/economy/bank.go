// Package economy holds the player's bank: a single balance plus a
// transaction history mutated only through explicit operations.
package economy

import (
	"fmt"
	"strings"
)

const defaultSummaryTransactions = 10

type Transaction struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

type Snapshot struct {
	Balance      int           `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

type Bank struct {
	balance      int
	transactions []Transaction
}

func NewBank() *Bank {
	return &Bank{transactions: []Transaction{}}
}

func FromSnapshot(s Snapshot) *Bank {
	txs := s.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	return &Bank{balance: s.Balance, transactions: txs}
}

// Restore replaces the bank's state in place with a loaded snapshot.
func (b *Bank) Restore(s Snapshot) {
	b.balance = s.Balance
	b.transactions = append([]Transaction{}, s.Transactions...)
}

func (b *Bank) Snapshot() Snapshot {
	return Snapshot{
		Balance:      b.balance,
		Transactions: append([]Transaction(nil), b.transactions...),
	}
}

func (b *Bank) Balance() int {
	return b.balance
}

// Credit adds a non-negative amount and records the transaction. Negative
// amounts are ignored; debits go through TryDebit or ForceDebit.
func (b *Bank) Credit(amount int, description string) {
	if amount < 0 {
		return
	}
	b.balance += amount
	b.record(Transaction{Amount: amount, Description: description})
}

// TryDebit subtracts the amount only if the balance covers it. Returns false
// leaving everything unchanged otherwise.
func (b *Bank) TryDebit(amount int, description string) bool {
	if amount < 0 {
		return false
	}
	if b.balance < amount {
		return false
	}
	b.balance -= amount
	b.record(Transaction{Amount: -amount, Description: description})
	return true
}

// ForceDebit subtracts regardless of the balance; used for penalties that
// must apply even into the negative.
func (b *Bank) ForceDebit(amount int, description string) {
	if amount < 0 {
		return
	}
	b.balance -= amount
	b.record(Transaction{Amount: -amount, Description: description})
}

// ProcessTransaction applies a signed transaction. Negative amounts are
// debits; force selects ForceDebit semantics. Returns false when a non-forced
// debit exceeds the balance.
func (b *Bank) ProcessTransaction(tx Transaction, force bool) bool {
	if tx.Amount < 0 {
		if force {
			b.ForceDebit(-tx.Amount, tx.Description)
			return true
		}
		return b.TryDebit(-tx.Amount, tx.Description)
	}
	b.Credit(tx.Amount, tx.Description)
	return true
}

// newest first
func (b *Bank) record(tx Transaction) {
	b.transactions = append([]Transaction{tx}, b.transactions...)
}

// Summary renders the balance and the most recent transactions for the UI.
func (b *Bank) Summary(maxTransactions int) string {
	if maxTransactions <= 0 {
		maxTransactions = defaultSummaryTransactions
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current balance: $%d\n\n", b.balance)
	sb.WriteString("Recent transactions:\n")
	for i, tx := range b.transactions {
		if i >= maxTransactions {
			break
		}
		fmt.Fprintf(&sb, "$%d %s\n", tx.Amount, tx.Description)
	}
	return sb.String()
}
