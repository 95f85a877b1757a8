package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AccountRecord is what the flows see of an account.
type AccountRecord struct {
	Balance         int
	LastTransaction string
}

// Ledger is the narrow contract between the dialogue flows and the bank
// store. Only the balance, transaction, card and transfer flows touch it.
type Ledger interface {
	LookupAccount(number string) (AccountRecord, error)
	Debit(number string, amount int) error
	SetLastTransaction(number, description string) error
	IsCardBlocked(number string) bool
	BlockCard(number string)
	UnblockCard(number string)
	IssueCard(cardType string) string
	NewAccountNumber() string
	NewTransactionID() string
}

// MemoryLedger is the in-process bank: seeded accounts, a blocked-card set
// and fixed card pools per type. Randomness is injected so id generation and
// card picks are reproducible under test.
type MemoryLedger struct {
	mu       sync.Mutex
	accounts map[string]*AccountRecord
	blocked  map[string]struct{}
	pools    map[string][]string
	rng      *rand.Rand
}

func NewMemoryLedger(rng *rand.Rand) *MemoryLedger {
	return &MemoryLedger{
		accounts: map[string]*AccountRecord{
			"12W3335451": {Balance: 10000, LastTransaction: "₹500 credited by Ajay on 20/11/2025 07:00 AM"},
			"45A2390489": {Balance: 5000, LastTransaction: "₹100 debited to Sravya on 21/11/2025 11:20 AM"},
			"78X1233490": {Balance: 123789, LastTransaction: "₹10,000 debited to Parvathi on 22/11/2025 04:31 PM"},
		},
		blocked: make(map[string]struct{}),
		pools: map[string][]string{
			cardTypeDebit:  {"123456789876", "123569044596"},
			cardTypeCredit: {"850634784875", "908685755967"},
		},
		rng: rng,
	}
}

func (l *MemoryLedger) LookupAccount(number string) (AccountRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.accounts[number]
	if !ok {
		return AccountRecord{}, ErrAccountNotFound
	}
	return *rec, nil
}

func (l *MemoryLedger) Debit(number string, amount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	if rec.Balance < amount {
		return ErrInsufficientFunds
	}
	rec.Balance -= amount
	return nil
}

func (l *MemoryLedger) SetLastTransaction(number, description string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	rec.LastTransaction = description
	return nil
}

func (l *MemoryLedger) IsCardBlocked(number string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, blocked := l.blocked[number]
	return blocked
}

func (l *MemoryLedger) BlockCard(number string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blocked[number] = struct{}{}
}

func (l *MemoryLedger) UnblockCard(number string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.blocked, number)
}

// IssueCard picks a card number from the fixed pool for the type.
func (l *MemoryLedger) IssueCard(cardType string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	pool := l.pools[cardType]
	if len(pool) == 0 {
		return ""
	}
	return pool[l.rng.Intn(len(pool))]
}

func (l *MemoryLedger) NewAccountNumber() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("ACNT%d", 10000000+l.rng.Intn(90000000))
}

func (l *MemoryLedger) NewTransactionID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("TXN%d", 100000+l.rng.Intn(900000))
}
