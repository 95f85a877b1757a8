package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMemory() *SessionMemory {
	return &SessionMemory{
		AccountNumber:   "12W3335451",
		CardNumber:      "123456789876",
		CardType:        cardTypeDebit,
		Mobile:          "9876543210",
		NationalID:      "123456789012",
		LoanType:        "home",
		OpenAccountType: "savings",
		TransferAmount:  500,
		TransferName:    "Sravya",
		TransferAccount: "45A2390489",
	}
}

func TestClearDomainIsSelective(t *testing.T) {
	m := fullMemory()
	m.CurrentDomain = domainBalance
	m.ClearDomain(domainBalance)

	assert.Empty(t, m.AccountNumber)
	assert.Equal(t, domainNone, m.CurrentDomain)
	// Fields owned by other domains survive.
	assert.Equal(t, "123456789876", m.CardNumber)
	assert.Equal(t, 500, m.TransferAmount)
	assert.Equal(t, "home", m.LoanType)
}

func TestClearDomainCard(t *testing.T) {
	m := fullMemory()
	m.CurrentDomain = domainCard
	m.NeedBlockReason = false
	m.ClearDomain(domainCard)

	assert.Empty(t, m.CardNumber)
	assert.Empty(t, m.CardType)
	assert.Empty(t, m.Mobile)
	assert.Empty(t, m.NationalID)
	assert.True(t, m.NeedBlockReason)
	assert.Equal(t, domainNone, m.CurrentDomain)
	assert.Equal(t, "12W3335451", m.AccountNumber)
}

func TestClearDomainTransfer(t *testing.T) {
	m := fullMemory()
	m.CurrentDomain = domainTransfer
	m.ClearDomain(domainTransfer)

	assert.Zero(t, m.TransferAmount)
	assert.Empty(t, m.TransferName)
	assert.Empty(t, m.TransferAccount)
	assert.Equal(t, domainNone, m.CurrentDomain)
	assert.Equal(t, "12W3335451", m.AccountNumber)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	id := store.Create("12W3335451")
	sess, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, "12W3335451", sess.Account)

	// Unknown ids get a fresh anonymous session.
	freshID, fresh := store.GetOrCreate("nope")
	assert.NotEqual(t, "nope", freshID)
	assert.Empty(t, fresh.Account)

	// Each session owns its memory.
	sess.Memory.TransferAmount = 500
	assert.Zero(t, fresh.Memory.TransferAmount)
	assert.Equal(t, 2, store.Len())

	sameID, same := store.GetOrCreate(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, sess, same)
}
