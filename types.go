package main

import "time"

// Conversation domains. At most one is active per session; starting a new
// flow before the previous one finishes silently takes over the marker.
const (
	domainNone        = ""
	domainBalance     = "balance"
	domainTransaction = "transaction"
	domainCard        = "card"
	domainCardBlock   = "cardBlock"
	domainCardUnblock = "cardUnblock"
	domainLoan        = "loan"
	domainTransfer    = "transfer"
	domainOpenAccount = "openAccount"
)

const (
	cardTypeDebit  = "debit"
	cardTypeCredit = "credit"
)

// Reply is the engine's answer for a single turn. Intent carries the name of
// the rule that produced the text, mirroring what the reply is about rather
// than which domain is active.
type Reply struct {
	Text   string
	Intent string
}

// Request/Response structures
type ChatRequest struct {
	SessionID string `json:"session_id" form:"session_id" query:"session_id"`
	Message   string `json:"message" form:"message" query:"message"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Intent    string `json:"intent"`
	SessionID string `json:"session_id"`
}

type SessionRequest struct {
	Account string `json:"account" form:"account" query:"account"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Account   string `json:"account,omitempty"`
}

type ReloadResponse struct {
	Message    string    `json:"message"`
	ReloadedAt time.Time `json:"reloaded_at"`
}
