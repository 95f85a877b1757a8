package main

import "fmt"

// Balance and last-transaction are two-turn, read-only flows: ask for the
// account number if it is not known yet, answer and clear once it is.

func (e *Engine) ruleBalance(t *turn) (Reply, bool) {
	if !e.phrases.set("balance").Match(t.low) {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainBalance
	if t.mem.AccountNumber == "" {
		return Reply{Text: "Please provide your account number.", Intent: "check_balance"}, true
	}
	return e.answerBalance(t.mem), true
}

// Fires when the user supplies the account number a turn after asking.
func (e *Engine) ruleBalanceFollowUp(t *turn) (Reply, bool) {
	if t.mem.CurrentDomain != domainBalance || t.mem.AccountNumber == "" {
		return Reply{}, false
	}
	return e.answerBalance(t.mem), true
}

func (e *Engine) answerBalance(mem *SessionMemory) Reply {
	number := mem.AccountNumber
	rec, err := e.ledger.LookupAccount(number)
	mem.ClearDomain(domainBalance)
	if err != nil {
		return Reply{Text: "Invalid account number.", Intent: "fallback"}
	}
	return Reply{
		Text:   fmt.Sprintf("Your balance for account %s is ₹%d.", number, rec.Balance),
		Intent: "provide_balance",
	}
}

func (e *Engine) ruleTransaction(t *turn) (Reply, bool) {
	if !e.phrases.set("transaction").Match(t.low) {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainTransaction
	if t.mem.AccountNumber == "" {
		return Reply{Text: "Please provide your account number first.", Intent: "transaction_inquiry"}, true
	}
	return e.answerTransaction(t.mem), true
}

func (e *Engine) ruleTransactionFollowUp(t *turn) (Reply, bool) {
	if t.mem.CurrentDomain != domainTransaction || t.mem.AccountNumber == "" {
		return Reply{}, false
	}
	return e.answerTransaction(t.mem), true
}

func (e *Engine) answerTransaction(mem *SessionMemory) Reply {
	number := mem.AccountNumber
	rec, err := e.ledger.LookupAccount(number)
	mem.ClearDomain(domainTransaction)
	if err != nil {
		return Reply{Text: "Invalid account number.", Intent: "fallback"}
	}
	return Reply{
		Text:   fmt.Sprintf("Your last transaction for account %s: %s", number, rec.LastTransaction),
		Intent: "transaction_inquiry",
	}
}
