package main

import (
	"fmt"
	"regexp"
)

// Transfer fills four slots in strict order: amount, recipient name,
// recipient account, then the sender identity supplied by the caller. The
// triggering utterance may carry any of the first three inline; follow-up
// turns collect the rest one at a time. Completion is a plain function
// invoked synchronously the moment the last slot lands.

type transferSlot int

const (
	slotAmount transferSlot = iota
	slotName
	slotAccount
	slotComplete
)

func transferSlotOf(m *SessionMemory) transferSlot {
	switch {
	case m.TransferAmount == 0:
		return slotAmount
	case m.TransferName == "":
		return slotName
	case m.TransferAccount == "":
		return slotAccount
	default:
		return slotComplete
	}
}

var (
	inlineAmountPattern = regexp.MustCompile(`\b(\d{2,10})\b`)
	recipientPattern    = regexp.MustCompile(`to ([A-Za-z]+)`)
	anyDigitPattern     = regexp.MustCompile(`\d`)
)

func (e *Engine) ruleTransfer(t *turn) (Reply, bool) {
	triggered := e.phrases.set("transfer").Match(t.low) ||
		(containsWord(t.low, "send") && anyDigitPattern.MatchString(t.low))
	if !triggered {
		return Reply{}, false
	}

	mem := t.mem
	mem.CurrentDomain = domainTransfer

	// Scrape whatever the triggering message already carries.
	if m := inlineAmountPattern.FindStringSubmatch(t.text); m != nil {
		if amt, ok := parseInt(m[1]); ok {
			mem.TransferAmount = amt
		}
	}
	if m := recipientPattern.FindStringSubmatch(t.low); m != nil {
		mem.TransferName = titleCase(m[1])
	}
	if t.account != "" {
		mem.TransferAccount = t.account
	}

	return e.transferStep(t), true
}

// ruleTransferFollowUp collects the next empty slot. Malformed input
// re-prompts for the same slot; the flow never aborts on bad input.
func (e *Engine) ruleTransferFollowUp(t *turn) (Reply, bool) {
	mem := t.mem
	if mem.CurrentDomain != domainTransfer {
		return Reply{}, false
	}

	switch transferSlotOf(mem) {
	case slotAmount:
		if t.hasAmount {
			mem.TransferAmount = t.amount
			return Reply{Text: "Whom do you want to send the money to?", Intent: "ask_receiver_name"}, true
		}
		return Reply{Text: "Please enter a valid amount.", Intent: "ask_amount"}, true

	case slotName:
		if isAlpha(t.text) {
			mem.TransferName = titleCase(t.text)
			return Reply{Text: "Please provide the receiver's 10-digit account number.", Intent: "ask_receiver_account"}, true
		}
		return Reply{Text: "Please provide a valid name.", Intent: "ask_receiver_name"}, true

	case slotAccount:
		if t.account != "" {
			mem.TransferAccount = t.account
			// Sender identity is already known here, so completion runs in
			// the same call instead of waiting for another utterance.
			return e.completeTransfer(t), true
		}
		return Reply{Text: "Enter a valid 10-digit account number.", Intent: "ask_receiver_account"}, true

	default:
		return e.completeTransfer(t), true
	}
}

func (e *Engine) transferStep(t *turn) Reply {
	switch transferSlotOf(t.mem) {
	case slotAmount:
		return Reply{Text: "How much amount do you want to send?", Intent: "ask_amount"}
	case slotName:
		return Reply{Text: "Whom do you want to send the money to?", Intent: "ask_receiver_name"}
	case slotAccount:
		return Reply{Text: "Please provide the receiver's 10-digit account number.", Intent: "ask_receiver_account"}
	default:
		return e.completeTransfer(t)
	}
}

func (e *Engine) completeTransfer(t *turn) Reply {
	mem := t.mem
	if t.sender == "" {
		// Not a flow failure: the user just has to log in. Slots are kept.
		return Reply{Text: "Unable to identify your account. Please log in again.", Intent: "fallback"}
	}

	if _, err := e.ledger.LookupAccount(t.sender); err != nil {
		mem.ClearDomain(domainTransfer)
		return Reply{Text: "Your logged-in account is invalid.", Intent: "fallback"}
	}

	amount := mem.TransferAmount
	name := mem.TransferName
	account := mem.TransferAccount

	if err := e.ledger.Debit(t.sender, amount); err != nil {
		mem.ClearDomain(domainTransfer)
		return Reply{Text: "Insufficient balance to complete this transfer.", Intent: "insufficient_funds"}
	}

	txnID := e.ledger.NewTransactionID()
	e.ledger.SetLastTransaction(t.sender,
		fmt.Sprintf("₹%d sent to %s (%s) | Transaction ID: %s", amount, name, account, txnID))
	mem.ClearDomain(domainTransfer)

	return Reply{
		Text:   fmt.Sprintf("₹%d sent successfully to %s. Transaction ID: %s", amount, name, txnID),
		Intent: "transfer_success",
	}
}
