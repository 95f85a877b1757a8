package main

import (
	"fmt"
	"strings"
)

// Card issuance is a three-state machine. The state is derived from the
// slots rather than stored separately, so the transitions stay testable
// independently of the keyword lists that trigger them.
type cardState int

const (
	cardAwaitingType cardState = iota
	cardAwaitingCredentials
	cardReady
)

func cardStateOf(m *SessionMemory) cardState {
	switch {
	case m.CardType == "":
		return cardAwaitingType
	case m.Mobile == "" || m.NationalID == "":
		return cardAwaitingCredentials
	default:
		return cardReady
	}
}

func (e *Engine) ruleNewCard(t *turn) (Reply, bool) {
	if !e.phrases.set("new_card").Match(t.low) {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainCard
	return e.cardIssueStep(t), true
}

// ruleCardFollowUp continues the issuance flow: a bare "debit" answers the
// type question, and mobile/national id may arrive in either order.
func (e *Engine) ruleCardFollowUp(t *turn) (Reply, bool) {
	if t.mem.CurrentDomain != domainCard {
		return Reply{}, false
	}
	return e.cardIssueStep(t), true
}

func (e *Engine) cardIssueStep(t *turn) Reply {
	mem := t.mem
	switch cardStateOf(mem) {
	case cardAwaitingType:
		switch {
		case containsWord(t.low, "credit"):
			mem.CardType = cardTypeCredit
		case containsWord(t.low, "debit"):
			mem.CardType = cardTypeDebit
		default:
			return Reply{Text: "Would you like a debit card or a credit card?", Intent: "new_card"}
		}
		return Reply{
			Text:   "Please provide your 10-digit mobile number and 12-digit Aadhaar number.",
			Intent: "new_card",
		}

	case cardAwaitingCredentials:
		// The dispatcher already stored any mobile/id found this turn.
		if mem.Mobile != "" {
			return Reply{Text: "Mobile number received. Now provide your 12-digit Aadhaar number.", Intent: "new_card"}
		}
		if mem.NationalID != "" {
			return Reply{Text: "Aadhaar received. Now provide your 10-digit mobile number.", Intent: "new_card"}
		}
		return Reply{
			Text:   "Please provide your 10-digit mobile and 12-digit Aadhaar numbers.",
			Intent: "new_card",
		}

	default: // cardReady
		cardType := mem.CardType
		number := e.ledger.IssueCard(cardType)
		mem.ClearDomain(domainCard)
		return Reply{
			Text:   fmt.Sprintf("Your %s card request is approved! Card number: %s.", cardType, number),
			Intent: "card_approved",
		}
	}
}

// Block and unblock are single-turn when the card number rides along, and a
// one-question follow-up otherwise. Both are idempotent on the blocked set.

func (e *Engine) ruleBlockCard(t *turn) (Reply, bool) {
	if !e.phrases.set("block").Match(t.low) || containsWord(t.low, "unblock") {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainCardBlock
	if t.card == "" {
		return Reply{Text: "Please provide your 12-digit card number to block the card.", Intent: "ask_block_card_number"}, true
	}
	return e.resolveBlock(t.mem, t.card), true
}

func (e *Engine) ruleBlockCardFollowUp(t *turn) (Reply, bool) {
	if t.mem.CurrentDomain != domainCardBlock {
		return Reply{}, false
	}
	if t.card == "" {
		return Reply{Text: "Please provide a valid 12-digit card number.", Intent: "ask_block_card_number"}, true
	}
	return e.resolveBlock(t.mem, t.card), true
}

func (e *Engine) resolveBlock(mem *SessionMemory, card string) Reply {
	if e.ledger.IsCardBlocked(card) {
		mem.ClearDomain(domainCardBlock)
		return Reply{Text: fmt.Sprintf("Card %s is already blocked.", card), Intent: "card_already_blocked"}
	}
	e.ledger.BlockCard(card)
	mem.ClearDomain(domainCardBlock)
	return Reply{Text: fmt.Sprintf("Card %s has been blocked successfully.", card), Intent: "block_card_success"}
}

func (e *Engine) ruleUnblockCard(t *turn) (Reply, bool) {
	collapsed := strings.ReplaceAll(t.low, " ", "")
	if !e.phrases.set("unblock").Match(t.low) && !strings.Contains(collapsed, "unblockcard") {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainCardUnblock
	if t.card == "" {
		return Reply{Text: "Please provide your 12-digit card number to unblock the card.", Intent: "ask_unblock_card"}, true
	}
	return e.resolveUnblock(t.mem, t.card), true
}

func (e *Engine) ruleUnblockCardFollowUp(t *turn) (Reply, bool) {
	if t.mem.CurrentDomain != domainCardUnblock {
		return Reply{}, false
	}
	if t.card == "" {
		return Reply{Text: "Please provide a valid 12-digit card number.", Intent: "ask_unblock_card"}, true
	}
	return e.resolveUnblock(t.mem, t.card), true
}

func (e *Engine) resolveUnblock(mem *SessionMemory, card string) Reply {
	if !e.ledger.IsCardBlocked(card) {
		mem.ClearDomain(domainCardUnblock)
		return Reply{Text: fmt.Sprintf("Card %s is already active (not blocked).", card), Intent: "card_not_blocked"}
	}
	e.ledger.UnblockCard(card)
	mem.ClearDomain(domainCardUnblock)
	return Reply{Text: fmt.Sprintf("Card %s has been unblocked successfully.", card), Intent: "unblock_card_success"}
}
