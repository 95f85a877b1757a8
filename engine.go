package main

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/labstack/gommon/log"
)

// turn carries everything a rule may need for one utterance: the session
// memory, the raw and normalized text, the sender account and the entities
// extracted from this specific message.
type turn struct {
	mem    *SessionMemory
	sender string
	text   string
	low    string

	account    string
	card       string
	mobile     string
	nationalID string
	amount     int
	hasAmount  bool
}

type rule struct {
	name string
	fn   func(*Engine, *turn) (Reply, bool)
}

// Engine routes one utterance to exactly one reply per call. It is the
// intent classifier and the conversation router in one pass: rules are
// evaluated in a fixed priority order and the first hit wins, with domain
// follow-up rules interleaved between fresh-intent rules so a bare keyword
// opens a flow while a slot answer continues one.
type Engine struct {
	ledger  Ledger
	phrases *Phrasebook
	rng     *rand.Rand
	rngMu   sync.Mutex
	rules   []rule
}

func NewEngine(ledger Ledger, phrases *Phrasebook, rng *rand.Rand) *Engine {
	e := &Engine{ledger: ledger, phrases: phrases, rng: rng}
	// Evaluation order is a deliberate tie-break policy. Out-of-scope sits
	// ahead of greeting so a banned topic is rejected even when the message
	// also carries a greeting token.
	e.rules = []rule{
		{"help", (*Engine).ruleHelp},
		{"out_of_scope", (*Engine).ruleOutOfScope},
		{"greet", (*Engine).ruleGreet},
		{"thanks", (*Engine).ruleThanks},
		{"goodbye", (*Engine).ruleGoodbye},
		{"balance", (*Engine).ruleBalance},
		{"balance_follow_up", (*Engine).ruleBalanceFollowUp},
		{"transaction", (*Engine).ruleTransaction},
		{"transaction_follow_up", (*Engine).ruleTransactionFollowUp},
		{"new_card", (*Engine).ruleNewCard},
		{"card_follow_up", (*Engine).ruleCardFollowUp},
		{"block_card", (*Engine).ruleBlockCard},
		{"block_card_follow_up", (*Engine).ruleBlockCardFollowUp},
		{"unblock_card", (*Engine).ruleUnblockCard},
		{"unblock_card_follow_up", (*Engine).ruleUnblockCardFollowUp},
		{"transfer", (*Engine).ruleTransfer},
		{"transfer_follow_up", (*Engine).ruleTransferFollowUp},
		{"loan_documents", (*Engine).ruleLoanDocuments},
		{"loan_inquiry", (*Engine).ruleLoanInquiry},
		{"loan_type_follow_up", (*Engine).ruleLoanType},
		{"loan_income_follow_up", (*Engine).ruleLoanIncome},
		{"open_account", (*Engine).ruleOpenAccount},
		{"open_account_type_follow_up", (*Engine).ruleOpenAccountType},
		{"open_account_credential_follow_up", (*Engine).ruleOpenAccountCredentials},
		{"feedback", (*Engine).ruleFeedback},
		{"acknowledge", (*Engine).ruleAcknowledge},
		{"fallback", (*Engine).ruleFallback},
	}
	return e
}

// Process runs one conversational turn. Entities found in the utterance are
// written into memory first (sticky until their domain clears them), then
// the rule table is walked top to bottom.
func (e *Engine) Process(mem *SessionMemory, utterance, sender string) Reply {
	text := strings.TrimSpace(utterance)
	t := &turn{
		mem:    mem,
		sender: sender,
		text:   text,
		low:    normalizeText(text),
	}
	t.account = extractAccount(text)
	t.card = extractCard(text)
	t.mobile = extractMobile(text)
	t.nationalID = extractNationalID(text)
	t.amount, t.hasAmount = extractAmount(text)

	if t.account != "" {
		mem.AccountNumber = t.account
	}
	if t.card != "" {
		mem.CardNumber = t.card
	}
	if t.mobile != "" {
		mem.Mobile = t.mobile
	}
	if t.nationalID != "" {
		mem.NationalID = t.nationalID
	}

	for _, r := range e.rules {
		if reply, ok := r.fn(e, t); ok {
			log.Debugf("rule %s handled turn (domain=%s)", r.name, mem.CurrentDomain)
			return reply
		}
	}
	// The fallback rule always fires; this is unreachable.
	return Reply{Text: e.pick("fallback"), Intent: "fallback"}
}

// pick returns a response variant for the intent, chosen uniformly when the
// phrasebook carries more than one.
func (e *Engine) pick(intent string) string {
	variants := e.phrases.variants(intent)
	switch len(variants) {
	case 0:
		return ""
	case 1:
		return variants[0]
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return variants[e.rng.Intn(len(variants))]
}
