package main

import "fmt"

// Account opening: pick a category, then supply mobile and national id. The
// credentials arrive through the sticky extractors, so either order works.

var openAccountTypes = []string{"savings", "current", "mutual"}

func (e *Engine) ruleOpenAccount(t *turn) (Reply, bool) {
	if !e.phrases.set("open_account").Match(t.low) {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainOpenAccount
	return Reply{Text: "Which type: Savings, Current, or Mutual?", Intent: "open_account"}, true
}

func (e *Engine) ruleOpenAccountType(t *turn) (Reply, bool) {
	mem := t.mem
	if mem.CurrentDomain != domainOpenAccount || mem.OpenAccountType != "" {
		return Reply{}, false
	}
	for _, accountType := range openAccountTypes {
		if containsWord(t.low, accountType) {
			mem.OpenAccountType = accountType
			return Reply{
				Text:   "Eligibility: Aadhaar, PAN (if required), Mobile number. Please provide mobile then Aadhaar.",
				Intent: "account_eligibility",
			}, true
		}
	}
	return Reply{Text: "Which type: Savings, Current, or Mutual?", Intent: "open_account"}, true
}

func (e *Engine) ruleOpenAccountCredentials(t *turn) (Reply, bool) {
	mem := t.mem
	if mem.CurrentDomain != domainOpenAccount || mem.OpenAccountType == "" {
		return Reply{}, false
	}
	if mem.Mobile != "" && mem.NationalID != "" {
		number := e.ledger.NewAccountNumber()
		mem.ClearDomain(domainOpenAccount)
		return Reply{
			Text:   fmt.Sprintf("Your new account is created! Account number: %s.", number),
			Intent: "provide_new_account",
		}, true
	}
	if mem.Mobile != "" {
		return Reply{Text: "Mobile number received. Now provide your 12-digit Aadhaar number.", Intent: "account_eligibility"}, true
	}
	if mem.NationalID != "" {
		return Reply{Text: "Aadhaar received. Now provide your 10-digit mobile number.", Intent: "account_eligibility"}, true
	}
	return Reply{
		Text:   "Please provide your 10-digit mobile number and 12-digit Aadhaar number.",
		Intent: "account_eligibility",
	}, true
}
