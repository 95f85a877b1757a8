package main

import "fmt"

// Loan eligibility is a two-stage fill: pick a type, then supply a monthly
// income. The income threshold is inclusive per type.

var loanTypes = []string{"home", "personal", "car", "education", "business"}

var loanThresholds = map[string]int{
	"home":      40000,
	"personal":  20000,
	"car":       25000,
	"education": 15000,
	"business":  30000,
}

// ruleLoanDocuments answers the generic document checklist without touching
// the current domain; it works mid-flow too.
func (e *Engine) ruleLoanDocuments(t *turn) (Reply, bool) {
	if !e.phrases.set("loan_documents").Match(t.low) {
		return Reply{}, false
	}
	return Reply{Text: e.pick("loan_documents"), Intent: "loan_documents"}, true
}

func (e *Engine) ruleLoanInquiry(t *turn) (Reply, bool) {
	if !e.phrases.set("loan").Match(t.low) || t.mem.CurrentDomain == domainLoan {
		return Reply{}, false
	}
	t.mem.CurrentDomain = domainLoan
	return Reply{
		Text:   "Available loans: Home, Personal, Car, Education, Business. Which loan would you like?",
		Intent: "loan_inquiry",
	}, true
}

func (e *Engine) ruleLoanType(t *turn) (Reply, bool) {
	mem := t.mem
	if mem.CurrentDomain != domainLoan || mem.LoanType != "" {
		return Reply{}, false
	}
	for _, loanType := range loanTypes {
		if containsWord(t.low, loanType) {
			mem.LoanType = loanType
			return Reply{
				Text:   fmt.Sprintf("You chose %s Loan. Please enter your monthly income (numbers only).", titleCase(loanType)),
				Intent: "loan_ask_income",
			}, true
		}
	}
	return Reply{
		Text:   "Please choose one: Home, Personal, Car, Education, or Business.",
		Intent: "loan_inquiry",
	}, true
}

func (e *Engine) ruleLoanIncome(t *turn) (Reply, bool) {
	mem := t.mem
	if mem.CurrentDomain != domainLoan || mem.LoanType == "" {
		return Reply{}, false
	}
	if !t.hasAmount {
		return Reply{Text: "Please enter your monthly income (numbers only).", Intent: "loan_ask_income"}, true
	}

	loanType := mem.LoanType
	minIncome, ok := loanThresholds[loanType]
	if !ok {
		minIncome = 20000
	}
	mem.ClearDomain(domainLoan)
	if t.amount >= minIncome {
		return Reply{
			Text:   fmt.Sprintf("You are eligible for the %s Loan (min monthly income required ₹%d).", titleCase(loanType), minIncome),
			Intent: "loan_approve",
		}, true
	}
	return Reply{
		Text:   fmt.Sprintf("Sorry, you are not eligible for the %s Loan. Minimum required monthly income is ₹%d.", titleCase(loanType), minIncome),
		Intent: "loan_reject",
	}, true
}
