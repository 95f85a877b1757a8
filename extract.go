package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Entity patterns are part of the conversational contract: account numbers
// are 10 alphanumerics, card numbers exactly 12 digits, mobiles 10 digits
// starting 6-9, national ids 12 digits once punctuation is stripped, amounts
// a 3-9 digit run with commas removed. Extraction never fails loudly; an
// empty result just means the utterance did not carry that entity.
var (
	accountPattern    = regexp.MustCompile(`\b[A-Z0-9]{10}\b`)
	cardPattern       = regexp.MustCompile(`\b\d{12}\b`)
	mobilePattern     = regexp.MustCompile(`\b[6-9]\d{9}\b`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	nationalIDPattern = regexp.MustCompile(`\b\d{12}\b`)
	amountPattern     = regexp.MustCompile(`\b(?:rs\.?\s*)?(\d{3,9})\b`)
)

func extractAccount(text string) string {
	return accountPattern.FindString(strings.ToUpper(text))
}

func extractCard(text string) string {
	return cardPattern.FindString(text)
}

func extractMobile(text string) string {
	return mobilePattern.FindString(text)
}

// extractNationalID strips everything but digits first, so an id may arrive
// spaced or punctuated ("1234 5678 9012"). The word-bounded match on the
// stripped string means the utterance must carry exactly twelve digits in
// total; mixing the id with other numbers yields nothing and the owning flow
// re-prompts.
func extractNationalID(text string) string {
	digits := nonDigitPattern.ReplaceAllString(text, "")
	return nationalIDPattern.FindString(digits)
}

func extractAmount(text string) (int, bool) {
	m := amountPattern.FindStringSubmatch(strings.ReplaceAll(text, ",", ""))
	if m == nil {
		return 0, false
	}
	return parseInt(m[1])
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
