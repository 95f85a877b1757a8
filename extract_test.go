package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccount(t *testing.T) {
	assert.Equal(t, "12W3335451", extractAccount("balance 12W3335451"))
	assert.Equal(t, "12W3335451", extractAccount("balance 12w3335451"), "matching is case-insensitive")
	assert.Equal(t, "45A2390489", extractAccount("send to 45A2390489 now"))
	assert.Empty(t, extractAccount("no account here"))
	assert.Empty(t, extractAccount("12W33354510X"), "12 characters is not an account number")
}

func TestExtractCard(t *testing.T) {
	assert.Equal(t, "123456789876", extractCard("block 123456789876"))
	assert.Empty(t, extractCard("12345678987"), "11 digits")
	assert.Empty(t, extractCard("1234567898765"), "13 digits")
	assert.Empty(t, extractCard("1234 5678 9876"), "card digits must be contiguous")
}

func TestExtractMobile(t *testing.T) {
	assert.Equal(t, "9876543210", extractMobile("my number is 9876543210"))
	assert.Equal(t, "6123456789", extractMobile("6123456789"))
	assert.Empty(t, extractMobile("5123456789"), "mobiles start with 6-9")
	assert.Empty(t, extractMobile("987654321"), "9 digits")
}

func TestExtractNationalID(t *testing.T) {
	assert.Equal(t, "123456789012", extractNationalID("123456789012"))
	assert.Equal(t, "123456789012", extractNationalID("1234 5678 9012"))
	assert.Equal(t, "123456789012", extractNationalID("id: 1234-5678-9012"))
	assert.Empty(t, extractNationalID("12345678901"), "11 digits")
	// The stripped text must carry exactly twelve digits in total, so an id
	// sharing the message with another number yields nothing.
	assert.Empty(t, extractNationalID("9876543210 and 123456789012"))
}

func TestExtractAmount(t *testing.T) {
	amt, ok := extractAmount("send 500 please")
	assert.True(t, ok)
	assert.Equal(t, 500, amt)

	amt, ok = extractAmount("my income is 40,000")
	assert.True(t, ok)
	assert.Equal(t, 40000, amt)

	_, ok = extractAmount("send 50")
	assert.False(t, ok, "amounts need at least three digits")

	_, ok = extractAmount("1234567890123")
	assert.False(t, ok, "runs longer than nine digits are not amounts")

	_, ok = extractAmount("nothing numeric")
	assert.False(t, ok)
}
