package main

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type matchMode int

const (
	// matchContains looks for any keyword anywhere in the text, with word
	// boundaries so "unblock" never fires a "block" rule.
	matchContains matchMode = iota
	// matchExact requires the whole normalized utterance to equal a keyword.
	matchExact
)

// keywordEntry stores both the keyword and its precompiled regex
type keywordEntry struct {
	raw   string
	regex *regexp.Regexp
}

type keywordSet struct {
	mode    matchMode
	entries []keywordEntry
}

var contractions = map[string]string{
	"i'm": "i am", "i've": "i have", "i'll": "i will", "i'd": "i would",
	"can't": "cannot", "won't": "will not", "don't": "do not",
	"doesn't": "does not", "didn't": "did not", "isn't": "is not",
	"what's": "what is", "where's": "where is", "that's": "that is",
	"it's": "it is",
}

var spaceRun = regexp.MustCompile(`\s+`)

// normalizeText lowercases, applies unicode normalization, expands common
// contractions and collapses whitespace so keyword matching sees one shape.
func normalizeText(text string) string {
	text = norm.NFKD.String(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)

	text = strings.ToLower(strings.TrimSpace(text))

	words := strings.Fields(text)
	for i, word := range words {
		if expansion, ok := contractions[word]; ok {
			words[i] = expansion
		}
	}
	text = strings.Join(words, " ")

	return spaceRun.ReplaceAllString(text, " ")
}

// compileKeywordSet normalizes each keyword and precompiles its
// word-boundary pattern.
func compileKeywordSet(mode matchMode, keywords []string) keywordSet {
	ks := keywordSet{mode: mode, entries: make([]keywordEntry, 0, len(keywords))}
	for _, kw := range keywords {
		normalized := normalizeText(kw)
		if normalized == "" {
			continue
		}
		ks.entries = append(ks.entries, keywordEntry{
			raw:   normalized,
			regex: regexp.MustCompile(`\b` + regexp.QuoteMeta(normalized) + `\b`),
		})
	}
	return ks
}

// Match reports whether the normalized text hits any keyword in the set.
func (ks keywordSet) Match(normalized string) bool {
	for _, entry := range ks.entries {
		if ks.mode == matchExact {
			if entry.raw == normalized {
				return true
			}
			continue
		}
		if entry.regex.MatchString(normalized) {
			return true
		}
	}
	return false
}

var wordRegexes sync.Map

// containsWord reports whether w occurs in text as a whole word.
func containsWord(text, w string) bool {
	if v, ok := wordRegexes.Load(w); ok {
		return v.(*regexp.Regexp).MatchString(text)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	wordRegexes.Store(w, re)
	return re.MatchString(text)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// titleCase renders a word the way it appears in replies ("home" -> "Home").
// cases.Caser carries internal state, so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
