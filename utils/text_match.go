package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsWord reports whether phrase occurs in text with no letter, digit or
// combining mark touching either end. Unlike the regexp \b it works for
// Urdu script as well as Latin. Matching is case-insensitive.
func ContainsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	text = strings.ToLower(text)
	phrase = strings.ToLower(phrase)

	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		// Advance by one rune so overlapping candidates are still tried.
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

// ContainsAny reports whether any of the terms is a substring of text
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}
