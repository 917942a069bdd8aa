package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	camelCaseRe      = regexp.MustCompile(`([a-z])([A-Z])`)
	missingSpaceRe   = regexp.MustCompile(`([.!?])([a-zA-Z])`)
	bulletRe         = regexp.MustCompile(`[•\-*+]`)
	numberedPrefixRe = regexp.MustCompile(`(?m)^(?:[ \t]*\d+\.(?:[ \t]+|$))+`)
	exclaimRunRe     = regexp.MustCompile(`!{2,}`)
	questionRunRe    = regexp.MustCompile(`\?{2,}`)
	ellipsisRunRe    = regexp.MustCompile(`\.{3,}`)
	fillerRe         = regexp.MustCompile(`\b(?:um|uh|hmm|well|like|you\s+know)\b`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

type spellingFix struct {
	re      *regexp.Regexp
	correct string
}

// misspellings maps the corrected word to the variants users type for it
var misspellings = []struct {
	correct  string
	variants []string
}{
	{"headache", []string{"headach", "hedache", "headake", "head ache"}},
	{"nausea", []string{"nausous", "nasua"}},
	{"fatigue", []string{"fatique", "fatege", "fatige"}},
	{"diarrhea", []string{"diarrea", "diarhea", "diarrhoea"}},
	{"fever", []string{"faver", "fevr", "feaver"}},
	{"cough", []string{"cogh", "coff", "caugh"}},
}

var spellingFixes = compileSpellingFixes()

func compileSpellingFixes() []spellingFix {
	var fixes []spellingFix
	for _, m := range misspellings {
		for _, v := range m.variants {
			fixes = append(fixes, spellingFix{
				re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(v) + `\b`),
				correct: m.correct,
			})
		}
	}
	return fixes
}

// NormalizeText cleans free text typed or pasted by a user: list markers,
// repeated punctuation, filler words and common misspellings are removed and
// whitespace is collapsed. The result is lowercase and NormalizeText is
// idempotent.
func NormalizeText(text string) string {
	cleaned := text
	// After the first pass the text is lowercase and passes only remove
	// what an earlier removal exposed, so the loop reaches a fixed point.
	for {
		next := normalizePass(cleaned)
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}

func normalizePass(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	s := norm.NFC.String(text)

	// Needs the original casing.
	s = camelCaseRe.ReplaceAllString(s, "$1 $2")
	s = missingSpaceRe.ReplaceAllString(s, "$1 $2")

	s = strings.ToLower(s)
	s = numberedPrefixRe.ReplaceAllString(s, " ")
	s = bulletRe.ReplaceAllString(s, " ")

	s = exclaimRunRe.ReplaceAllString(s, "!")
	s = questionRunRe.ReplaceAllString(s, "?")
	s = ellipsisRunRe.ReplaceAllString(s, "...")

	s = removeFillers(s)

	for _, fix := range spellingFixes {
		s = fix.re.ReplaceAllString(s, fix.correct)
	}

	return collapseWhitespace(s)
}

// removeFillers repeats until no filler is left, since dropping one can
// expose another ("you you know know").
func removeFillers(s string) string {
	for {
		next := collapseWhitespace(fillerRe.ReplaceAllString(s, " "))
		if next == s {
			return next
		}
		s = next
	}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
