package models

import (
	"errors"
	"fmt"
	"strings"
)

// Language is the language a message is written in or a response is rendered in
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageUrdu    Language = "ur"
	LanguageMixed   Language = "mixed"
)

// Display returns the language used for rendering text. Mixed input is
// answered in English.
func (l Language) Display() Language {
	if l == LanguageUrdu {
		return LanguageUrdu
	}
	return LanguageEnglish
}

// ParseLanguage accepts "en" / "ur" (any case handled by the caller) and
// defaults to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageUrdu:
		return LanguageUrdu
	case LanguageMixed:
		return LanguageMixed
	default:
		return LanguageEnglish
	}
}

// Bilingual holds the same text in English and Urdu
type Bilingual struct {
	En string `bson:"en" json:"en"`
	Ur string `bson:"ur" json:"ur"`
}

// In returns the text for the given language
func (b Bilingual) In(lang Language) string {
	if lang.Display() == LanguageUrdu {
		return b.Ur
	}
	return b.En
}

// IsZero reports whether both translations are empty
func (b Bilingual) IsZero() bool {
	return b.En == "" && b.Ur == ""
}

// Keywords are the matchable terms of a condition
type Keywords struct {
	En []string `bson:"en" json:"en"`
	Ur []string `bson:"ur" json:"ur"`
}

// For returns the keyword list used for matching in the given language.
// Only Urdu input is matched against the Urdu list.
func (k Keywords) For(lang Language) []string {
	if lang == LanguageUrdu {
		return k.Ur
	}
	return k.En
}

// All returns English and Urdu keywords combined
func (k Keywords) All() []string {
	all := make([]string, 0, len(k.En)+len(k.Ur))
	all = append(all, k.En...)
	return append(all, k.Ur...)
}

// Condition is one named ailment with its Unani description
type Condition struct {
	ID          string    `bson:"id" json:"id"`
	Name        Bilingual `bson:"name" json:"name"`
	Keywords    Keywords  `bson:"keywords" json:"keywords"`
	Diagnosis   Bilingual `bson:"diagnosis" json:"diagnosis"`
	Treatment   Bilingual `bson:"treatment" json:"treatment"`
	Avoid       Bilingual `bson:"avoid" json:"avoid"`
	Temperament Bilingual `bson:"temperament" json:"temperament"`
	Akhlat      Bilingual `bson:"akhlat" json:"akhlat"`
}

var (
	ErrConditionMissingID       = errors.New("condition id is required")
	ErrConditionMissingKeywords = errors.New("condition keywords are required in both languages")
	ErrConditionBlankKeyword    = errors.New("condition keywords must not be blank")
)

// Validate checks the invariants every table entry must hold
func (c Condition) Validate() error {
	if c.ID == "" {
		return ErrConditionMissingID
	}
	if len(c.Keywords.En) == 0 || len(c.Keywords.Ur) == 0 {
		return fmt.Errorf("%s: %w", c.ID, ErrConditionMissingKeywords)
	}
	// a blank keyword is a substring of every tag
	for _, kw := range c.Keywords.All() {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%s: %w", c.ID, ErrConditionBlankKeyword)
		}
	}
	return nil
}

// ScoredCondition is a condition together with the score the matcher gave it
type ScoredCondition struct {
	Condition Condition `json:"condition"`
	Score     int       `json:"score"`
}
