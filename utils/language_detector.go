package utils

import "digital-physician-backend/models"

const (
	urduOnlyRatio  = 0.7
	urduMixedRatio = 0.1
)

// DetectLanguage classifies text by the share of Urdu-block characters
// (U+0600–U+06FF) among Urdu and Latin letters.
func DetectLanguage(text string) models.Language {
	urdu, latin := 0, 0
	for _, r := range text {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			urdu++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	total := urdu + latin
	if total == 0 {
		return models.LanguageEnglish
	}

	ratio := float64(urdu) / float64(total)
	switch {
	case ratio > urduOnlyRatio:
		return models.LanguageUrdu
	case ratio > urduMixedRatio:
		return models.LanguageMixed
	default:
		return models.LanguageEnglish
	}
}
