package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital-physician-backend/models"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Language
	}{
		{name: "empty", input: "", want: models.LanguageEnglish},
		{name: "digits and punctuation only", input: "123 !!", want: models.LanguageEnglish},
		{name: "english", input: "I have a headache", want: models.LanguageEnglish},
		{name: "urdu", input: "مجھے سر درد ہے", want: models.LanguageUrdu},
		{name: "half and half", input: "abc ابج", want: models.LanguageMixed},
		{name: "one urdu word in english sentence", input: "my sir hurts a lot today درد", want: models.LanguageMixed},
		{name: "tiny urdu share", input: "this is a long english sentence about pain د", want: models.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.input))
		})
	}
}
