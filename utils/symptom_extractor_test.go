package utils

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital-physician-backend/models"
)

func extract(text string, lang models.Language) []string {
	return NewSymptomExtractor(NewEmotionClassifier()).Extract(NormalizeText(text), lang)
}

func TestExtractSevereHeadacheAndStomach(t *testing.T) {
	tags := extract("I have a severe headache and my stomach hurts", models.LanguageEnglish)

	for _, want := range []string{"headache", "head", "pain", "stomach", "hurts"} {
		assert.Contains(t, tags, want)
	}
	for _, tag := range tags {
		assert.False(t, strings.HasPrefix(tag, IntensityPrefix), "unexpected intensity tag %q", tag)
	}
}

func TestExtractUrduHeadache(t *testing.T) {
	tags := extract("مجھے سر درد ہے", models.LanguageUrdu)

	for _, want := range []string{"headache", "head", "pain", "درد", "سر درد"} {
		assert.Contains(t, tags, want)
	}
}

func TestExtractUrduPhrasesSkippedForEnglish(t *testing.T) {
	tags := extract("مجھے سر درد ہے", models.LanguageEnglish)

	assert.NotContains(t, tags, "pain")
	assert.NotContains(t, tags, "headache")
	// body parts are scanned regardless of language
	assert.Contains(t, tags, "head")
}

func TestExtractRomanUrdu(t *testing.T) {
	tags := extract("mujhe sar dard hai", models.LanguageEnglish)

	assert.Contains(t, tags, "headache")
	assert.Contains(t, tags, "pain")
}

func TestExtractArmsAndLegs(t *testing.T) {
	tags := extract("my arms and legs hurt after lifting", models.LanguageEnglish)

	for _, want := range []string{"arms", "legs", "pain", "hurt"} {
		assert.Contains(t, tags, want)
	}
}

func TestExtractAnnotations(t *testing.T) {
	tags := extract("my back feels heavy and the pain is chronic", models.LanguageEnglish)

	assert.Contains(t, tags, "intensity:heavy")
	assert.Contains(t, tags, "duration:chronic")
	assert.Contains(t, tags, "back")
	assert.Contains(t, tags, "pain")
}

func TestExtractToneWordsAreNotIntensity(t *testing.T) {
	tags := extract("a slight ache and mild fever", models.LanguageEnglish)

	assert.NotContains(t, tags, "intensity:slight")
	assert.NotContains(t, tags, "intensity:mild")
	assert.NotContains(t, tags, "intensity:light")
	assert.Contains(t, tags, "pain")
	assert.Contains(t, tags, "fever")
}

func TestExtractNoStemming(t *testing.T) {
	tags := extract("coughs", models.LanguageEnglish)

	assert.NotContains(t, tags, "cough")
}

func TestExtractNothingRecognised(t *testing.T) {
	assert.Empty(t, extract("qwerty zxcvb asdf", models.LanguageEnglish))
	assert.Empty(t, extract("", models.LanguageEnglish))
}

func TestExtractSortedAndUnique(t *testing.T) {
	tags := extract("pain pain pain in my head and headache", models.LanguageEnglish)

	assert.True(t, sort.StringsAreSorted(tags))
	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
	}
}

func TestIsAnnotation(t *testing.T) {
	assert.True(t, IsAnnotation("intensity:heavy"))
	assert.True(t, IsAnnotation("duration:acute"))
	assert.False(t, IsAnnotation("pain"))
}
