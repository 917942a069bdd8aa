package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComprehensiveFallback(t *testing.T) {
	tests := []struct {
		symptoms string
		wantID   string
	}{
		{"my back has pain", "comprehensive_pain"},
		{"Terrible HEADACHE", "comprehensive_pain"},
		{"I have a fever", "comprehensive_fever"},
		{"مجھے بخار ہے", "comprehensive_fever"},
		{"bad cough", "comprehensive_cold"},
		{"feeling strange", "comprehensive_general"},
	}

	for _, tt := range tests {
		t.Run(tt.symptoms, func(t *testing.T) {
			c := ComprehensiveFallback(tt.symptoms)

			assert.Equal(t, tt.wantID, c.ID)
			assert.NoError(t, c.Validate())
			assert.NotEmpty(t, c.Treatment.En)
			assert.NotEmpty(t, c.Treatment.Ur)
		})
	}
}

func TestComprehensiveFallbackIsDeterministic(t *testing.T) {
	assert.Equal(t, ComprehensiveFallback("knee pain"), ComprehensiveFallback("knee pain"))
}

func TestComprehensiveFallbackKeywords(t *testing.T) {
	assert.Equal(t, []string{"knee", "pain"}, ComprehensiveFallback("knee pain").Keywords.En)
	assert.Equal(t, []string{"symptoms"}, ComprehensiveFallback("").Keywords.En)
}

func TestImageFallback(t *testing.T) {
	c := ImageFallback(" rash on arm ")
	assert.Equal(t, "image_analysis", c.ID)
	assert.Contains(t, c.Keywords.En, "rash on arm")
	assert.NoError(t, c.Validate())

	assert.Len(t, ImageFallback("").Keywords.En, 4)
}
