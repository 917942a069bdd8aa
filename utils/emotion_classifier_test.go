package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital-physician-backend/models"
)

func TestEmotionClassifier(t *testing.T) {
	ec := NewEmotionClassifier()

	tests := []struct {
		name   string
		input  string
		want   models.Emotion
		wantOK bool
	}{
		{name: "severe", input: "I have a severe headache and my stomach hurts", want: models.EmotionSevere, wantOK: true},
		{name: "mild", input: "a slight headache", want: models.EmotionMild, wantOK: true},
		{name: "worried", input: "I'm worried about my cough", want: models.EmotionWorried, wantOK: true},
		{name: "urgent", input: "Please help", want: models.EmotionUrgent, wantOK: true},
		{name: "frustrated", input: "this cough is so annoying", want: models.EmotionFrustrated, wantOK: true},
		{name: "hopeful", input: "hopefully it goes away", want: models.EmotionHopeful, wantOK: true},
		{name: "first category wins", input: "terrible pain, I'm worried", want: models.EmotionSevere, wantOK: true},
		{name: "urdu", input: "شدید درد ہے", want: models.EmotionSevere, wantOK: true},
		{name: "none", input: "I have a cough", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ec.Classify(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEmotionalMarker(t *testing.T) {
	ec := NewEmotionClassifier()

	for _, w := range []string{"severe", "mild", "intense", "slight"} {
		assert.True(t, ec.IsEmotionalMarker(w), w)
	}
	assert.False(t, ec.IsEmotionalMarker("heavy"))
	assert.False(t, ec.IsEmotionalMarker("light"))
}
