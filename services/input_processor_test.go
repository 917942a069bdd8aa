package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-physician-backend/models"
)

func TestProcessScenarios(t *testing.T) {
	p := NewInputProcessor(tableMatcher(t))
	ctx := context.Background()

	t.Run("urdu headache", func(t *testing.T) {
		got, err := p.Process(ctx, "مجھے سر درد ہے")
		require.NoError(t, err)

		assert.Equal(t, models.LanguageUrdu, got.DetectedLanguage)
		assert.Contains(t, got.ExtractedSymptoms, "headache")
		assert.Contains(t, got.ExtractedSymptoms, "head")
		top, ok := got.TopCondition()
		require.True(t, ok)
		assert.Equal(t, "headache", top.ID)
		assert.Greater(t, got.SuggestedConditions[0].Score, 0)
	})

	t.Run("arms and legs", func(t *testing.T) {
		got, err := p.Process(ctx, "my arms and legs hurt after lifting")
		require.NoError(t, err)

		for _, want := range []string{"arms", "legs", "pain"} {
			assert.Contains(t, got.ExtractedSymptoms, want)
		}
		top, ok := got.TopCondition()
		require.True(t, ok)
		assert.Contains(t, []string{"arm_pain", "leg_pain"}, top.ID)
	})

	t.Run("nothing recognisable", func(t *testing.T) {
		got, err := p.Process(ctx, "qwerty zxcvb asdf")
		require.NoError(t, err)

		assert.Empty(t, got.ExtractedSymptoms)
		assert.Empty(t, got.SuggestedConditions)
		assert.Zero(t, got.Confidence)
	})

	t.Run("severe tone", func(t *testing.T) {
		got, err := p.Process(ctx, "I have a severe headache and my stomach hurts")
		require.NoError(t, err)

		assert.Equal(t, models.EmotionSevere, got.EmotionalContext)
		assert.NotContains(t, got.ExtractedSymptoms, "intensity:severe")
		assert.True(t, got.HealthComplaint)
		assert.Equal(t, models.InputConversational, got.InputType)
		assert.Equal(t, "i have a severe headache and my stomach hurts", got.CleanedText)
	})

	t.Run("structured list", func(t *testing.T) {
		got, err := p.Process(ctx, "- fever\n- cough")
		require.NoError(t, err)

		assert.Equal(t, models.InputStructured, got.InputType)
		assert.Contains(t, got.ExtractedSymptoms, "fever")
		assert.Contains(t, got.ExtractedSymptoms, "cough")
	})
}

func TestProcessCancelled(t *testing.T) {
	p := NewInputProcessor(tableMatcher(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Process(ctx, "headache")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name  string
		input models.ProcessedInput
		lang  models.Language
		want  string
	}{
		{
			name:  "high confidence",
			input: models.ProcessedInput{ExtractedSymptoms: []string{"a", "b", "c"}, EmotionalContext: models.EmotionSevere, Confidence: 0.8},
			lang:  models.LanguageEnglish,
			want:  "Detected 3 symptoms (severe concern) - High confidence match",
		},
		{
			name:  "moderate",
			input: models.ProcessedInput{ExtractedSymptoms: []string{"a"}, Confidence: 0.5},
			lang:  models.LanguageEnglish,
			want:  "Detected 1 symptoms - Moderate confidence",
		},
		{
			name:  "low",
			input: models.ProcessedInput{Confidence: 0.1},
			lang:  models.LanguageEnglish,
			want:  "Detected 0 symptoms",
		},
		{
			name:  "urdu",
			input: models.ProcessedInput{ExtractedSymptoms: []string{"a", "b"}, EmotionalContext: models.EmotionWorried},
			lang:  models.LanguageUrdu,
			want:  "2 علامات کا پتہ لگایا گیا (پریشانی)",
		},
		{
			name:  "urdu unmapped tone",
			input: models.ProcessedInput{EmotionalContext: models.EmotionHopeful},
			lang:  models.LanguageUrdu,
			want:  "0 علامات کا پتہ لگایا گیا (hopeful)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(&tt.input, tt.lang))
		})
	}
}
