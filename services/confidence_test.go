package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-physician-backend/models"
)

func scored(score int, keywords ...string) models.ScoredCondition {
	return models.ScoredCondition{
		Condition: models.Condition{ID: keywords[0], Keywords: models.Keywords{En: keywords, Ur: keywords}},
		Score:     score,
	}
}

func TestEstimateConfidence(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []string
		ranked   []models.ScoredCondition
		want     float64
	}{
		{name: "no symptoms", want: 0},
		{name: "no match", symptoms: []string{"cough"}, want: noMatchConfidence},
		{
			name:     "single match",
			symptoms: []string{"insomnia", "sleep"},
			ranked:   []models.ScoredCondition{scored(5, "insomnia")},
			want:     1.0,
		},
		{
			name:     "two matches",
			symptoms: []string{"cough"},
			ranked:   []models.ScoredCondition{scored(5, "cough"), scored(3, "flu")},
			want:     0.75,
		},
		{
			name:     "annotation bonus",
			symptoms: []string{"cough", "duration:chronic"},
			ranked:   []models.ScoredCondition{scored(5, "cough"), scored(3, "flu")},
			want:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateConfidence(tt.symptoms, tt.ranked), 1e-9)
		})
	}
}

func TestEstimateConfidenceMonotonic(t *testing.T) {
	ranked := []models.ScoredCondition{scored(8, "cough", "phlegm"), scored(3, "flu")}

	before := EstimateConfidence([]string{"cough"}, ranked)
	after := EstimateConfidence([]string{"cough", "phlegm"}, ranked)

	assert.GreaterOrEqual(t, after, before)
}

func TestEstimateConfidenceMonotonicThroughMatcher(t *testing.T) {
	m := tableMatcher(t)

	tests := []struct {
		name  string
		input string
		top   string
		added string
	}{
		{name: "cough gains a phrase", input: "I have fever and cough", top: "cough", added: "dry cough"},
		{name: "cough gains an unrelated phrase", input: "I have fever and cough", top: "cough", added: "throat irritation"},
		{name: "headache stays unique", input: "I have a headache", top: "headache", added: "migraine"},
		{name: "insomnia stays unique", input: "I can't sleep", top: "insomnia", added: "insomnia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tags(tt.input, models.LanguageEnglish)
			ranked := m.Match(base, models.LanguageEnglish)
			require.NotEmpty(t, ranked)
			require.Equal(t, tt.top, ranked[0].Condition.ID)
			require.Contains(t, ranked[0].Condition.Keywords.En, tt.added)
			require.NotContains(t, base, tt.added)

			extended := append(append([]string{}, base...), tt.added)
			before := EstimateConfidence(base, ranked)
			after := EstimateConfidence(extended, m.Match(extended, models.LanguageEnglish))

			assert.GreaterOrEqual(t, after, before)
		})
	}
}

func TestEstimateConfidenceBounded(t *testing.T) {
	m := tableMatcher(t)
	symptoms := tags("severe chronic headache, stomach pain, fever, cough and I can't sleep", models.LanguageEnglish)

	c := EstimateConfidence(symptoms, m.Match(symptoms, models.LanguageEnglish))

	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)
}
