package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-physician-backend/database"
	"digital-physician-backend/models"
	"digital-physician-backend/utils"
)

func tableMatcher(t *testing.T) *ConditionMatcher {
	t.Helper()
	conditions, err := database.NewStaticConditionRepository().All(context.Background())
	require.NoError(t, err)
	return NewConditionMatcher(conditions)
}

func tags(text string, lang models.Language) []string {
	return utils.NewSymptomExtractor(nil).Extract(utils.NormalizeText(text), lang)
}

func ids(ranked []models.ScoredCondition) []string {
	out := make([]string, len(ranked))
	for i, sc := range ranked {
		out[i] = sc.Condition.ID
	}
	return out
}

func TestMatchUrduHeadache(t *testing.T) {
	m := tableMatcher(t)

	ranked := m.Match(tags("مجھے سر درد ہے", models.LanguageUrdu), models.LanguageUrdu)

	require.NotEmpty(t, ranked)
	assert.Equal(t, "headache", ranked[0].Condition.ID)
	assert.Greater(t, ranked[0].Score, 0)
}

func TestMatchArmsAndLegs(t *testing.T) {
	m := tableMatcher(t)

	ranked := m.Match(tags("my arms and legs hurt after lifting", models.LanguageEnglish), models.LanguageEnglish)

	require.GreaterOrEqual(t, len(ranked), 2)
	assert.ElementsMatch(t, []string{"arm_pain", "leg_pain"}, ids(ranked)[:2])
}

func TestMatchIsDeterministic(t *testing.T) {
	m := tableMatcher(t)
	symptoms := tags("I have a severe headache and my stomach hurts", models.LanguageEnglish)

	first := m.Match(symptoms, models.LanguageEnglish)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Match(symptoms, models.LanguageEnglish))
	}
}

func TestMatchLimitsAndOrders(t *testing.T) {
	m := tableMatcher(t)

	ranked := m.Match(tags("pain in my head, back, stomach, arms and legs", models.LanguageEnglish), models.LanguageEnglish)

	assert.LessOrEqual(t, len(ranked), maxSuggestions)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestMatchNoTags(t *testing.T) {
	m := tableMatcher(t)
	assert.Empty(t, m.Match(nil, models.LanguageEnglish))
}

func TestMatchTiesKeepTableOrder(t *testing.T) {
	m := NewConditionMatcher([]models.Condition{
		{ID: "alpha", Name: models.Bilingual{En: "Alpha"}, Keywords: models.Keywords{En: []string{"cough"}, Ur: []string{"کھانسی"}}},
		{ID: "beta", Name: models.Bilingual{En: "Beta"}, Keywords: models.Keywords{En: []string{"cough"}, Ur: []string{"کھانسی"}}},
		{ID: "gamma", Name: models.Bilingual{En: "Gamma"}, Keywords: models.Keywords{En: []string{"rash"}, Ur: []string{"خارش"}}},
	})

	ranked := m.Match([]string{"cough"}, models.LanguageEnglish)

	assert.Equal(t, []string{"alpha", "beta"}, ids(ranked))
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name string
		kw   string
		tag  string
		tags []string
		want int
	}{
		{name: "exact", kw: "headache", tag: "headache", want: scoreExact},
		{name: "phrase inside tag", kw: "head pain", tag: "severe head pain", want: scorePhrase},
		{name: "body part pain", kw: "arm pain", tag: "pain", tags: []string{"pain", "arms"}, want: scoreBodyPartPain},
		{name: "body part pain without part", kw: "arm pain", tag: "pain", tags: []string{"pain"}, want: 0},
		{name: "partial", kw: "head", tag: "headache", want: scorePartial},
		{name: "unrelated", kw: "fever", tag: "cough", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywordScore(tt.kw, tt.tag, tt.tags))
		})
	}
}

func TestBodyPartBonus(t *testing.T) {
	// "arms" hits both "arms" and "arm" in the mapping, plus the direct bonus
	assert.Equal(t, 2*scoreMappedPart+scoreDirectPart, bodyPartBonus([]string{"arms"}, "arm pain"))
	assert.Equal(t, 0, bodyPartBonus([]string{"arms"}, "insomnia"))
}

func TestSemanticMatch(t *testing.T) {
	assert.True(t, semanticMatch("pain", []string{"stomach ache"}))
	assert.True(t, semanticMatch("head", []string{"migraine"}))
	assert.False(t, semanticMatch("cough", []string{"migraine"}))
}
