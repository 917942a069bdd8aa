package services

import (
	"sort"
	"strings"

	"digital-physician-backend/models"
)

const (
	scoreExact        = 5
	scorePhrase       = 4
	scoreBodyPartPain = 4
	scorePartial      = 3
	scoreSemantic     = 2
	scoreMappedPart   = 2
	scoreDirectPart   = 3

	maxSuggestions = 3
)

type semanticMapping struct {
	key     string
	related []string
}

// semanticMappings relate a symptom tag to words a condition's keywords may use
var semanticMappings = []semanticMapping{
	{"pain", []string{"ache", "hurt", "sore", "discomfort", "درد"}},
	{"hot", []string{"fever", "temperature", "burning", "بخار"}},
	{"tired", []string{"fatigue", "exhausted", "weak", "تھکان"}},
	{"sick", []string{"nausea", "unwell", "ill", "متلی"}},
	{"head", []string{"migraine", "headache", "cranial", "سر"}},
	{"stomach", []string{"gastric", "abdominal", "belly", "پیٹ"}},
	{"chest", []string{"respiratory", "lung", "breathing", "سینہ"}},
	{"arms", []string{"arm", "hand", "finger", "wrist", "shoulder", "elbow", "بازو", "ہاتھ"}},
	{"legs", []string{"leg", "foot", "ankle", "knee", "thigh", "ٹانگ", "پاؤں"}},
	{"joints", []string{"joint", "arthritis", "stiffness", "swelling", "جوڑ", "گٹھیا"}},
}

type bodyPartMapping struct {
	conditionKey string
	parts        []string
}

// bodyPartMappings give +2 per listed part found in the tags when the
// condition's English name contains conditionKey
var bodyPartMappings = []bodyPartMapping{
	{"headache", []string{"head", "skull", "cranium"}},
	{"migraine", []string{"head", "skull"}},
	{"stomach pain", []string{"stomach", "belly", "abdomen"}},
	{"gastritis", []string{"stomach", "belly", "abdomen"}},
	{"asthma", []string{"chest", "lung", "breathing"}},
	{"back pain", []string{"back", "spine"}},
	{"backache", []string{"back", "spine"}},
	{"arm pain", []string{"arms", "arm", "hand", "finger", "wrist", "shoulder", "elbow"}},
	{"leg pain", []string{"legs", "leg", "foot", "feet", "ankle", "knee", "thigh", "calf"}},
	{"joint pain", []string{"arms", "arm", "hand", "finger", "wrist", "shoulder", "elbow", "joints", "knee", "ankle", "legs", "leg"}},
	{"arthritis", []string{"joints", "knee", "elbow", "arms", "arm", "legs", "leg"}},
}

// directParts give +3 when the tag is exactly a body part and the condition
// name contains its stem
var directParts = []struct {
	tag  string
	stem string
}{
	{"arms", "arm"},
	{"legs", "leg"},
	{"stomach", "stomach"},
	{"back", "back"},
	{"head", "head"},
}

// ConditionMatcher scores a fixed condition table against symptom tags
type ConditionMatcher struct {
	conditions []models.Condition
}

func NewConditionMatcher(conditions []models.Condition) *ConditionMatcher {
	table := make([]models.Condition, len(conditions))
	copy(table, conditions)
	return &ConditionMatcher{conditions: table}
}

// Match returns at most three conditions with a positive score, best first.
// Equal scores keep table order.
func (m *ConditionMatcher) Match(symptoms []string, lang models.Language) []models.ScoredCondition {
	tags := make([]string, len(symptoms))
	for i, s := range symptoms {
		tags[i] = strings.ToLower(s)
	}

	var matches []models.ScoredCondition
	for _, c := range m.conditions {
		if score := m.Score(c, tags, lang); score > 0 {
			matches = append(matches, models.ScoredCondition{Condition: c, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}

// Score is the total score of one condition for lowercased tags
func (m *ConditionMatcher) Score(c models.Condition, tags []string, lang models.Language) int {
	keywords := lowerAll(c.Keywords.For(lang))

	score := 0
	for _, kw := range keywords {
		for _, tag := range tags {
			score += keywordScore(kw, tag, tags)
		}
	}

	for _, tag := range tags {
		if semanticMatch(tag, keywords) {
			score += scoreSemantic
		}
	}

	return score + bodyPartBonus(tags, strings.ToLower(c.Name.En))
}

// keywordScore applies the first rule that fires for one keyword and tag.
// Once a "<part> pain" keyword meets the bare "pain" tag no weaker rule is
// tried, even when the body part is absent from the tags.
func keywordScore(kw, tag string, tags []string) int {
	switch {
	case tag == kw:
		return scoreExact
	case strings.Contains(kw, " ") && strings.Contains(tag, kw):
		return scorePhrase
	case strings.Contains(kw, "pain") && tag == "pain":
		part := strings.TrimSpace(strings.Replace(kw, "pain", "", 1))
		for _, other := range tags {
			if strings.Contains(other, part) {
				return scoreBodyPartPain
			}
		}
		return 0
	case strings.Contains(tag, kw) || strings.Contains(kw, tag):
		return scorePartial
	}
	return 0
}

func semanticMatch(tag string, keywords []string) bool {
	for _, sm := range semanticMappings {
		if !strings.Contains(tag, sm.key) {
			continue
		}
		for _, kw := range keywords {
			for _, rel := range sm.related {
				if strings.Contains(kw, rel) {
					return true
				}
			}
		}
	}
	return false
}

func bodyPartBonus(tags []string, conditionName string) int {
	bonus := 0

	for _, bm := range bodyPartMappings {
		if !strings.Contains(conditionName, bm.conditionKey) {
			continue
		}
		for _, part := range bm.parts {
			for _, tag := range tags {
				if strings.Contains(tag, part) {
					bonus += scoreMappedPart
					break
				}
			}
		}
	}

	for _, tag := range tags {
		for _, dp := range directParts {
			if tag == dp.tag && strings.Contains(conditionName, dp.stem) {
				bonus += scoreDirectPart
			}
		}
	}

	return bonus
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
