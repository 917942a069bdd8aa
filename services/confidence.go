package services

import (
	"math"
	"strings"

	"digital-physician-backend/models"
)

const (
	noMatchConfidence = 0.1
	breadthCap        = 0.4
	qualityCap        = 0.5
	specificityBonus  = 0.1
	uniquenessBonus   = 0.1
)

// EstimateConfidence scores in [0,1] how well the tags support the top ranked
// condition: breadth of the tags, share of tags overlapping the top
// condition's keywords, a bonus for intensity or duration annotations and a
// bonus when exactly one condition matched.
func EstimateConfidence(symptoms []string, ranked []models.ScoredCondition) float64 {
	if len(symptoms) == 0 {
		return 0
	}
	if len(ranked) == 0 {
		return noMatchConfidence
	}

	n := float64(len(symptoms))
	breadth := math.Min(n/4, breadthCap)

	keywords := lowerAll(ranked[0].Condition.Keywords.All())
	overlapping := 0
	for _, s := range symptoms {
		if overlapsAny(strings.ToLower(s), keywords) {
			overlapping++
		}
	}
	quality := math.Min(float64(overlapping)/n, qualityCap)

	total := breadth + quality
	for _, s := range symptoms {
		if strings.Contains(s, ":") {
			total += specificityBonus
			break
		}
	}
	if len(ranked) == 1 {
		total += uniquenessBonus
	}

	return math.Min(total, 1)
}

func overlapsAny(tag string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
			return true
		}
	}
	return false
}
