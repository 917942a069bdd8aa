package models

// InputType describes how a message was written
type InputType string

const (
	InputStructured     InputType = "structured"
	InputConversational InputType = "conversational"
	InputMedical        InputType = "medical"
	InputCasual         InputType = "casual"
)

// Emotion is the tone label attached to a message
type Emotion string

const (
	EmotionSevere     Emotion = "severe"
	EmotionMild       Emotion = "mild"
	EmotionWorried    Emotion = "worried"
	EmotionUrgent     Emotion = "urgent"
	EmotionFrustrated Emotion = "frustrated"
	EmotionHopeful    Emotion = "hopeful"
)

// ProcessedInput is the result of running one user message through the
// understanding pipeline. It is built once and never mutated afterwards.
type ProcessedInput struct {
	OriginalText        string            `json:"original_text"`
	CleanedText         string            `json:"cleaned_text"`
	ExtractedSymptoms   []string          `json:"extracted_symptoms"`
	DetectedLanguage    Language          `json:"detected_language"`
	InputType           InputType         `json:"input_type"`
	EmotionalContext    Emotion           `json:"emotional_context,omitempty"`
	HealthComplaint     bool              `json:"health_complaint"`
	SuggestedConditions []ScoredCondition `json:"suggested_conditions"`
	Confidence          float64           `json:"confidence"`
}

// HasEmotion reports whether a tone label was detected
func (p *ProcessedInput) HasEmotion() bool {
	return p.EmotionalContext != ""
}

// TopCondition returns the best ranked condition, if any
func (p *ProcessedInput) TopCondition() (*Condition, bool) {
	if len(p.SuggestedConditions) == 0 {
		return nil, false
	}
	c := p.SuggestedConditions[0].Condition
	return &c, true
}

// Conditions returns the ranked conditions without scores
func (p *ProcessedInput) Conditions() []Condition {
	out := make([]Condition, len(p.SuggestedConditions))
	for i, sc := range p.SuggestedConditions {
		out[i] = sc.Condition
	}
	return out
}
