package services

import (
	"context"
	"fmt"

	"digital-physician-backend/models"
	"digital-physician-backend/utils"
)

const (
	highConfidence     = 0.7
	moderateConfidence = 0.4
)

// InputProcessor runs a message through the understanding pipeline:
// normalize, detect language, extract symptoms, classify tone, match and
// score. It only holds immutable tables and is safe for concurrent use.
type InputProcessor struct {
	matcher   *ConditionMatcher
	extractor *utils.SymptomExtractor
	emotions  *utils.EmotionClassifier
}

func NewInputProcessor(matcher *ConditionMatcher) *InputProcessor {
	emotions := utils.NewEmotionClassifier()
	return &InputProcessor{
		matcher:   matcher,
		extractor: utils.NewSymptomExtractor(emotions),
		emotions:  emotions,
	}
}

// Process builds a fresh ProcessedInput for one message
func (p *InputProcessor) Process(ctx context.Context, text string) (*models.ProcessedInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := utils.NormalizeText(text)
	lang := utils.DetectLanguage(text)
	symptoms := p.extractor.Extract(cleaned, lang)
	suggestions := p.matcher.Match(symptoms, lang)

	processed := &models.ProcessedInput{
		OriginalText:        text,
		CleanedText:         cleaned,
		ExtractedSymptoms:   symptoms,
		DetectedLanguage:    lang,
		InputType:           utils.ClassifyInputType(text),
		HealthComplaint:     utils.HasHealthComplaint(cleaned),
		SuggestedConditions: suggestions,
		Confidence:          EstimateConfidence(symptoms, suggestions),
	}
	if emotion, ok := p.emotions.Classify(text); ok {
		processed.EmotionalContext = emotion
	}
	return processed, nil
}

var urduEmotions = map[models.Emotion]string{
	models.EmotionSevere:  "شدید تکلیف",
	models.EmotionMild:    "ہلکی تکلیف",
	models.EmotionWorried: "پریشانی",
	models.EmotionUrgent:  "فوری ضرورت",
}

// Summary describes a processed input in one line
func Summary(p *models.ProcessedInput, lang models.Language) string {
	n := len(p.ExtractedSymptoms)

	if lang.Display() == models.LanguageUrdu {
		summary := fmt.Sprintf("%d علامات کا پتہ لگایا گیا", n)
		if p.HasEmotion() {
			label, ok := urduEmotions[p.EmotionalContext]
			if !ok {
				label = string(p.EmotionalContext)
			}
			summary += " (" + label + ")"
		}
		return summary
	}

	summary := fmt.Sprintf("Detected %d symptoms", n)
	if p.HasEmotion() {
		summary += fmt.Sprintf(" (%s concern)", p.EmotionalContext)
	}
	switch {
	case p.Confidence > highConfidence:
		summary += " - High confidence match"
	case p.Confidence > moderateConfidence:
		summary += " - Moderate confidence"
	}
	return summary
}
