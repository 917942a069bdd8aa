package utils

import (
    "strings"

    "digital-physician-backend/models"
)

type emotionPattern struct {
    emotion models.Emotion
    phrases []string
}

// EmotionClassifier labels the tone of a message. Categories are checked in
// declaration order and the first one with a hit wins.
type EmotionClassifier struct {
    patterns []emotionPattern
}

func NewEmotionClassifier() *EmotionClassifier {
    return &EmotionClassifier{
        patterns: []emotionPattern{
            {models.EmotionSevere, []string{
                "terrible", "awful", "horrible", "unbearable", "killing me", "can't stand",
                "severe", "intense", "really bad", "very painful", "excruciating", "agony",
                "torture", "nightmare", "hell", "murder", "brutal", "worst ever", "dying",
                "شدید", "ناقابل برداشت",
            }},
            {models.EmotionMild, []string{
                "little", "slight", "minor", "bit of", "somewhat", "mild", "gentle",
                "not too bad", "manageable", "tolerable", "okay", "fine mostly",
                "not serious", "bearable",
                "ہلکا", "ہلکی", "تھوڑا",
            }},
            {models.EmotionWorried, []string{
                "worried", "scared", "concerned", "afraid", "anxious about", "nervous",
                "freaking out", "panicking", "stressed about", "terrified", "frightened",
                "disturbed", "bothered", "confused",
                "پریشان", "ڈر لگ",
            }},
            {models.EmotionUrgent, []string{
                "urgent", "emergency", "help", "please", "asap", "immediately", "right now",
                "can't wait", "need help now", "serious", "critical", "desperate",
                "quickly", "fast",
                "فوری", "جلدی", "مدد",
            }},
            {models.EmotionFrustrated, []string{
                "annoying", "irritating", "fed up", "sick of", "tired of", "can't take it",
                "driving me nuts", "so frustrating", "getting worse", "not getting better",
                "تنگ آ",
            }},
            {models.EmotionHopeful, []string{
                "hope", "maybe", "hopefully", "think it will", "getting better", "improving",
                "not as bad", "healing", "recovery",
                "امید", "بہتر ہو",
            }},
        },
    }
}

// Classify returns the first matching tone label, or false when none match
func (ec *EmotionClassifier) Classify(message string) (models.Emotion, bool) {
    message = strings.ToLower(message)

    for _, p := range ec.patterns {
        if ContainsAny(message, p.phrases) {
            return p.emotion, true
        }
    }
    return "", false
}

// IsEmotionalMarker reports whether word belongs to any tone vocabulary
func (ec *EmotionClassifier) IsEmotionalMarker(word string) bool {
    word = strings.ToLower(word)
    for _, p := range ec.patterns {
        for _, phrase := range p.phrases {
            if phrase == word {
                return true
            }
        }
    }
    return false
}
