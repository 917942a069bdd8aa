package utils

import (
	"regexp"
	"strings"

	"digital-physician-backend/models"
)

var structuredInputRe = regexp.MustCompile(`(?m)^\s*[\-*+•]|\d+\.`)

var (
	medicalTerms      = []string{"symptom", "diagnosis", "syndrome", "condition", "disease", "disorder"}
	conversationalCue = []string{"i feel", "i have", "i am", "my", "me", "i think", "maybe"}
)

// complaintStarters are phrases people open a health complaint with
var complaintStarters = []string{
	// statements
	"i have", "i am having", "i feel", "i am feeling", "i get", "i experience",
	"suffering from", "dealing with", "bothering me", "troubling me", "my problem is",
	"issue with", "struggle with",
	"میں", "مجھے", "میرا", "میری", "آجکل", "کچھ دنوں سے", "پریشان ہوں", "تکلیف ہے", "مسئلہ ہے",
	// requests for help
	"what should i do", "can you help", "any advice", "what do you think", "how to treat",
	"what medicine", "please help", "need help", "help me",
	"کیا کروں", "کیا علاج ہے", "کیا دوا", "کیسے ٹھیک", "مدد کریں", "مدد چاہیے", "بتائیں",
	// vague unwellness
	"not feeling well", "feeling sick", "something wrong", "not good", "weird feeling",
	"strange", "uncomfortable", "off today", "under the weather",
	"ٹھیک نہیں", "بیمار ہوں", "عجیب لگ رہا", "اچھا نہیں لگ رہا", "کچھ گڑبڑ ہے", "طبیعت خراب",
}

// ClassifyInputType describes how the raw message was written
func ClassifyInputType(raw string) models.InputType {
	if structuredInputRe.MatchString(raw) {
		return models.InputStructured
	}

	lower := strings.ToLower(raw)
	if ContainsAny(lower, medicalTerms) {
		return models.InputMedical
	}
	if ContainsAny(lower, conversationalCue) {
		return models.InputConversational
	}
	return models.InputCasual
}

// HasHealthComplaint reports whether the message opens like someone
// describing a health problem or asking for help with one
func HasHealthComplaint(text string) bool {
	return ContainsAny(strings.ToLower(text), complaintStarters)
}
