package services

import (
	"strings"

	"digital-physician-backend/models"
)

type questionBank struct {
	en []string
	ur []string
}

func (q questionBank) in(lang models.Language) []string {
	if lang.Display() == models.LanguageUrdu {
		return q.ur
	}
	return q.en
}

var stomachQuestions = questionBank{
	en: []string{
		"When exactly do you feel this stomach pain?",
		"Does spicy or oily food make it much worse?",
		"Do you feel a burning sensation in your chest?",
		"Any nausea or feeling like throwing up?",
		"How is your appetite these days?",
	},
	ur: []string{
		"پیٹ کا یہ درد کب محسوس ہوتا ہے؟",
		"کیا مسالیدار یا چکنا کھانا اسے بڑھا دیتا ہے؟",
		"کیا سینے میں جلن محسوس ہوتی ہے؟",
		"کیا متلی یا الٹی جیسا محسوس ہوتا ہے؟",
		"آج کل بھوک کیسی ہے؟",
	},
}

// followUpBanks are keyed by condition id
var followUpBanks = map[string]questionBank{
	"headache": {
		en: []string{
			"Is it throbbing like a heartbeat or more like a dull ache?",
			"Do you feel sick to your stomach?",
			"Does bright light make it worse?",
			"When did this headache start?",
			"Have you been stressed lately?",
		},
		ur: []string{
			"کیا درد دل کی دھڑکن کی طرح دھڑکتا ہے یا ہلکا سا رہتا ہے؟",
			"کیا متلی محسوس ہوتی ہے؟",
			"کیا تیز روشنی سے درد بڑھ جاتا ہے؟",
			"یہ سر درد کب شروع ہوا؟",
			"کیا آج کل آپ تناؤ میں ہیں؟",
		},
	},
	"insomnia": {
		en: []string{
			"How many hours of sleep do you actually get?",
			"Do you feel restless or anxious when trying to sleep?",
			"Do you drink coffee or tea in the evening?",
			"What time do you usually try to go to bed?",
			"Do you use your phone before sleeping?",
		},
		ur: []string{
			"آپ اصل میں کتنے گھنٹے سوتے ہیں؟",
			"کیا سونے کی کوشش میں بے چینی یا گھبراہٹ ہوتی ہے؟",
			"کیا آپ شام کو چائے یا کافی پیتے ہیں؟",
			"آپ عام طور پر کس وقت سونے جاتے ہیں؟",
			"کیا سونے سے پہلے موبائل استعمال کرتے ہیں؟",
		},
	},
	"stomach_pain": stomachQuestions,
	"acidity":      stomachQuestions,
}

var defaultFollowUps = questionBank{
	en: []string{
		"When did you first notice this problem?",
		"On a scale of 1-10, how bad does it feel?",
		"Is there anything that makes you feel better?",
		"Are there any other things bothering you?",
		"Has this happened to you before?",
	},
	ur: []string{
		"یہ مسئلہ پہلی بار کب محسوس ہوا؟",
		"1 سے 10 کے پیمانے پر تکلیف کتنی ہے؟",
		"کیا کوئی چیز آرام دیتی ہے؟",
		"کیا کوئی اور بات بھی پریشان کر رہی ہے؟",
		"کیا پہلے بھی ایسا ہوا ہے؟",
	},
}

// FollowUpQuestions returns at most n clarifying questions for a condition
func FollowUpQuestions(conditionID string, lang models.Language, n int) []string {
	bank, ok := followUpBanks[conditionID]
	if !ok {
		bank = defaultFollowUps
	}
	return firstN(bank.in(lang), n)
}

type guidanceBucket struct {
	triggers []string
	bank     questionBank
}

var guidanceBuckets = []guidanceBucket{
	{
		triggers: []string{"pain", "hurt", "درد"},
		bank: questionBank{
			en: []string{"My head hurts", "I have stomach pain", "My back is aching"},
			ur: []string{"میرے سر میں درد ہے", "پیٹ میں تکلیف ہو رہی ہے", "کمر میں درد ہے"},
		},
	},
	{
		triggers: []string{"sleep", "tired", "نیند", "تھکان"},
		bank: questionBank{
			en: []string{"I cannot sleep at night", "I feel very tired all the time", "I get sleepy during the day"},
			ur: []string{"مجھے نیند نہیں آتی", "میں بہت تھکا ہوا ہوں", "دن میں نیند آتی ہے"},
		},
	},
	{
		triggers: []string{"stomach", "belly", "پیٹ", "معدہ"},
		bank: questionBank{
			en: []string{"I have stomach pain", "I feel uncomfortable after eating", "I feel nauseous"},
			ur: []string{"پیٹ میں درد ہو رہا ہے", "کھانے کے بعد تکلیف ہوتی ہے", "مجھے متلی آتی ہے"},
		},
	},
}

var defaultGuidance = questionBank{
	en: []string{"I have a headache", "I think I have fever", "I am coughing a lot", "My stomach is bothering me"},
	ur: []string{"مجھے سر درد ہے", "بخار آ رہا ہے", "کھانسی ہو رہی ہے", "پیٹ میں تکلیف ہے"},
}

const maxGuidanceQuestions = 3

// GuidanceQuestions suggests example descriptions when nothing could be
// extracted from the message
func GuidanceQuestions(raw string, lang models.Language) []string {
	lower := strings.ToLower(raw)
	for _, b := range guidanceBuckets {
		for _, t := range b.triggers {
			if strings.Contains(lower, t) {
				return firstN(b.bank.in(lang), maxGuidanceQuestions)
			}
		}
	}
	return firstN(defaultGuidance.in(lang), maxGuidanceQuestions)
}

func firstN(in []string, n int) []string {
	if n < 0 || n > len(in) {
		n = len(in)
	}
	out := make([]string, n)
	copy(out, in[:n])
	return out
}
