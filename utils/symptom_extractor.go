package utils

import (
	"sort"
	"strings"

	"digital-physician-backend/models"
)

type symptomCategory struct {
	name   string
	en     []string
	ur     []string
	casual []string
}

// symptomCategories is checked in order; every hit adds the category name and
// the phrase that matched.
var symptomCategories = []symptomCategory{
	{
		name: "pain",
		en: []string{
			"pain", "ache", "aches", "hurt", "hurts", "sore", "painful", "aching", "hurting",
			"throbbing", "burning", "stabbing", "sharp", "dull", "tender", "discomfort",
			"agony", "bothering me", "troubling", "irritating",
		},
		ur: []string{"درد", "تکلیف", "اذیت", "کسک", "چبھن", "جلن", "خراش", "پریشان کرتا ہے", "ستاتا ہے"},
		casual: []string{
			"ouch", "oww", "kills me", "killing me", "terrible", "awful", "can't bear",
			"unbearable", "really hurts", "so painful", "driving me crazy", "torture",
			"nightmare", "hell", "murder", "brutal", "dard",
		},
	},
	{
		name: "fever",
		en: []string{
			"fever", "temperature", "hot", "burning", "feverish", "heated", "warm", "high temp",
			"pyrexia", "running a fever", "feel feverish", "body heat",
		},
		ur:     []string{"بخار", "گرمی", "تپش", "سوزش", "بدن گرم", "بخار چڑھنا"},
		casual: []string{"feeling hot", "burning up", "on fire", "too hot", "sweating", "really hot", "temp is high", "bukhar"},
	},
	{
		name: "headache",
		en: []string{
			"headache", "head pain", "migraine", "head ache", "cranial pain", "cephalgia",
			"head is pounding", "head feels heavy", "pressure in head",
		},
		ur: []string{"سر درد", "سر میں درد", "سردرد", "سر کا درد", "سر میں بھاری پن", "سر دھڑکتا ہے"},
		casual: []string{
			"my head hurts", "head killing me", "splitting headache", "pounding head",
			"head is exploding", "massive headache", "sar dard", "sir dard",
		},
	},
	{
		name:   "nausea",
		en:     []string{"nausea", "nauseous", "sick", "queasy", "vomiting", "throw up", "puke", "vomit"},
		ur:     []string{"متلی", "الٹی", "قے", "چکر", "بے چینی"},
		casual: []string{"feel like throwing up", "gonna be sick", "stomach churning", "want to puke", "ulti"},
	},
	{
		name: "fatigue",
		en:   []string{"tired", "fatigue", "exhausted", "weak", "weakness", "energy", "drained", "sleepy"},
		ur:   []string{"تھکان", "کمزوری", "سستی", "نیند"},
		casual: []string{
			"dead tired", "wiped out", "no energy", "can't get up", "feel lazy", "beat",
			"burnt out", "running on empty", "zombie mode", "completely drained", "thakan",
		},
	},
	{
		name:   "cough",
		en:     []string{"cough", "coughing", "hack", "hacking", "chest congestion", "phlegm"},
		ur:     []string{"کھانسی", "سینے میں کف", "بلغم"},
		casual: []string{"hacking up", "can't stop coughing", "barking cough", "khansi"},
	},
	{
		name:   "stomach",
		en:     []string{"stomach", "belly", "abdomen", "tummy", "gut", "gastric", "digestive"},
		ur:     []string{"پیٹ", "معدہ", "شکم", "پیٹ میں درد"},
		casual: []string{"tummy ache", "belly hurts", "gut issues", "stomach acting up", "pait dard"},
	},
	{
		name:   "anxiety",
		en:     []string{"anxiety", "anxious", "worry", "stress", "nervous", "panic", "fear", "tension"},
		ur:     []string{"بے چینی", "گھبراہٹ", "تناؤ", "خوف", "پریشانی"},
		casual: []string{"freaking out", "can't relax", "stressed out", "worried sick"},
	},
	{
		name:   "sleep",
		en:     []string{"sleep", "insomnia", "sleepless", "can't sleep", "restless", "awake"},
		ur:     []string{"نیند", "بے خوابی", "سو نہیں سکتا"},
		casual: []string{"can't fall asleep", "tossing and turning", "wide awake", "no sleep", "neend nahi"},
	},
	{
		name:   "skin",
		en:     []string{"rash", "itchy", "itch", "skin", "red", "bumps", "spots", "acne", "pimples"},
		ur:     []string{"خارش", "جلد", "دانے", "سرخی"},
		casual: []string{"breaking out", "skin acting up", "itchy as hell", "red patches"},
	},
}

type bodyPart struct {
	name  string
	terms []string
}

var bodyParts = []bodyPart{
	{"head", []string{"head", "skull", "cranium", "brain", "migraine", "سر", "دماغ"}},
	{"chest", []string{"chest", "lung", "breathing", "breath", "respiratory", "سینہ", "چھاتی", "سانس"}},
	{"stomach", []string{"stomach", "belly", "abdomen", "gut", "gastric", "digestive", "پیٹ", "معدہ", "ہضم"}},
	{"back", []string{"back", "spine", "lower back", "upper back", "کمر", "پیٹھ", "ریڑھ"}},
	{"throat", []string{"throat", "neck", "swallow", "tonsil", "گلا", "حلق"}},
	{"eyes", []string{"eye", "eyes", "vision", "sight", "see", "آنکھ", "بصارت"}},
	{"ears", []string{"ear", "hearing", "hear", "sound", "کان", "سماعت"}},
	{"skin", []string{"skin", "rash", "itch", "dermatitis", "جلد", "خارش", "دانے"}},
	{"arms", []string{
		"arm", "arms", "hand", "hands", "finger", "fingers", "wrist", "wrists", "shoulder", "shoulders",
		"بازو", "ہاتھ", "انگلی", "کلائی", "کندھا",
	}},
	{"legs", []string{
		"leg", "legs", "foot", "feet", "ankle", "ankles", "knee", "knees", "thigh", "thighs",
		"ٹانگ", "پاؤں", "ٹخنہ", "گھٹنا", "ران",
	}},
	{"joints", []string{"joint", "joints", "elbow", "elbows", "arthritis", "stiffness", "swelling", "جوڑ", "گٹھیا", "اکڑاہٹ", "سوجن"}},
	{"sleep", []string{"sleep", "insomnia", "dream", "nightmare", "نیند", "خواب", "بے خوابی"}},
	{"mood", []string{"mood", "depression", "anxiety", "stress", "مزاج", "ڈپریشن", "تناؤ"}},
}

var (
	intensityWords = []string{"severe", "mild", "intense", "slight", "heavy", "light"}
	durationWords  = []string{"chronic", "acute", "sudden", "gradual", "persistent", "recurring"}
)

const (
	IntensityPrefix = "intensity:"
	DurationPrefix  = "duration:"
)

// SymptomExtractor turns normalized text into a set of symptom tags:
// category names, the literal phrases that matched, body parts and
// intensity / duration annotations. Inflected forms that are not in the
// tables are not recognised.
type SymptomExtractor struct {
	emotions *EmotionClassifier
}

// NewSymptomExtractor builds an extractor. Words that the emotion classifier
// treats as tone markers are never reported as intensity annotations.
func NewSymptomExtractor(emotions *EmotionClassifier) *SymptomExtractor {
	if emotions == nil {
		emotions = NewEmotionClassifier()
	}
	return &SymptomExtractor{emotions: emotions}
}

// Extract returns the sorted, de-duplicated tags found in text
func (se *SymptomExtractor) Extract(text string, lang models.Language) []string {
	text = strings.ToLower(text)
	tags := make(map[string]struct{})

	for _, cat := range symptomCategories {
		for _, phrase := range cat.phrases(lang) {
			if ContainsWord(text, phrase) {
				tags[cat.name] = struct{}{}
				tags[phrase] = struct{}{}
			}
		}
	}

	for _, part := range bodyParts {
		if ContainsAny(text, part.terms) {
			tags[part.name] = struct{}{}
		}
	}

	for _, w := range intensityWords {
		if se.emotions.IsEmotionalMarker(w) {
			continue
		}
		if ContainsWord(text, w) {
			tags[IntensityPrefix+w] = struct{}{}
		}
	}
	for _, w := range durationWords {
		if ContainsWord(text, w) {
			tags[DurationPrefix+w] = struct{}{}
		}
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func (c symptomCategory) phrases(lang models.Language) []string {
	all := make([]string, 0, len(c.en)+len(c.ur)+len(c.casual))
	all = append(all, c.en...)
	if lang != models.LanguageEnglish {
		all = append(all, c.ur...)
	}
	return append(all, c.casual...)
}

// IsAnnotation reports whether a tag is an intensity or duration marker
func IsAnnotation(tag string) bool {
	return strings.HasPrefix(tag, IntensityPrefix) || strings.HasPrefix(tag, DurationPrefix)
}
