package services

import (
	"strings"

	"digital-physician-backend/models"
)

type fallbackBucket struct {
	name     string
	triggers []string
	template models.Condition
}

// fallbackBuckets are tried in order against the lowercased description.
// The first bucket with a trigger substring supplies the canned condition.
var fallbackBuckets = []fallbackBucket{
	{
		name:     "pain",
		triggers: []string{"pain", "ache", "درد"},
		template: models.Condition{
			Name: models.Bilingual{
				En: "Pain Management (Comprehensive Analysis)",
				Ur: "درد کا جامع علاج",
			},
			Diagnosis: models.Bilingual{
				En: "I understand you're experiencing pain, and I want to help you feel better. Based on your pain symptoms, this indicates an imbalance in your body temperament with potential inflammation. The pain suggests either excess heat (Yellow Bile) causing burning or sharp pain, or cold stagnation (Phlegm/Black Bile) causing dull, aching pain. Don't worry - Unani medicine has effective treatments for both types.",
				Ur: "میں سمجھتا ہوں کہ آپ کو درد ہو رہا ہے، اور میں آپ کو بہتر محسوس کرانا چاہتا ہوں۔ درد کی علامات کی بنیاد پر، یہ آپ کے جسمانی مزاج میں عدم توازن اور ممکنہ سوزش ظاہر کرتا ہے۔ درد یا تو زیادہ گرمی (صفرا) سے جلن والا تیز درد ہے، یا ٹھنڈک کی رکاوٹ (بلغم/سودا) سے ہلکا، کچھنے والا درد ہے۔ فکر نہ کریں - یونانی طب میں دونوں قسم کے درد کا مؤثر علاج ہے۔",
			},
			Treatment: models.Bilingual{
				En: "Let me help you with the best treatment approach:\n\nFor HOT/BURNING pain: \n• Gently massage with rose oil or almond oil (cooling)\n• Drink fresh cucumber juice or watermelon juice\n• Apply cold compress for 15-20 minutes\n• Eat cooling foods like yogurt, mint, and lettuce\n\nFor COLD/DULL pain:\n• Warm massage with ginger oil or mustard oil\n• Drink turmeric milk with honey before bed\n• Apply warm compress or heating pad\n• Include warming spices like ginger, cinnamon, and black pepper\n\nGeneral healing: Take 1 teaspoon honey with 3-4 drops of black seed oil twice daily. This combination helps balance your body's natural healing.",
				Ur: "میں آپ کو بہترین علاج کا طریقہ بتاتا ہوں:\n\nگرم/جلن والے درد کے لیے:\n• گلاب کے تیل یا بادام کے تیل سے نرمی سے مالش کریں (ٹھنڈک والا)\n• تازہ کھیرے کا رس یا تربوز کا رس پیئں\n• 15-20 منٹ کے لیے ٹھنڈی پٹی لگائیں\n• ٹھنڈک والی چیزیں کھائیں جیسے دہی، پودینہ، اور سلاد\n\nٹھنڈے/ہلکے درد کے لیے:\n• ادرک کے تیل یا سرسوں کے تیل سے گرم مالش\n• سونے سے پہلے شہد کے ساتھ ہلدی دودھ پیئں\n• گرم پٹی یا ہیٹنگ پیڈ لگائیں\n• گرم مسالے استعمال کریں جیسے ادرک، دارچینی، اور کالی مرچ\n\nعمومی شفا: دن میں دو بار ایک چائے کا چمچ شہد کے ساتھ 3-4 قطرے کلونجی کا تیل لیں۔ یہ مرکب آپ کے جسم کی قدرتی شفا کو متوازن کرتا ہے۔",
			},
			Avoid: models.Bilingual{
				En: "Avoid spicy foods for hot pain, cold foods for cold pain. Limit stress, maintain regular sleep, avoid heavy lifting.",
				Ur: "گرم درد کے لیے مسالیدار کھانا، ٹھنڈے درد کے لیے ٹھنڈا کھانا نہ لیں۔ تناؤ کم کریں، باقاعدہ نیند لیں، بھاری وزن نہ اٹھائیں۔",
			},
			Temperament: models.Bilingual{
				En: "Hot and Dry (if burning pain) or Cold and Wet (if dull pain)",
				Ur: "گرم اور خشک (اگر جلن والا درد) یا ٹھنڈا اور تر (اگر دھیما درد)",
			},
			Akhlat: models.Bilingual{
				En: "Yellow Bile excess (hot pain) or Phlegm/Black Bile (cold pain)",
				Ur: "زیادہ صفرا (گرم درد) یا بلغم/سودا (ٹھنڈا درد)",
			},
		},
	},
	{
		name:     "fever",
		triggers: []string{"fever", "hot", "بخار", "گرمی"},
		template: models.Condition{
			Name: models.Bilingual{
				En: "Fever & Heat Management (Comprehensive)",
				Ur: "بخار اور گرمی کا جامع علاج",
			},
			Diagnosis: models.Bilingual{
				En: "Excess Yellow Bile (Safra) causing internal heat and fever. Body temperament has shifted to hot and dry, requiring cooling remedies.",
				Ur: "زیادہ صفرا جو اندرونی گرمی اور بخار کا باعث ہے۔ جسمانی مزاج گرم اور خشک ہو گیا ہے، ٹھنڈک والے علاج کی ضرورت ہے۔",
			},
			Treatment: models.Bilingual{
				En: "Willow bark tea, pomegranate juice, rose water, cucumber water. Apply cold wet cloth on forehead. Drink plenty of cold water with lemon.",
				Ur: "ولو برک چائے، انار کا رس، گلاب جل، کھیرے کا پانی۔ پیشانی پر ٹھنڈا گیلا کپڑا رکھیں۔ نیبو کے ساتھ زیادہ ٹھنڈا پانی پیئں۔",
			},
			Avoid: models.Bilingual{
				En: "Avoid hot foods, spices, sun exposure, heavy clothing, strenuous activity. No hot drinks or warm foods.",
				Ur: "گرم کھانا، مسالے، دھوپ، بھاری کپڑے، سخت محنت سے بچیں۔ گرم مشروبات یا گرم کھانا نہ لیں۔",
			},
			Temperament: models.Bilingual{
				En: "Hot and Dry",
				Ur: "گرم اور خشک",
			},
			Akhlat: models.Bilingual{
				En: "Excess Yellow Bile (صفرا)",
				Ur: "زیادہ صفرا",
			},
		},
	},
	{
		name:     "cold",
		triggers: []string{"cold", "cough", "سردی", "کھانسی"},
		template: models.Condition{
			Name: models.Bilingual{
				En: "Cold & Respiratory Issues (Comprehensive)",
				Ur: "سردی اور سانس کے مسائل کا جامع علاج",
			},
			Diagnosis: models.Bilingual{
				En: "Excess Phlegm (Balgham) causing cold temperament and respiratory congestion. Body needs warming and drying remedies.",
				Ur: "زیادہ بلغم جو ٹھنڈا مزاج اور سانس کی بندش کا باعث ہے۔ جسم کو گرم اور خشک کرنے والے علاج کی ضرورت ہے۔",
			},
			Treatment: models.Bilingual{
				En: "Ginger tea with honey, steam inhalation with eucalyptus oil, warm salt water gargling. Take turmeric milk before sleep.",
				Ur: "شہد کے ساتھ ادرک کی چائے، یوکلپٹس تیل کے ساتھ بھاپ لینا، گرم نمکین پانی سے غرارے۔ سونے سے پہلے ہلدی دودھ لیں۔",
			},
			Avoid: models.Bilingual{
				En: "Avoid cold drinks, ice cream, cold weather exposure, wet clothes, air conditioning, dairy products temporarily.",
				Ur: "ٹھنڈے مشروبات، آئس کریم، ٹھنڈے موسم میں بے احتیاطی، گیلے کپڑے، ایئر کنڈیشن، دودھ کی اشیاء عارضی طور پر نہ لیں۔",
			},
			Temperament: models.Bilingual{
				En: "Cold and Wet",
				Ur: "ٹھنڈا اور تر",
			},
			Akhlat: models.Bilingual{
				En: "Excess Phlegm (بلغم)",
				Ur: "زیادہ بلغم",
			},
		},
	},
}

var generalFallback = models.Condition{
	Name: models.Bilingual{
		En: "Comprehensive Health Analysis",
		Ur: "جامع صحت کا تجزیہ",
	},
	Diagnosis: models.Bilingual{
		En: "Based on your symptoms, there appears to be a temperamental imbalance requiring restoration of natural body harmony through Unani principles.",
		Ur: "آپ کی علامات کی بنیاد پر، مزاجی عدم توازن ہے جس کے لیے یونانی اصولوں کے ذریعے قدرتی جسمانی ہم آہنگی کی بحالی ضروری ہے۔",
	},
	Treatment: models.Bilingual{
		En: "Balanced natural diet with seasonal fruits and vegetables, herbal teas (chamomile, mint), adequate hydration, regular moderate exercise, proper sleep cycle, stress management through meditation.",
		Ur: "موسمی پھل اور سبزیوں کے ساتھ متوازن قدرتی خوراک، جڑی بوٹیوں کی چائے (بابونے، پودینہ)، مناسب پانی، باقاعدہ ہلکی ورزش، صحیح نیند کا چکر، مراقبے کے ذریعے تناؤ کا انتظام۔",
	},
	Avoid: models.Bilingual{
		En: "Processed foods, excessive sugar, irregular eating patterns, stress, lack of sleep, sedentary lifestyle, extreme temperatures.",
		Ur: "پروسیسڈ فوڈ، زیادہ چینی، بے قاعدہ کھانے کا انداز، تناؤ، نیند کی کمی، بے حرکت زندگی، انتہائی درجہ حرارت سے بچیں۔",
	},
	Temperament: models.Bilingual{
		En: "Requires Assessment - Likely Mixed",
		Ur: "تشخیص درکار - غالباً مختلط",
	},
	Akhlat: models.Bilingual{
		En: "Mixed Humours requiring balance",
		Ur: "مختلط اخلاط - توازن درکار",
	},
}

var imageFallback = models.Condition{
	Name: models.Bilingual{
		En: "Image-Based Diagnosis (AI Analysis)",
		Ur: "تصویری تشخیص (AI تجزیہ)",
	},
	Diagnosis: models.Bilingual{
		En: "Based on image analysis and additional symptoms, this appears to be a skin or visible health condition requiring attention. Further clinical examination recommended.",
		Ur: "تصویری تجزیہ اور اضافی علامات کی بنیاد پر، یہ جلد یا ظاہری صحت کی حالت لگتی ہے جس پر توجہ درکار ہے۔ مزید طبی معائنہ تجویز کیا جاتا ہے۔",
	},
	Treatment: models.Bilingual{
		En: "General skin care with natural oils (almond, olive), gentle cleansing with rose water, avoid harsh chemicals. Apply aloe vera gel for soothing effect.",
		Ur: "قدرتی تیلوں (بادام، زیتون) کے ساتھ عمومی جلد کی دیکھ بھال، گلاب جل سے نرمی سے صفائی، سخت کیمیکلز سے بچیں۔ آرام دہ اثر کے لیے ایلو ویرا جیل لگائیں۔",
	},
	Avoid: models.Bilingual{
		En: "Avoid direct sunlight, harsh soaps, scratching the affected area, spicy foods that may worsen skin conditions.",
		Ur: "براہ راست دھوپ، سخت صابن، متاثرہ جگہ کھجانا، مسالیدار کھانا جو جلد کی حالت خراب کر سکتا ہے، سے بچیں۔",
	},
	Temperament: models.Bilingual{
		En: "Variable - depends on condition",
		Ur: "متغیر - حالت پر منحصر",
	},
	Akhlat: models.Bilingual{
		En: "Mixed - requires proper diagnosis",
		Ur: "مختلط - صحیح تشخیص درکار",
	},
}

// ComprehensiveFallback returns the canned condition used when the oracle
// cannot be reached. It is keyed by coarse keyword buckets and is
// deterministic for a given description.
func ComprehensiveFallback(symptoms string) models.Condition {
	lower := strings.ToLower(symptoms)

	for _, b := range fallbackBuckets {
		for _, t := range b.triggers {
			if strings.Contains(lower, t) {
				return withDescription(b.template, "comprehensive_"+b.name, symptoms)
			}
		}
	}
	return withDescription(generalFallback, "comprehensive_general", symptoms)
}

// ImageFallback returns the canned result of an image analysis
func ImageFallback(extra string) models.Condition {
	c := imageFallback
	c.ID = "image_analysis"
	c.Keywords = models.Keywords{
		En: nonEmpty("image", "visual", "skin", "condition", strings.TrimSpace(extra)),
		Ur: nonEmpty("تصویر", "بصری", "جلد", "حالت", strings.TrimSpace(extra)),
	}
	return c
}

func withDescription(template models.Condition, id, symptoms string) models.Condition {
	c := template
	c.ID = id
	words := descriptionKeywords(symptoms)
	c.Keywords = models.Keywords{En: words, Ur: words}
	return c
}

// descriptionKeywords splits a free text description into keywords. An empty
// description yields a single placeholder so the keyword lists are never empty.
func descriptionKeywords(s string) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{"symptoms"}
	}
	return words
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
