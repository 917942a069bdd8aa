package database

import "digital-physician-backend/models"

// conditionTable is the compiled-in Unani condition reference. Order matters:
// the matcher breaks score ties by table position.
var conditionTable = []models.Condition{
	{
		ID: "insomnia",
		Name: models.Bilingual{
			En: "Insomnia (Difficulty Sleeping)",
			Ur: "بے خوابی (نیند نہ آنا)",
		},
		Keywords: models.Keywords{
			En: []string{"insomnia", "sleep", "cant sleep", "difficulty sleeping", "sleepless", "awake"},
			Ur: []string{"بے خوابی", "نیند", "سو نہیں سکتا", "نیند نہیں آتی"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess hot bile (yellow bile), mental restlessness",
			Ur: "زیادہ گرم صفرا، ذہنی بے چینی",
		},
		Treatment: models.Bilingual{
			En: "Massage with poppy seed oil, sweet almond oil before sleep, drink milk with honey, jujube syrup",
			Ur: "خشخاش کے تیل سے مالش، سونے سے پہلے میٹھے بادام کا تیل، دودھ میں شہد، بیر کا شربت",
		},
		Avoid: models.Bilingual{
			En: "Coffee, spicy foods, heavy late-night meals, mobile/TV before bed",
			Ur: "کافی، مسالیدار کھانا، رات کو بھاری کھانا، سونے سے پہلے موبائل/ٹی وی",
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
	{
		ID: "headache",
		Name: models.Bilingual{
			En: "Headache",
			Ur: "سر درد",
		},
		Keywords: models.Keywords{
			En: []string{"headache", "head pain", "migraine", "head ache"},
			Ur: []string{"سر درد", "سر میں درد", "سر کا درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Hot headache → excess yellow bile. Cold headache → excess phlegm",
			Ur: "گرم سر درد ← زیادہ صفرا۔ ٹھنڈا سر درد ← زیادہ بلغم",
		},
		Treatment: models.Bilingual{
			En: "Hot: Rose oil massage on forehead, pomegranate juice. Cold: Olive oil massage, ginger tea",
			Ur: "گرم: پیشانی پر گلاب کے تیل کی مالش، انار کا رس۔ ٹھنڈا: زیتون کے تیل کی مالش، ادرک کی چائے",
		},
		Avoid: models.Bilingual{
			En: "Stress, loud noises, bright lights, irregular sleep",
			Ur: "تناؤ، تیز آوازیں، تیز روشنی، بے قاعدہ نیند",
		},
		Temperament: models.Bilingual{
			En: "Variable (Hot/Cold)",
			Ur: "متغیر (گرم/ٹھنڈا)",
		},
		Akhlat: models.Bilingual{
			En: "Yellow Bile or Phlegm (صفرا یا بلغم)",
			Ur: "صفرا یا بلغم",
		},
	},
	{
		ID: "hair_fall",
		Name: models.Bilingual{
			En: "Hair Fall",
			Ur: "بالوں کا گرنا",
		},
		Keywords: models.Keywords{
			En: []string{"hair fall", "hair loss", "baldness", "losing hair"},
			Ur: []string{"بالوں کا گرنا", "بال گرنا", "گنجا پن"},
		},
		Diagnosis: models.Bilingual{
			En: "Weak blood supply, excess body heat, or weakness of the brain",
			Ur: "خون کی کمزور فراہمی، جسم میں زیادہ گرمی، یا دماغ کی کمزوری",
		},
		Treatment: models.Bilingual{
			En: "Amla + olive oil massage, wash hair with amla-reetha-shikakai, eat milk, almonds, and green vegetables",
			Ur: "آملہ + زیتون کے تیل کی مالش، آملہ-ریٹھا-شکاکائی سے بال دھونا، دودھ، بادام، اور سبز سبزیاں کھانا",
		},
		Avoid: models.Bilingual{
			En: "Chemical shampoos, excessive heat styling, stress, junk food",
			Ur: "کیمیائی شیمپو، زیادہ گرمی، تناؤ، فاسٹ فوڈ",
		},
		Temperament: models.Bilingual{
			En: "Hot and Dry",
			Ur: "گرم اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Corrupted Blood (خون فاسد)",
			Ur: "فاسد خون",
		},
	},
	{
		ID: "dandruff",
		Name: models.Bilingual{
			En: "Dandruff",
			Ur: "خشکی (ڈینڈرف)",
		},
		Keywords: models.Keywords{
			En: []string{"dandruff", "dry scalp", "flaky scalp", "itchy scalp"},
			Ur: []string{"خشکی", "سر کی خشکی", "ڈینڈرف"},
		},
		Diagnosis: models.Bilingual{
			En: "Dry temperament, lack of moisture (phlegm), cold environment effect",
			Ur: "خشک مزاج، نمی کی کمی (بلغم)، ٹھنڈے ماحول کا اثر",
		},
		Treatment: models.Bilingual{
			En: "Massage with almond oil or narcissus oil, wash with neem or reetha shampoo",
			Ur: "بادام کے تیل یا نرگس کے تیل سے مالش، نیم یا ریٹھا شیمپو سے دھونا",
		},
		Avoid: models.Bilingual{
			En: "Hot water, harsh chemicals, excessive washing, dry weather exposure",
			Ur: "گرم پانی، سخت کیمیکل، زیادہ دھونا، خشک موسم میں بے احتیاطی",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Deficient Phlegm (بلغم کی کمی)",
			Ur: "بلغم کی کمی",
		},
	},
	{
		ID: "acidity",
		Name: models.Bilingual{
			En: "Acidity / Heartburn",
			Ur: "تیزابیت / سینے میں جلن",
		},
		Keywords: models.Keywords{
			En: []string{"acidity", "heartburn", "acid reflux", "stomach burning", "chest burning"},
			Ur: []string{"تیزابیت", "سینے میں جلن", "پیٹ میں جلن", "ایسڈٹی"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess hot bile (yellow bile) due to spicy or fast food",
			Ur: "مسالیدار یا فاسٹ فوڈ کی وجہ سے زیادہ گرم صفرا",
		},
		Treatment: models.Bilingual{
			En: "Drink fennel + mint + coriander water, milk with sugar candy",
			Ur: "سونف + پودینہ + دھنیا کا پانی پینا، دودھ میں مصری",
		},
		Avoid: models.Bilingual{
			En: "Spicy, oily, and fried food",
			Ur: "مسالیدار، تیل والا، اور تلا ہوا کھانا",
		},
		Temperament: models.Bilingual{
			En: "Hot and Wet",
			Ur: "گرم اور تر",
		},
		Akhlat: models.Bilingual{
			En: "Excess Yellow Bile (صفرا)",
			Ur: "زیادہ صفرا",
		},
	},
	{
		ID: "constipation",
		Name: models.Bilingual{
			En: "Constipation",
			Ur: "قبض",
		},
		Keywords: models.Keywords{
			En: []string{"constipation", "hard stool", "difficulty passing stool", "irregular bowel"},
			Ur: []string{"قبض", "سخت پاخانہ", "پیٹ صاف نہیں ہونا"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess black bile (dryness)",
			Ur: "زیادہ سیاہ صفرا (خشکی)",
		},
		Treatment: models.Bilingual{
			En: "Sweet almond oil with milk, isabgol husk (psyllium husk) in water, dates",
			Ur: "دودھ کے ساتھ میٹھا بادام کا تیل، اسپغول کا چھلکا پانی میں، کھجور",
		},
		Avoid: models.Bilingual{
			En: "Dry food, junk food, too much meat",
			Ur: "خشک کھانا، فاسٹ فوڈ، زیادہ گوشت",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Excess Black Bile (سودا)",
			Ur: "زیادہ سودا",
		},
	},
	{
		ID: "indigestion",
		Name: models.Bilingual{
			En: "Indigestion",
			Ur: "بدہضمی",
		},
		Keywords: models.Keywords{
			En: []string{"indigestion", "stomach upset", "bloating", "gas", "stomach discomfort"},
			Ur: []string{"بدہضمی", "پیٹ میں گیس", "پیٹ پھولنا", "ہضم نہیں ہونا"},
		},
		Diagnosis: models.Bilingual{
			En: "Weak digestion due to excess phlegm",
			Ur: "زیادہ بلغم کی وجہ سے کمزور ہاضمہ",
		},
		Treatment: models.Bilingual{
			En: "Ginger water, cumin with lemon, mint chutney or tea",
			Ur: "ادرک کا پانی، زیرہ نیبو کے ساتھ، پودینے کی چٹنی یا چائے",
		},
		Avoid: models.Bilingual{
			En: "Heavy meals, cold drinks, overeating, late dinner",
			Ur: "بھاری کھانا، ٹھنڈے مشروبات، زیادہ کھانا، دیر سے رات کا کھانا",
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
	{
		ID: "anxiety",
		Name: models.Bilingual{
			En: "Anxiety / Stress",
			Ur: "بے چینی / تناؤ",
		},
		Keywords: models.Keywords{
			En: []string{"anxiety", "stress", "worry", "restless", "nervous", "panic"},
			Ur: []string{"بے چینی", "تناؤ", "فکر", "گھبراہٹ", "پریشانی"},
		},
		Diagnosis: models.Bilingual{
			En: "Imbalance of brain and soul due to excess yellow bile (heat)",
			Ur: "زیادہ صفرا (گرمی) کی وجہ سے دماغ اور روح کا عدم توازن",
		},
		Treatment: models.Bilingual{
			En: "Jujube syrup, chamomile tea, frankincense aroma therapy, dates with milk",
			Ur: "بیر کا شربت، بابونے کی چائے، لبان کی خوشبو، دودھ کے ساتھ کھجور",
		},
		Avoid: models.Bilingual{
			En: "Caffeine, negative thoughts, isolation, overthinking",
			Ur: "کیفین، منفی خیالات، تنہائی، زیادہ سوچنا",
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
	{
		ID: "cough",
		Name: models.Bilingual{
			En: "Cough",
			Ur: "کھانسی",
		},
		Keywords: models.Keywords{
			En: []string{"cough", "coughing", "dry cough", "wet cough", "throat irritation"},
			Ur: []string{"کھانسی", "خشک کھانسی", "تر کھانسی", "گلے میں خراش"},
		},
		Diagnosis: models.Bilingual{
			En: "Dry cough → excess heat (yellow bile). Wet cough → excess phlegm",
			Ur: "خشک کھانسی ← زیادہ گرمی (صفرا)۔ تر کھانسی ← زیادہ بلغم",
		},
		Treatment: models.Bilingual{
			En: "Dry: Sweet almond oil, honey with ginger. Wet: Licorice, carom seeds, warm water",
			Ur: "خشک: میٹھا بادام کا تیل، شہد ادرک کے ساتھ۔ تر: ملٹھی، اجوائن، گرم پانی",
		},
		Avoid: models.Bilingual{
			En: "Cold drinks, ice cream, dust, smoke, air pollution",
			Ur: "ٹھنڈے مشروبات، آئس کریم، دھول، دھواں، فضائی آلودگی",
		},
		Temperament: models.Bilingual{
			En: "Variable (Hot/Cold)",
			Ur: "متغیر (گرم/ٹھنڈا)",
		},
		Akhlat: models.Bilingual{
			En: "Yellow Bile or Phlegm (صفرا یا بلغم)",
			Ur: "صفرا یا بلغم",
		},
	},
	{
		ID: "flu_cold",
		Name: models.Bilingual{
			En: "Flu / Cold",
			Ur: "فلو / زکام",
		},
		Keywords: models.Keywords{
			En: []string{"flu", "cold", "runny nose", "sneezing", "fever", "body ache"},
			Ur: []string{"فلو", "زکام", "ناک بہنا", "چھینکیں", "بخار", "جسم میں درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess phlegm, cold body temperament",
			Ur: "زیادہ بلغم، ٹھنڈا جسمانی مزاج",
		},
		Treatment: models.Bilingual{
			En: "Ginger with black pepper and honey, steam inhalation with olive oil",
			Ur: "ادرک کالی مرچ اور شہد کے ساتھ، زیتون کے تیل کے ساتھ بھاپ لینا",
		},
		Avoid: models.Bilingual{
			En: "Cold weather exposure, cold foods, air conditioning, wet clothes",
			Ur: "ٹھنڈے موسم میں بے احتیاطی، ٹھنڈا کھانا، ایئر کنڈیشن، گیلے کپڑے",
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
	{
		ID: "fever",
		Name: models.Bilingual{
			En: "Fever",
			Ur: "بخار",
		},
		Keywords: models.Keywords{
			En: []string{"fever", "high temperature", "hot body", "burning sensation"},
			Ur: []string{"بخار", "تیز بخار", "جسم میں گرمی", "جلن"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess yellow bile (heat), blood heat, or infection",
			Ur: "زیادہ صفرا (گرمی)، خون کی گرمی، یا انفیکشن",
		},
		Treatment: models.Bilingual{
			En: "Jujube syrup, cucumber water, lemon water, cooling drinks",
			Ur: "بیر کا شربت، کھیرے کا پانی، نیبو پانی، ٹھنڈک والے مشروبات",
		},
		Avoid: models.Bilingual{
			En: "Hot foods, sun exposure, heavy clothing, strenuous activity",
			Ur: "گرم کھانا، دھوپ میں جانا، بھاری کپڑے، سخت محنت",
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
	{
		ID: "skin_dryness",
		Name: models.Bilingual{
			En: "Skin Dryness",
			Ur: "جلد کی خشکی",
		},
		Keywords: models.Keywords{
			En: []string{"dry skin", "rough skin", "flaky skin", "cracked skin"},
			Ur: []string{"خشک جلد", "کھردری جلد", "جلد کا چھلکنا", "جلد کا پھٹنا"},
		},
		Diagnosis: models.Bilingual{
			En: "Excess black bile (dry temperament)",
			Ur: "زیادہ سیاہ صفرا (خشک مزاج)",
		},
		Treatment: models.Bilingual{
			En: "Massage with almond oil or olive oil, eat cucumber, drink milk",
			Ur: "بادام یا زیتون کے تیل سے مالش، کھیرا کھانا، دودھ پینا",
		},
		Avoid: models.Bilingual{
			En: "Hot showers, harsh soaps, dry air, sun exposure",
			Ur: "گرم پانی سے نہانا، سخت صابن، خشک ہوا، دھوپ",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Excess Black Bile (سودا)",
			Ur: "زیادہ سودا",
		},
	},
	{
		ID: "stomach_pain",
		Name: models.Bilingual{
			En: "Stomach Pain",
			Ur: "پیٹ میں درد",
		},
		Keywords: models.Keywords{
			En: []string{"stomach pain", "abdominal pain", "belly pain", "stomach ache"},
			Ur: []string{"پیٹ میں درد", "پیٹ کا درد", "شکم درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Gas pain → excess phlegm. Burning pain → excess yellow bile",
			Ur: "گیس کا درد ← زیادہ بلغم۔ جلن والا درد ← زیادہ صفرا",
		},
		Treatment: models.Bilingual{
			En: "Carom seeds + cumin water, mint leaves, ginger-lemon tea",
			Ur: "اجوائن + زیرے کا پانی، پودینے کے پتے، ادرک نیبو کی چائے",
		},
		Avoid: models.Bilingual{
			En: "Heavy meals, spicy food, carbonated drinks, stress eating",
			Ur: "بھاری کھانا، مسالیدار کھانا، گیس والے مشروبات، تناؤ میں کھانا",
		},
		Temperament: models.Bilingual{
			En: "Variable (Hot/Cold)",
			Ur: "متغیر (گرم/ٹھنڈا)",
		},
		Akhlat: models.Bilingual{
			En: "Phlegm or Yellow Bile (بلغم یا صفرا)",
			Ur: "بلغم یا صفرا",
		},
	},
	{
		ID: "back_pain",
		Name: models.Bilingual{
			En: "Back Pain",
			Ur: "کمر درد",
		},
		Keywords: models.Keywords{
			En: []string{"back pain", "lower back pain", "spine pain", "backache"},
			Ur: []string{"کمر درد", "پیٹھ کا درد", "ریڑھ کی ہڈی کا درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Imbalance of black bile and phlegm causing stiffness",
			Ur: "سیاہ صفرا اور بلغم کا عدم توازن جو اکڑاہٹ کا باعث",
		},
		Treatment: models.Bilingual{
			En: "Warm olive oil massage, turmeric milk, light exercise and stretching",
			Ur: "گرم زیتون کے تیل کی مالش، ہلدی دودھ، ہلکی ورزش اور کھنچاؤ",
		},
		Avoid: models.Bilingual{
			En: "Heavy lifting, poor posture, sleeping on soft mattress, sedentary lifestyle",
			Ur: "بھاری وزن اٹھانا، غلط انداز میں بیٹھنا، نرم گدے پر سونا، بے حرکت زندگی",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Black Bile and Phlegm (سودا اور بلغم)",
			Ur: "سودا اور بلغم",
		},
	},
	{
		ID: "arm_pain",
		Name: models.Bilingual{
			En: "Arm Pain / Joint Pain",
			Ur: "بازو کا درد / جوڑوں کا درد",
		},
		Keywords: models.Keywords{
			En: []string{"arm pain", "arms pain", "hand pain", "finger pain", "wrist pain", "shoulder pain", "elbow pain", "joint pain", "muscle pain", "arm ache", "arms ache", "arm hurt", "arms hurt"},
			Ur: []string{"بازو کا درد", "ہاتھ کا درد", "انگلی کا درد", "کلائی کا درد", "کندھے کا درد", "کہنی کا درد", "جوڑوں کا درد", "پٹھوں کا درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Joint stiffness → excess black bile and phlegm. Muscle strain → blood heat or weakness",
			Ur: "جوڑوں کی اکڑاہٹ ← زیادہ سیاہ صفرا اور بلغم۔ پٹھوں کا کھنچاؤ ← خون کی گرمی یا کمزوری",
		},
		Treatment: models.Bilingual{
			En: "Warm sesame oil massage, turmeric with milk, ginger compress, light stretching exercises",
			Ur: "گرم تل کے تیل کی مالش، ہلدی دودھ کے ساتھ، ادرک کا لیپ، ہلکی کھنچاؤ والی ورزش",
		},
		Avoid: models.Bilingual{
			En: "Heavy lifting, repetitive motions, cold exposure, staying in one position too long",
			Ur: "بھاری وزن اٹھانا، دہرانے والی حرکات، ٹھنڈ، زیادہ دیر ایک ہی پوزیشن میں رہنا",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Black Bile and Phlegm (سودا اور بلغم)",
			Ur: "سودا اور بلغم",
		},
	},
	{
		ID: "leg_pain",
		Name: models.Bilingual{
			En: "Leg Pain / Lower Limb Pain",
			Ur: "ٹانگ کا درد / زیریں اعضاء کا درد",
		},
		Keywords: models.Keywords{
			En: []string{"leg pain", "legs pain", "foot pain", "feet pain", "ankle pain", "knee pain", "thigh pain", "calf pain", "leg ache", "legs ache", "leg hurt", "legs hurt"},
			Ur: []string{"ٹانگ کا درد", "پاؤں کا درد", "ٹخنے کا درد", "گھٹنے کا درد", "ران کا درد", "پنڈلی کا درد"},
		},
		Diagnosis: models.Bilingual{
			En: "Circulation issues → blood stagnation. Muscle fatigue → weakness of blood or excess black bile",
			Ur: "خون کی گردش کے مسائل ← خون کا رکاوٹ۔ پٹھوں کی تھکان ← خون کی کمزوری یا زیادہ سیاہ صفرا",
		},
		Treatment: models.Bilingual{
			En: "Warm mustard oil massage, hot water compress, light walking, elevate legs while resting",
			Ur: "گرم سرسوں کے تیل کی مالش، گرم پانی کی پٹی، ہلکی چہل قدمی، آرام کے وقت ٹانگیں اونچی رکھنا",
		},
		Avoid: models.Bilingual{
			En: "Standing for long periods, tight shoes, sitting with crossed legs, cold exposure",
			Ur: "زیادہ دیر کھڑے رہنا، تنگ جوتے، ٹانگیں کراس کرکے بیٹھنا، ٹھنڈ",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Blood Stagnation and Black Bile (خون کا رکاوٹ اور سودا)",
			Ur: "خون کا رکاوٹ اور سودا",
		},
	},
	{
		ID: "weak_memory",
		Name: models.Bilingual{
			En: "Weak Memory",
			Ur: "کمزور یادداشت",
		},
		Keywords: models.Keywords{
			En: []string{"memory", "forgetful", "concentration", "focus", "brain fog"},
			Ur: []string{"یادداشت", "بھولنا", "حافظہ", "توجہ", "دماغی کمزوری"},
		},
		Diagnosis: models.Bilingual{
			En: "Brain dryness (excess black bile) or lack of blood supply",
			Ur: "دماغی خشکی (زیادہ سیاہ صفرا) یا خون کی فراہمی کی کمی",
		},
		Treatment: models.Bilingual{
			En: "Almonds with milk, amla (Indian gooseberry), ashwagandha powder, olive oil head massage",
			Ur: "دودھ کے ساتھ بادام، آملہ، اشوگندھا پاؤڈر، زیتون کے تیل سے سر کی مالش",
		},
		Avoid: models.Bilingual{
			En: "Stress, multitasking, lack of sleep, junk food, negative thinking",
			Ur: "تناؤ، بیک وقت کئی کام، نیند کی کمی، فاسٹ فوڈ، منفی سوچ",
		},
		Temperament: models.Bilingual{
			En: "Cold and Dry",
			Ur: "ٹھنڈا اور خشک",
		},
		Akhlat: models.Bilingual{
			En: "Excess Black Bile (سودا)",
			Ur: "زیادہ سودا",
		},
	},
}
