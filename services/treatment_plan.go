package services

import (
	"fmt"
	"regexp"
	"strings"

	"digital-physician-backend/models"
)

const planDays = 7

var planItemSplitRe = regexp.MustCompile(`[,،.۔\n•]+`)

type dailyRoutine struct {
	morning, afternoon, night []string
}

var defaultRoutines = map[models.Language]dailyRoutine{
	models.LanguageEnglish: {
		morning:   []string{"Drink rose water", "Practice meditation", "Light exercise"},
		afternoon: []string{"Eat balanced meal", "Take herbal tea", "Rest"},
		night:     []string{"Apply oil massage", "Practice relaxation", "Sleep early"},
	},
	models.LanguageUrdu: {
		morning:   []string{"گلاب کا پانی پیئں", "مراقبہ کریں", "ہلکی ورزش"},
		afternoon: []string{"متوازن کھانا کھائیں", "جڑی بوٹیوں کی چائے", "آرام"},
		night:     []string{"تیل کی مالش", "آرام کی مشق", "جلدی سونا"},
	},
}

var avoidPrefix = map[models.Language]string{
	models.LanguageEnglish: "Avoid: ",
	models.LanguageUrdu:    "پرہیز: ",
}

// GenerateTreatmentPlan lays a condition's treatment and avoidance advice
// out over seven days of morning, afternoon and night tasks. Without a
// condition, or when the condition has no usable treatment text, the general
// wellness routine is returned.
func GenerateTreatmentPlan(c *models.Condition, lang models.Language) []models.DayPlan {
	lang = lang.Display()
	routine := defaultRoutines[lang]

	if c == nil {
		return defaultPlan(routine)
	}
	treatments := splitPlanItems(c.Treatment.In(lang))
	if len(treatments) == 0 {
		return defaultPlan(routine)
	}
	avoid := splitPlanItems(c.Avoid.In(lang))

	plans := make([]models.DayPlan, 0, planDays)
	for day := 1; day <= planDays; day++ {
		offset := (day - 1) * 2

		morning := rotate(treatments, offset, 2)

		afternoon := rotate(treatments, offset+2, 1)
		for _, a := range rotate(avoid, day-1, 1) {
			afternoon = append(afternoon, avoidPrefix[lang]+a)
		}

		night := append(rotate(treatments, offset+3, 1), routine.night[(day-1)%len(routine.night)])

		plans = append(plans, models.DayPlan{
			Day:       day,
			Morning:   tasks(day, "m", morning),
			Afternoon: tasks(day, "a", afternoon),
			Night:     tasks(day, "n", night),
		})
	}
	return plans
}

func defaultPlan(routine dailyRoutine) []models.DayPlan {
	plans := make([]models.DayPlan, 0, planDays)
	for day := 1; day <= planDays; day++ {
		plans = append(plans, models.DayPlan{
			Day:       day,
			Morning:   tasks(day, "m", routine.morning),
			Afternoon: tasks(day, "a", routine.afternoon),
			Night:     tasks(day, "n", routine.night),
		})
	}
	return plans
}

func splitPlanItems(text string) []string {
	var items []string
	for _, part := range planItemSplitRe.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// rotate returns up to n distinct items starting at offset, wrapping around
func rotate(items []string, offset, n int) []string {
	if len(items) == 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[(offset+i)%len(items)])
	}
	return out
}

func tasks(day int, slot string, texts []string) []models.TreatmentTask {
	out := make([]models.TreatmentTask, 0, len(texts))
	for i, text := range texts {
		out = append(out, models.TreatmentTask{
			ID:   fmt.Sprintf("%d%s%d", day, slot, i+1),
			Text: text,
		})
	}
	return out
}
