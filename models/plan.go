package models

// TreatmentTask is one item of a daily routine
type TreatmentTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DayPlan is one day of the seven day treatment plan
type DayPlan struct {
	Day       int             `json:"day"`
	Morning   []TreatmentTask `json:"morning"`
	Afternoon []TreatmentTask `json:"afternoon"`
	Night     []TreatmentTask `json:"night"`
}
