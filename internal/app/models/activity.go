package models

// Activity is a single entry of the recent-activities feed, derived from
// the newest student, payment and complaint rows.
type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
}
