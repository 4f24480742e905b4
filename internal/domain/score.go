package domain

// ScoreBreakdown holds the weighted points earned by a single participant.
// The four component fields are already weighted; Total is their sum and
// Rate is the participant's share of the sum of all totals, in percent
// rounded to one decimal place.
type ScoreBreakdown struct {
	FeatBugPR     int     `json:"feat/bug PR"`
	DocumentPR    int     `json:"document PR"`
	FeatBugIssue  int     `json:"feat/bug issue"`
	DocumentIssue int     `json:"document issue"`
	Total         int     `json:"total"`
	Rate          float64 `json:"rate"`
}

// ParticipantScore pairs a participant with their breakdown. A slice of
// these, sorted by Total descending, is the final report table.
type ParticipantScore struct {
	Name string `json:"name"`
	ScoreBreakdown
}
