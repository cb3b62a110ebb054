package domain

import "time"

// InteractionState tracks where a single user interaction is
type InteractionState string

const (
	StateIdle               InteractionState = "idle"
	StateSearchResultsShown InteractionState = "search_results_shown"
	StateConverterRun       InteractionState = "converter_run"
	StateResultsDisplayed   InteractionState = "results_displayed"
	StateErrorDisplayed     InteractionState = "error_displayed"
)

// Interaction is the state of one search-select-convert cycle. A new
// search always starts a new Interaction; nothing carries over.
type Interaction struct {
	ID             string           `json:"interactionId"`
	FoodName       string           `json:"foodName"` // as typed by the user
	TargetCalories float64          `json:"targetCalories"`
	Candidates     []FoodCandidate  `json:"candidates"`
	Selected       int              `json:"selected"`
	State          InteractionState `json:"state"`
	Conversion     *Conversion      `json:"conversion,omitempty"`
	Message        string           `json:"message,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// HasResults reports whether the search produced any candidates
func (i *Interaction) HasResults() bool {
	return len(i.Candidates) > 0
}
