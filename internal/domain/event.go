package domain

// EventPayload carries the measurements attached to a gameplay event. Only
// the fields relevant to the event kind are set; the rest stay zero.
type EventPayload struct {
	// Minutes is the duration of a completed focus session.
	Minutes int
	// FocusCategory is the free-form session category chosen by the user.
	FocusCategory string
	// TotalOunces is the running hydration total for the day.
	TotalOunces int
	// LogCount is how many hydration logs have been recorded today.
	LogCount int
	// AfterEveningCutoff marks a stats-tab open that happened after the
	// evening review cutoff.
	AfterEveningCutoff bool
}
