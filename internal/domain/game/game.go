package game

import "time"

// Session is the record of one playthrough.
type Session struct {
	ID         string     `json:"id"`
	Casebook   string     `json:"casebook"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Accused    string     `json:"accused,omitempty"`
	Outcome    string     `json:"outcome,omitempty"`
	Supporting int        `json:"supporting"`
	Clues      []string   `json:"clues"`
}

// Report is what the session released on close.
type Report struct {
	SessionID     string `json:"session_id"`
	CluesReleased int    `json:"clues_released"`
	EntriesFreed  int    `json:"entries_freed"`
	RoomsReleased int    `json:"rooms_released"`
}
