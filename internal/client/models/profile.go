package models

import "time"

// ProfileView is everything the account screen renders. Age and
// MaskedPhone are derived at load time and never persisted.
type ProfileView struct {
	User    User
	Avatar  string
	Theme   ThemeMode
	History HistoryStats

	Age         int
	AgeKnown    bool
	MaskedPhone string
}

// ExportBundle is the document written by the Export Data action.
type ExportBundle struct {
	ExportedAt time.Time    `json:"exportedAt"`
	User       User         `json:"user"`
	Avatar     string       `json:"avatar,omitempty"`
	Theme      ThemeMode    `json:"theme"`
	History    []TestRecord `json:"history"`
}
