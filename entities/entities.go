package entities

import (
	"time"
)

// SessionRef identifies a showtime within a cinema
type SessionRef struct {
	Cinema  string `json:"cinema"`
	Session string `json:"session"`
}

type SeatInfo struct {
	Row  string `json:"row"`
	Seat string `json:"seat"`
}

// LookupLogEntry records the outcome of a single seat resolution
type LookupLogEntry struct {
	Cinema   string    `json:"cinema"`
	Session  string    `json:"session"`
	DataId   string    `json:"dataId"`
	Row      string    `json:"row,omitempty"`
	Seat     string    `json:"seat,omitempty"`
	Outcome  string    `json:"outcome"`
	Error    string    `json:"error,omitempty"`
	LoggedAt time.Time `json:"loggedAt"`
}
