package core

import "time"

// AnonymousUser marks feedback submitted without an active session.
const AnonymousUser = "anon"

// FeedbackEntry is one row of the append-only feedback log.
type FeedbackEntry struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"date"`
}
