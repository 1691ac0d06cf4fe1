package domain

import "github.com/google/uuid"

// User represents a single user record returned by a search
type User struct {
	ID        int64  `json:"id" yaml:"id"`
	Login     string `json:"login" yaml:"login"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string `json:"html_url" yaml:"html_url"`
}

// Ticket tags an issued lookup so late completions can be told apart
type Ticket struct {
	Seq   uint64    // strictly increasing per session
	Query string    // query the lookup was issued for
	ID    uuid.UUID // correlation id for logs and the X-Request-Id header
}

// NewTicket creates a ticket with a fresh correlation id
func NewTicket(seq uint64, query string) Ticket {
	return Ticket{Seq: seq, Query: query, ID: uuid.New()}
}
