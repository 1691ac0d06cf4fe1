// Package search holds the state of an interactive user search: when a
// lookup fires and which completion is allowed to update the results.
package search

import (
	"log"
	"unicode/utf8"

	"ghsearch/internal/domain"
)

// ErrorPrefix is prepended to every lookup failure shown to the user
const ErrorPrefix = "Failed to load users: "

// Session is the state record behind the search screen. It is not safe for
// concurrent use; all transitions happen on the UI goroutine.
type Session struct {
	minLength int

	query   string
	results []domain.User
	errMsg  string

	seq      uint64 // last issued sequence number
	inFlight int    // issued lookups that have not completed yet
	latest   *domain.Ticket
}

// NewSession creates an empty session
func NewSession(minLength int) *Session {
	return &Session{minLength: minLength}
}

// SetQuery records a keystroke. It reports whether the result set was
// cleared because the query is too short.
func (s *Session) SetQuery(query string) bool {
	s.query = query
	if utf8.RuneCountInString(query) < s.minLength {
		s.results = nil
		// A lookup still in flight must not repopulate the cleared list
		s.latest = nil
		return true
	}
	return false
}

// Issue tags a new lookup for query. An empty query clears the results and
// issues nothing.
func (s *Session) Issue(query string) (domain.Ticket, bool) {
	if query == "" {
		s.results = nil
		s.latest = nil
		return domain.Ticket{}, false
	}

	s.seq++
	t := domain.NewTicket(s.seq, query)
	s.latest = &t
	s.inFlight++
	return t, true
}

// Complete applies a successful lookup. Completions for anything but the
// most recently issued ticket are discarded.
func (s *Session) Complete(t domain.Ticket, users []domain.User) bool {
	s.settle()
	if !s.isLatest(t) {
		log.Printf("Discarding stale results for %q (seq %d)", t.Query, t.Seq)
		return false
	}

	if users == nil {
		users = []domain.User{}
	}
	s.results = users
	s.errMsg = ""
	s.latest = nil
	return true
}

// Fail applies a failed lookup. The previous result set is kept.
func (s *Session) Fail(t domain.Ticket, err error) bool {
	s.settle()
	if !s.isLatest(t) {
		log.Printf("Discarding stale failure for %q (seq %d): %v", t.Query, t.Seq, err)
		return false
	}

	s.errMsg = ErrorPrefix + err.Error()
	s.latest = nil
	return true
}

// Query returns the current query
func (s *Session) Query() string { return s.query }

// Results returns the current result set
func (s *Session) Results() []domain.User { return s.results }

// Err returns the current error message, empty when there is none
func (s *Session) Err() string { return s.errMsg }

// Loading reports whether the most recently issued lookup is still pending
func (s *Session) Loading() bool { return s.latest != nil }

// InFlight returns how many issued lookups have not completed yet,
// including superseded ones
func (s *Session) InFlight() int { return s.inFlight }

// LastSeq returns the sequence number of the last issued lookup
func (s *Session) LastSeq() uint64 { return s.seq }

func (s *Session) isLatest(t domain.Ticket) bool {
	return s.latest != nil && s.latest.Seq == t.Seq
}

func (s *Session) settle() {
	if s.inFlight > 0 {
		s.inFlight--
	}
}
