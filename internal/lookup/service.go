package lookup

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"ghsearch/internal/domain"
	"ghsearch/internal/eventbus"
)

// Searcher performs a tagged user lookup
type Searcher interface {
	SearchUsersTagged(ctx context.Context, query string, id uuid.UUID) ([]domain.User, error)
}

// Service runs lookups requested on the bus and publishes their outcome
type Service struct {
	bus         eventbus.EventBus
	searcher    Searcher
	ctx         context.Context
	unsubscribe func()
}

// NewService creates a lookup service and subscribes it to lookup requests.
// Lookups in flight are only cancelled when ctx is.
func NewService(ctx context.Context, bus eventbus.EventBus, searcher Searcher) *Service {
	s := &Service{
		bus:      bus,
		searcher: searcher,
		ctx:      ctx,
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventLookupRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LookupRequestedEvent); ok {
			s.Run(event.Ticket)
		}
	})

	return s
}

// Run performs one lookup and publishes the result. It blocks until the
// remote call returns.
func (s *Service) Run(t domain.Ticket) {
	start := time.Now()
	log.Printf("Lookup %s started: q=%q seq=%d", t.ID, t.Query, t.Seq)

	users, err := s.searcher.SearchUsersTagged(s.ctx, t.Query, t.ID)
	if err != nil {
		log.Printf("Lookup %s failed after %s: %v", t.ID, time.Since(start), err)
		s.bus.Publish(eventbus.LookupFailedEvent{Ticket: t, Err: err})
		return
	}

	log.Printf("Lookup %s returned %d users in %s", t.ID, len(users), time.Since(start))
	s.bus.Publish(eventbus.LookupSucceededEvent{Ticket: t, Users: users})
}

// Close stops listening for new requests
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
