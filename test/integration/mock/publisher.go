package mock

import (
	"context"
	"sync"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
)

// Publisher records published domain events.
type Publisher struct {
	mu     sync.Mutex
	events []adapter.DomainEvent
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, event adapter.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Count returns how many events of the given type were published.
func (p *Publisher) Count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (p *Publisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
