// Package app defines the publisher bounded context's port: a Summary in,
// JSON out, fanned out to whatever sinks are wired.
package app

import "github.com/fd1az/bookfeed/business/book/domain"

// Sink accepts one finalized summary. The WebSocket hub only hands the
// payload to its broadcast buffer and drops it when that buffer is full;
// the Redis sink waits for the publish round trip, bounded by a timeout.
type Sink interface {
	Publish(summary *domain.Summary) error
}

// Publisher fans a summary out to every configured Sink; an individual
// sink error does not stop the fan-out and is returned to the caller.
type Publisher struct {
	sinks []Sink
}

// NewPublisher builds a Publisher over sinks; a nil sink is ignored so
// callers can conditionally include the optional Redis sink without branching.
func NewPublisher(sinks ...Sink) *Publisher {
	p := &Publisher{}
	for _, s := range sinks {
		if s != nil {
			p.sinks = append(p.sinks, s)
		}
	}
	return p
}

// Publish hands summary to every sink, collecting (not stopping on) errors.
func (p *Publisher) Publish(summary *domain.Summary) []error {
	var errs []error
	for _, s := range p.sinks {
		if err := s.Publish(summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
