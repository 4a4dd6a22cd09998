// Package app implements the per-exchange task orchestration that keeps
// one normalized order book per exchange and republishes an aggregated
// summary on every update.
package app

import "github.com/fd1az/bookfeed/business/book/domain"

// SummaryPublisher fans a finalized summary out to whatever outbound sinks
// are configured. Errors are collected, not propagated: a publish failure
// never interrupts the supervisor's aggregation loop.
type SummaryPublisher interface {
	Publish(summary *domain.Summary) []error
}
