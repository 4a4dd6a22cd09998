// Package app defines the ports the book bounded context exposes to its
// infrastructure adapters and to the supervisor that drives them.
package app

import (
	"context"
	"time"

	"github.com/fd1az/bookfeed/business/book/domain"
)

// Parser decodes raw frames from one exchange's wire protocol into
// normalized books. A Parser may be stateless (stream parsers) or own
// per-channel state (channel-stateful parsers); either way one Parser
// instance belongs to exactly one driver.
type Parser interface {
	// Parse decodes a single complete logical frame. It returns (nil, nil)
	// for control frames that carry no book update, a non-nil book when the
	// frame yields an emittable state, and a non-nil error for malformed
	// payloads.
	Parse(raw string) (*domain.Orderbook, error)

	// Clear flushes any per-channel state the parser owns. Called by the
	// supervisor on driver teardown, before a replacement driver (and a
	// fresh Parser instance) is created for the same exchange.
	Clear()
}

// Heartbeat describes a periodic keepalive frame the driver must send.
type Heartbeat struct {
	Interval time.Duration
	Payload  string
}

// StreamEntry is one exchange's registry entry for persistent-stream mode.
type StreamEntry struct {
	// Endpoint is the stream URL. When RenderURL is true it contains a
	// single "{}" placeholder filled with the comma-joined pair list.
	Endpoint string

	// SubscribeTemplates are text templates with named "{pair}" and
	// "{depth}" placeholders rendered once per configured pair after
	// connect. Ignored when RenderURL is true.
	SubscribeTemplates []string

	// RenderURL selects URL-rendering mode: no subscribe frames are sent,
	// the endpoint is rendered from the full pair list instead.
	RenderURL bool

	// NewParser constructs a fresh Parser instance for one driver session.
	NewParser func() Parser

	// Heartbeat is the optional periodic keepalive; nil means none.
	Heartbeat *Heartbeat

	// ReconnectSec is an optional forced-reconnect interval; zero means
	// the driver never force-reconnects on a timer.
	ReconnectSec time.Duration

	// Backoff is the fixed sleep the supervisor applies before recreating
	// a failed driver for this exchange; zero means reconnect immediately.
	Backoff time.Duration
}

// PollEntry is one exchange's registry entry for request/response mode.
type PollEntry struct {
	// Fetch performs the HTTP(S) calls needed to build a fresh book for
	// pair. The only registered fetcher (independentreserve) requests the
	// order-book snapshot alone; it fetches no ticker and no trades
	// listing, so its books carry a zero LastPrice and Volume.
	Fetch func(ctx context.Context, pair string) (*domain.Orderbook, error)
}

// Registry resolves an exchange name to its stream or poll entry.
type Registry interface {
	Stream(exchange string) (StreamEntry, bool)
	Poll(exchange string) (PollEntry, bool)
}
