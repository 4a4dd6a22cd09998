package app

import (
	"context"
	"sync"
	"time"

	bookapp "github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/business/book/infra/driver"
	"github.com/fd1az/bookfeed/internal/circuitbreaker"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/ratelimit"
)

// ExchangeTask is one configured (exchange, pair) subscription.
type ExchangeTask struct {
	Exchange string
	Pair     string
	WaitSecs time.Duration
	WSAPI    bool
}

// Supervisor owns one task per configured exchange, a per-exchange book
// cache, and the aggregator rebuilt from that cache on every update.
type Supervisor struct {
	registry  bookapp.Registry
	publisher SummaryPublisher
	log       logger.LoggerInterface
	pairLabel string

	mu       sync.Mutex
	cache    map[string]*domain.Orderbook
	order    []string
	lastSeen map[string]time.Time
}

// New builds a Supervisor. pairLabel tags the aggregator instance only
// (metadata); it plays no part in merge or finalize semantics.
func New(registry bookapp.Registry, publisher SummaryPublisher, log logger.LoggerInterface, pairLabel string) *Supervisor {
	return &Supervisor{
		registry:  registry,
		publisher: publisher,
		log:       log,
		pairLabel: pairLabel,
		cache:     make(map[string]*domain.Orderbook),
		lastSeen:  make(map[string]time.Time),
	}
}

// LastSeen reports when exchange last delivered a book update, for use by
// a liveness check; ok is false if the exchange has never reported one.
func (s *Supervisor) LastSeen(exchange string) (t time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok = s.lastSeen[exchange]
	return t, ok
}

// Run spawns one goroutine per task and blocks until every task's context
// is done. Each task fails and reconnects independently of the others.
func (s *Supervisor) Run(ctx context.Context, tasks []ExchangeTask) {
	var wg sync.WaitGroup
	for _, t := range tasks {
		t := t
		wg.Add(1)
		go func() {
			defer wg.Done()
			if t.WSAPI {
				s.runStream(ctx, t)
			} else {
				s.runPoll(ctx, t)
			}
		}()
	}
	wg.Wait()
}

func (s *Supervisor) runStream(ctx context.Context, t ExchangeTask) {
	entry, ok := s.registry.Stream(t.Exchange)
	if !ok {
		s.logError(ctx, "no stream registry entry for exchange", t.Exchange, nil)
		return
	}

	cb := circuitbreaker.New[struct{}](circuitbreaker.DefaultConfig(t.Exchange))

	for ctx.Err() == nil {
		drv := driver.New(t.Exchange, []string{t.Pair}, entry, s.log, func(book *domain.Orderbook) {
			s.onBook(t.Exchange, book)
		})

		_, err := cb.Execute(func() (struct{}, error) {
			return struct{}{}, drv.Run(ctx)
		})
		drv.Clear()

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logWarn(ctx, "driver session ended, reconnecting", t.Exchange, err)
		}

		if entry.Backoff > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(entry.Backoff):
			}
		}
	}
}

func (s *Supervisor) runPoll(ctx context.Context, t ExchangeTask) {
	entry, ok := s.registry.Poll(t.Exchange)
	if !ok {
		s.logError(ctx, "no poll registry entry for exchange", t.Exchange, nil)
		return
	}

	waitSecs := t.WaitSecs
	if waitSecs <= 0 {
		waitSecs = time.Second
	}
	limiter := ratelimit.NewWithBurst(1.0/waitSecs.Seconds(), 1)

	for ctx.Err() == nil {
		pd := driver.NewPoll(t.Exchange, t.Pair, waitSecs, entry, limiter, func(book *domain.Orderbook) {
			s.onBook(t.Exchange, book)
		})

		err := pd.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logWarn(ctx, "poll session ended, retrying", t.Exchange, err)
		}
	}
}

// onBook installs book as the latest state for exchange, rebuilds the
// aggregate from the full cache, and publishes the resulting summary.
func (s *Supervisor) onBook(exchange string, book *domain.Orderbook) {
	s.mu.Lock()
	if _, exists := s.cache[exchange]; !exists {
		s.order = append(s.order, exchange)
	}
	s.cache[exchange] = book
	s.lastSeen[exchange] = time.Now()

	agg := domain.NewAggregator(s.pairLabel)
	for _, name := range s.order {
		if b, ok := s.cache[name]; ok {
			agg.Merge(b)
		}
	}
	summary := agg.Finalize()
	s.mu.Unlock()

	if s.publisher == nil {
		return
	}
	for _, err := range s.publisher.Publish(&summary) {
		s.logWarn(context.Background(), "publish failed", exchange, err)
	}
}

func (s *Supervisor) logWarn(ctx context.Context, msg, exchange string, err error) {
	if s.log == nil {
		return
	}
	if err != nil {
		s.log.Warn(ctx, msg, "exchange", exchange, "error", err.Error())
		return
	}
	s.log.Warn(ctx, msg, "exchange", exchange)
}

func (s *Supervisor) logError(ctx context.Context, msg, exchange string, err error) {
	if s.log == nil {
		return
	}
	if err != nil {
		s.log.Error(ctx, msg, "exchange", exchange, "error", err.Error())
		return
	}
	s.log.Error(ctx, msg, "exchange", exchange)
}
