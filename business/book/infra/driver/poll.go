package driver

import (
	"context"
	"time"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
	"github.com/fd1az/bookfeed/internal/ratelimit"
)

// PollDriver runs one exchange's request/response session: wait, fetch,
// trim, emit, repeat. It never reconnects in the stream-driver sense — a
// fetch error is simply logged by the supervisor, which retries on the
// next tick.
type PollDriver struct {
	exchange string
	pair     string
	waitSecs time.Duration
	entry    app.PollEntry
	limiter  *ratelimit.Limiter
	emit     func(*domain.Orderbook)
}

// NewPoll constructs a poll-mode driver. limiter may be nil to disable
// request throttling beyond waitSecs itself.
func NewPoll(exchange, pair string, waitSecs time.Duration, entry app.PollEntry, limiter *ratelimit.Limiter, emit func(*domain.Orderbook)) *PollDriver {
	return &PollDriver{
		exchange: exchange,
		pair:     pair,
		waitSecs: waitSecs,
		entry:    entry,
		limiter:  limiter,
		emit:     emit,
	}
}

// Run loops until ctx is cancelled, fetching one book per waitSecs tick.
func (p *PollDriver) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.waitSecs)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (p *PollDriver) tick(ctx context.Context) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	book, err := p.entry.Fetch(ctx, p.pair)
	if err != nil {
		return apperror.Wrap(err, apperror.CodePollRequestFailed, p.exchange)
	}
	if book == nil {
		return nil
	}
	book.Trim(depthLevel)
	p.emit(book)
	return nil
}
