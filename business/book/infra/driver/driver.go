// Package driver runs the per-exchange session state machine: connect,
// subscribe, read loop, heartbeat, and forced reconnect. One Driver
// instance owns exactly one transport connection and one Parser.
package driver

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/business/book/infra/feed"
	"github.com/fd1az/bookfeed/internal/apperror"
	"github.com/fd1az/bookfeed/internal/logger"
	"github.com/fd1az/bookfeed/internal/wsconn"
)

// depthLevel is the per-book depth the driver trims to before handing a
// book to the supervisor; the aggregator applies its own, independent cap
// when merging across exchanges.
const depthLevel = 20

// Driver runs one exchange's persistent-stream session to completion: Run
// blocks until the context is cancelled or the read loop fails, at which
// point the supervisor is expected to construct a fresh Driver (and a
// fresh Parser, via the registry) and retry.
type Driver struct {
	exchange string
	pairs    []string
	entry    app.StreamEntry
	parser   app.Parser
	log      logger.LoggerInterface
	emit     func(book *domain.Orderbook)

	connectedAt atomic.Value // time.Time
}

// New constructs a driver for exchange over pairs, using entry's transport
// configuration and parser. emit is called for every book the parser
// yields, already trimmed to depthLevel.
func New(exchange string, pairs []string, entry app.StreamEntry, log logger.LoggerInterface, emit func(*domain.Orderbook)) *Driver {
	return &Driver{
		exchange: exchange,
		pairs:    pairs,
		entry:    entry,
		parser:   entry.NewParser(),
		log:      log,
		emit:     emit,
	}
}

// Run connects, subscribes, and services the read loop until ctx is
// cancelled or a frame-level error (close frame, forced reconnect, ping
// failure surfaced by the transport) ends the session.
func (d *Driver) Run(ctx context.Context) error {
	endpoint := d.entry.Endpoint
	if d.entry.RenderURL {
		endpoint = strings.Replace(endpoint, "{}", strings.Join(d.pairs, ","), 1)
	}

	cfg := wsconn.DefaultConfig(endpoint, d.exchange)
	client, err := wsconn.New(cfg)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeWebSocketConnectionError, "building transport")
	}

	readErrCh := make(chan error, 1)
	assembler := feed.NewFrameAssembler()

	client.OnMessage(func(mctx context.Context, msg []byte) {
		text, ready, ferr := assembler.Feed(feed.FrameText, string(msg))
		if ferr != nil {
			select {
			case readErrCh <- ferr:
			default:
			}
			return
		}
		if !ready {
			return
		}
		book, perr := d.parser.Parse(text)
		if perr != nil {
			if d.log != nil {
				d.log.Warn(mctx, "parse failed", "exchange", d.exchange, "error", perr.Error())
			}
			return
		}
		if book == nil {
			return
		}
		book.Trim(depthLevel)
		d.emit(book)
	})

	client.OnStateChange(func(state wsconn.State, serr error) {
		// wsconn reports a lost connection (close frame, read error, ping
		// failure) as StateReconnecting with a nil error and would redial on
		// its own without resubscribing; end the session here instead.
		if state == wsconn.StateReconnecting {
			serr = fmt.Errorf("close %s", d.exchange)
		}
		if (state == wsconn.StateDisconnected || state == wsconn.StateReconnecting) && serr != nil {
			select {
			case readErrCh <- serr:
			default:
			}
		}
	})

	if err := client.Connect(ctx); err != nil {
		return apperror.Wrap(err, apperror.CodeWebSocketConnectionError, d.exchange)
	}
	defer client.Close()

	d.connectedAt.Store(time.Now())

	if !d.entry.RenderURL {
		if err := d.subscribe(ctx, client); err != nil {
			return err
		}
	}

	var heartbeatC <-chan time.Time
	if d.entry.Heartbeat != nil {
		ticker := time.NewTicker(d.entry.Heartbeat.Interval)
		defer ticker.Stop()
		heartbeatC = ticker.C
	}

	var forceC <-chan time.Time
	if d.entry.ReconnectSec > 0 {
		timer := time.NewTimer(d.entry.ReconnectSec)
		defer timer.Stop()
		forceC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErrCh:
			return apperror.Wrap(err, apperror.CodeWebSocketClosed, d.exchange)
		case <-forceC:
			return apperror.New(apperror.CodeForcedReconnect, apperror.WithMessage(fmt.Sprintf("close %s", d.exchange)))
		case <-heartbeatC:
			if err := client.Send(ctx, []byte(d.entry.Heartbeat.Payload)); err != nil && d.log != nil {
				d.log.Warn(ctx, "heartbeat send failed", "exchange", d.exchange, "error", err.Error())
			}
		}
	}
}

func (d *Driver) subscribe(ctx context.Context, client *wsconn.Client) error {
	for _, pair := range d.pairs {
		for _, tmpl := range d.entry.SubscribeTemplates {
			frame := render(tmpl, pair)
			if err := client.Send(ctx, []byte(frame)); err != nil {
				return apperror.Wrap(err, apperror.CodeWebSocketSendError, d.exchange)
			}
		}
	}
	return nil
}

// render fills a subscribe template's named placeholders: "{pair}" with
// pair, and "{depth}" with the fixed depth level. Templates that embed a
// literal empty JSON object (coinjar's "payload": {}) use bare "{}", which
// render leaves untouched since it only ever matches the named tokens.
func render(tmpl, pair string) string {
	out := strings.ReplaceAll(tmpl, "{pair}", pair)
	out = strings.ReplaceAll(out, "{depth}", fmt.Sprintf("%d", depthLevel))
	return out
}

// Clear releases the driver's parser state; called by the supervisor after
// Run returns, before a replacement Driver is constructed.
func (d *Driver) Clear() {
	d.parser.Clear()
}
