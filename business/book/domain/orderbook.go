package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/internal/logger"
)

// Orderbook is one exchange's normalized level-2 view: bid/ask ladders plus
// the last trade price and 24h volume that exchange's ticker channel (or
// poll endpoint) supplies.
type Orderbook struct {
	Name      string
	Timestamp time.Time
	LastPrice decimal.Decimal
	Volume    decimal.Decimal
	Bid       *Ladder
	Ask       *Ladder
}

// New creates a fresh, empty book for name, timestamped now.
func New(name string) *Orderbook {
	return &Orderbook{
		Name:      name,
		Timestamp: time.Now(),
		LastPrice: decimal.Zero,
		Volume:    decimal.Zero,
		Bid:       NewLadder(Bid),
		Ask:       NewLadder(Ask),
	}
}

// Insert applies an update to one side, updates the book's timestamp, and
// logs (without failing) a crossed-book diagnostic if the update leaves the
// best bid at or above the best ask.
func (o *Orderbook) Insert(ctx context.Context, log logger.LoggerInterface, side Side, price, qty decimal.Decimal) {
	ladder := o.ladderFor(side)
	ladder.Insert(price, qty)
	o.Timestamp = time.Now()

	if log == nil {
		return
	}
	bestBid, hasBid := o.Bid.Best()
	bestAsk, hasAsk := o.Ask.Best()
	if hasBid && hasAsk && bestBid.GreaterThanOrEqual(bestAsk) {
		log.Warn(ctx, "crossed book",
			"exchange", o.Name,
			"best_bid", bestBid.String(),
			"best_ask", bestAsk.String(),
		)
	}
}

func (o *Orderbook) ladderFor(side Side) *Ladder {
	if side == Bid {
		return o.Bid
	}
	return o.Ask
}

// Trim bounds both ladders to level best entries each.
func (o *Orderbook) Trim(level int) {
	o.Bid.Trim(level)
	o.Ask.Trim(level)
}

// ClearBids empties the bid ladder; used by stateful parsers applying a
// fresh snapshot event.
func (o *Orderbook) ClearBids() {
	o.Bid.Clear()
}

// ClearAsks empties the ask ladder.
func (o *Orderbook) ClearAsks() {
	o.Ask.Clear()
}

// Clone returns a deep copy safe to hand to the aggregator while the
// original book continues to be mutated by its owning driver.
func (o *Orderbook) Clone() *Orderbook {
	clone := &Orderbook{
		Name:      o.Name,
		Timestamp: o.Timestamp,
		LastPrice: o.LastPrice,
		Volume:    o.Volume,
		Bid:       NewLadder(Bid),
		Ask:       NewLadder(Ask),
	}
	for _, lvl := range o.Bid.Snapshot() {
		clone.Bid.Insert(lvl.Price, lvl.Quantity)
	}
	for _, lvl := range o.Ask.Snapshot() {
		clone.Ask.Insert(lvl.Price, lvl.Quantity)
	}
	return clone
}
