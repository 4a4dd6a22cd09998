// Package domain holds the normalized order-book and aggregation model:
// price ladders, per-exchange books, and the cross-exchange aggregate.
package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Side tags one half of an order book.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

// Level is one (price, quantity) entry in a ladder.
type Level struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// Ladder is a price-ordered map of decimal price to decimal remaining
// quantity, for one side of an order book. Price is keyed by its canonical
// decimal.String() form so insert/delete round-trip exactly, per-level data
// is kept in a plain map and sorted on read, since ladders are never more
// than a few dozen levels deep and resorting on demand is simpler than
// keeping a balanced tree in sync.
type Ladder struct {
	side   Side
	levels map[string]decimal.Decimal
}

// NewLadder creates an empty ladder for the given side.
func NewLadder(side Side) *Ladder {
	return &Ladder{side: side, levels: make(map[string]decimal.Decimal)}
}

// Insert removes any existing entry at price, then re-inserts it if qty is
// strictly positive. A zero or negative quantity therefore deletes the
// level — this is Property 1 from the specification.
func (l *Ladder) Insert(price, qty decimal.Decimal) {
	key := price.String()
	if qty.Sign() <= 0 {
		delete(l.levels, key)
		return
	}
	l.levels[key] = qty
}

// Clear empties the ladder.
func (l *Ladder) Clear() {
	l.levels = make(map[string]decimal.Decimal)
}

// Len returns the number of price levels currently present.
func (l *Ladder) Len() int {
	return len(l.levels)
}

// Best returns the best price for this side (highest for bids, lowest for
// asks) and whether the ladder is non-empty.
func (l *Ladder) Best() (decimal.Decimal, bool) {
	snap := l.Snapshot()
	if len(snap) == 0 {
		return decimal.Zero, false
	}
	return snap[0].Price, true
}

// Snapshot returns all levels ordered by the side's convention: bids from
// highest to lowest price, asks from lowest to highest.
func (l *Ladder) Snapshot() []Level {
	out := make([]Level, 0, len(l.levels))
	for k, qty := range l.levels {
		price, err := decimal.NewFromString(k)
		if err != nil {
			// keys are only ever produced by decimal.Decimal.String(), so a
			// parse failure here means the map was corrupted by something
			// other than Insert.
			continue
		}
		out = append(out, Level{Price: price, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if l.side == Bid {
			return out[i].Price.GreaterThan(out[j].Price)
		}
		return out[i].Price.LessThan(out[j].Price)
	})
	return out
}

// mustDecimal parses a decimal string produced by decimal.Decimal.String();
// panics if it doesn't round-trip, since that indicates corrupted internal
// state rather than bad input.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Trim retains at most level best price levels, dropping the extras from
// the worst end: lowest bids, highest asks.
func (l *Ladder) Trim(level int) {
	if level < 0 {
		level = 0
	}
	snap := l.Snapshot()
	if len(snap) <= level {
		return
	}
	kept := make(map[string]decimal.Decimal, level)
	for _, lvl := range snap[:level] {
		kept[lvl.Price.String()] = lvl.Quantity
	}
	l.levels = kept
}
