package domain

import (
	"sort"
	"strconv"
)

// Aggregator combines the per-exchange books for a single trading pair into
// one published Summary. Each exchange's book is capped to its own top ten
// levels per side as it is merged in; Finalize then applies the global
// ten-level cap across all exchanges combined, breaking ties between equal
// prices by the order the exchanges were first merged in.
type Aggregator struct {
	pair     string
	books    map[string]*Orderbook
	order    []string
	sequence uint64
}

const perExchangeLevelCap = 10
const globalLevelCap = 10

// NewAggregator creates an empty aggregator for pair.
func NewAggregator(pair string) *Aggregator {
	return &Aggregator{books: make(map[string]*Orderbook), pair: pair}
}

// Merge replaces the stored book for book.Name with a trimmed clone of it.
// It never mutates the caller's book. Exchanges are remembered in the order
// they are first merged, for Finalize's tie-break rule.
func (a *Aggregator) Merge(book *Orderbook) {
	trimmed := book.Clone()
	trimmed.Trim(perExchangeLevelCap)

	if _, exists := a.books[trimmed.Name]; !exists {
		a.order = append(a.order, trimmed.Name)
	}
	a.books[trimmed.Name] = trimmed
}

// Remove drops an exchange's book and its tie-break position from the
// aggregate.
func (a *Aggregator) Remove(exchange string) {
	delete(a.books, exchange)
	for i, name := range a.order {
		if name == exchange {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *Aggregator) exchangeRank() map[string]int {
	rank := make(map[string]int, len(a.order))
	for i, name := range a.order {
		rank[name] = i
	}
	return rank
}

// Finalize produces the published Summary for the current merge state,
// incrementing the aggregator's monotonic sequence counter.
func (a *Aggregator) Finalize() Summary {
	a.sequence++
	rank := a.exchangeRank()

	bids := a.collect(Bid, rank)
	asks := a.collect(Ask, rank)

	if len(bids) > globalLevelCap {
		bids = bids[:globalLevelCap]
	}
	if len(asks) > globalLevelCap {
		asks = asks[:globalLevelCap]
	}

	summary := Summary{
		Bids:      bids,
		Asks:      asks,
		Spread:    "0",
		Timestamp: make(map[string]string, len(a.books)),
		Volume:    make(map[string]string, len(a.books)),
		LastPrice: make(map[string]string, len(a.books)),
		Sequence:  a.sequence,
	}

	for name, book := range a.books {
		summary.Timestamp[name] = strconv.FormatInt(book.Timestamp.UnixMilli(), 10)
		summary.Volume[name] = book.Volume.String()
		summary.LastPrice[name] = book.LastPrice.String()
	}

	if len(bids) > 0 && len(asks) > 0 {
		bestBid := mustDecimal(bids[0].Price)
		bestAsk := mustDecimal(asks[0].Price)
		summary.Spread = bestAsk.Sub(bestBid).String()
	}

	return summary
}

func (a *Aggregator) collect(side Side, rank map[string]int) []SummaryLevel {
	type entry struct {
		level SummaryLevel
		price string
		rank  int
	}
	var entries []entry
	for name, book := range a.books {
		ladder := book.Bid
		if side == Ask {
			ladder = book.Ask
		}
		for _, lvl := range ladder.Snapshot() {
			entries = append(entries, entry{
				level: SummaryLevel{Exchange: name, Price: lvl.Price.String(), Amount: lvl.Quantity.String()},
				price: lvl.Price.String(),
				rank:  rank[name],
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		pi, pj := mustDecimal(entries[i].price), mustDecimal(entries[j].price)
		if !pi.Equal(pj) {
			if side == Bid {
				return pi.GreaterThan(pj)
			}
			return pi.LessThan(pj)
		}
		return entries[i].rank < entries[j].rank
	})

	out := make([]SummaryLevel, len(entries))
	for i, e := range entries {
		out[i] = e.level
	}
	return out
}
