package app

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/domain"
)

type fakePublisher struct {
	summaries []*domain.Summary
}

func (f *fakePublisher) Publish(summary *domain.Summary) []error {
	f.summaries = append(f.summaries, summary)
	return nil
}

func bookWith(name, price, qty string) *domain.Orderbook {
	book := domain.New(name)
	p, _ := decimal.NewFromString(price)
	q, _ := decimal.NewFromString(qty)
	book.Insert(nil, nil, domain.Bid, p, q)
	return book
}

func TestSupervisorOnBookRebuildsAggregateAcrossExchanges(t *testing.T) {
	pub := &fakePublisher{}
	s := New(nil, pub, nil, "btcusd")

	s.onBook("binance", bookWith("binance", "100", "1"))
	s.onBook("bitstamp", bookWith("bitstamp", "101", "1"))

	if len(pub.summaries) != 2 {
		t.Fatalf("expected 2 publishes, got %d", len(pub.summaries))
	}

	final := pub.summaries[len(pub.summaries)-1]
	if len(final.Bids) != 2 {
		t.Fatalf("expected both exchanges' bids present after second update, got %d", len(final.Bids))
	}
	if final.Bids[0].Exchange != "bitstamp" || final.Bids[0].Price != "101" {
		t.Fatalf("expected best bid (101, bitstamp) first, got %+v", final.Bids[0])
	}
}

func TestSupervisorOnBookReplacesStaleExchangeEntry(t *testing.T) {
	pub := &fakePublisher{}
	s := New(nil, pub, nil, "btcusd")

	s.onBook("binance", bookWith("binance", "100", "1"))
	s.onBook("binance", bookWith("binance", "105", "2"))

	final := pub.summaries[len(pub.summaries)-1]
	if len(final.Bids) != 1 {
		t.Fatalf("expected the cache to hold one entry per exchange, got %d", len(final.Bids))
	}
	if final.Bids[0].Price != "105" {
		t.Fatalf("expected the latest book to replace the stale one, got price %s", final.Bids[0].Price)
	}
}
