package binance

import (
	"testing"

	"github.com/shopspring/decimal"
)

// S1 — subscription echo then update.
func TestParseSubscriptionEchoThenUpdate(t *testing.T) {
	p := New("binance")

	book, err := p.Parse(`{"id":1,"result":null}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book for subscription echo, got %+v", book)
	}

	book, err = p.Parse(`{"lastUpdateId":160,"bids":[["0.01","0.2"]],"asks":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book == nil {
		t.Fatalf("expected a book")
	}
	if book.Bid.Len() != 1 {
		t.Fatalf("expected 1 bid level, got %d", book.Bid.Len())
	}
	want, _ := decimal.NewFromString("0.01")
	best, ok := book.Bid.Best()
	if !ok || !best.Equal(want) {
		t.Fatalf("expected best bid 0.01, got %v", best)
	}
	if book.Ask.Len() != 0 {
		t.Fatalf("expected no asks")
	}
}
