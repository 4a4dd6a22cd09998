package bitstamp

import "testing"

// S2 — ignore non-data events, then apply a data event.
func TestParseIgnoresNonDataEvents(t *testing.T) {
	p := New()

	book, err := p.Parse(`{"event":"bts:subscription_succeeded","channel":"order_book_btcusd","data":{}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book for subscription ack")
	}

	book, err = p.Parse(`{"data":{"timestamp":"1691595437","microtimestamp":"1691595437334962","bids":[],"asks":[["29737","0.67548438"],["29738","0.67255217"]]},"channel":"order_book_btcusd","event":"data"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book == nil {
		t.Fatalf("expected a book")
	}
	snap := book.Ask.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 ask levels, got %d", len(snap))
	}
	if snap[0].Price.String() != "29737" || snap[1].Price.String() != "29738" {
		t.Fatalf("expected asks ordered ascending, got %+v", snap)
	}
}
