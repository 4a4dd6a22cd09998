package coinjar

import "testing"

func TestParseBookInitThenUpdate(t *testing.T) {
	p := New()

	book, err := p.Parse(`{"event":"init","topic":"book:BTCAUD","payload":{"bids":[["10","1"]],"asks":[["11","1"]]}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Bid.Len() != 1 || book.Ask.Len() != 1 {
		t.Fatalf("expected one level per side")
	}

	book, err = p.Parse(`{"event":"update","topic":"book:BTCAUD","payload":{"bids":[["10","0"]],"asks":[]}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Bid.Len() != 0 {
		t.Fatalf("expected zero-qty update to remove the level")
	}
}

func TestParseTickerUpdatesSharedBook(t *testing.T) {
	p := New()
	p.Parse(`{"event":"init","topic":"book:BTCAUD","payload":{"bids":[["10","1"]],"asks":[]}}`)

	book, err := p.Parse(`{"event":"update","topic":"ticker:BTCAUD","payload":{"volume":"100","last":"10.5"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Volume.String() != "100" || book.LastPrice.String() != "10.5" {
		t.Fatalf("expected ticker fields updated, got %+v", book)
	}
	if book.Bid.Len() != 1 {
		t.Fatalf("expected the book/ticker channels to share state")
	}
}

func TestParseIgnoresNonInitUpdateEvents(t *testing.T) {
	p := New()
	book, err := p.Parse(`{"event":"phx_reply","topic":"book:BTCAUD","payload":{}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book for non-init/update event")
	}
}
