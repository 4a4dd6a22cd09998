package kraken

import "testing"

// S4 — control message ignored.
func TestParseControlMessageIgnored(t *testing.T) {
	p := New()
	book, err := p.Parse(`{"event":"heartbeat"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book for a control message")
	}
}

func TestParseBookSnapshotThenIncremental(t *testing.T) {
	p := New()

	book, err := p.Parse(`[336,{"as":[["5541.30000","2.50700000","1534614248.123678"]],"bs":[["5541.20000","1.52900000","1534614248.765567"]]},"book-25","XBT/USD"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Bid.Len() != 1 || book.Ask.Len() != 1 {
		t.Fatalf("expected one level per side from the snapshot")
	}

	book, err = p.Parse(`[336,{"a":[["5541.30000","0.00000000","1534614335.345903"]]},"book-25","XBT/USD"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Ask.Len() != 0 {
		t.Fatalf("expected zero-qty incremental to delete the level")
	}
}

func TestParseTicker(t *testing.T) {
	p := New()
	p.Parse(`[336,{"as":[["5541.30000","2.50700000","1"]],"bs":[]},"book-25","XBT/USD"]`)

	book, err := p.Parse(`[336,{"c":["5541.20000","0.00398963"],"v":["1500.00000000","8000.00000000"]},"ticker","XBT/USD"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.LastPrice.String() != "5541.2" || book.Volume.String() != "8000" {
		t.Fatalf("expected ticker fields updated, got %+v", book)
	}
	if book.Ask.Len() != 1 {
		t.Fatalf("expected shared state with the book channel")
	}
}
