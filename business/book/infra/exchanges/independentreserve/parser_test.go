package independentreserve

import "testing"

// S3 — channel bootstrap then snapshot, then an incremental delete.
func TestParseChannelBootstrapThenSnapshot(t *testing.T) {
	p := New()

	book, err := p.Parse(`{"Data": ["orderbook/5/btc/aud"], "Event": "Subscriptions", "Time": 1660895883834}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book on bootstrap")
	}

	book, err = p.Parse(`{"Channel": "orderbook/5/btc/aud","Data": {
		"Bids": [{"Price": 31802.46,"Volume": 0.25},{"Price": 31802.45,"Volume": 0.32464684}],
		"Offers": [{"Price": 31844.99,"Volume": 0.30740328},{"Price": 31845,"Volume": 1.5}],
		"Crc32": 2893776693
	}, "Time": 1660895883834,"Event": "OrderBookSnapshot"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book == nil {
		t.Fatalf("expected a book")
	}
	if book.Bid.Len() != 2 || book.Ask.Len() != 2 {
		t.Fatalf("expected 2 bids and 2 asks, got %d/%d", book.Bid.Len(), book.Ask.Len())
	}

	book, err = p.Parse(`{"Channel": "orderbook/5/btc/aud","Data": {
		"Bids": [{"Price": 31802.46,"Volume": 0}],
		"Offers": [],
		"Crc32": 0
	}, "Time": 1660895883835,"Event": "OrderBookChange"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Bid.Len() != 1 {
		t.Fatalf("expected the zero-volume level removed, got %d bids", book.Bid.Len())
	}
}

func TestParseEventForUnknownChannelIsError(t *testing.T) {
	p := New()
	_, err := p.Parse(`{"Channel": "unknown","Data": {"Bids":[],"Offers":[],"Crc32":0}, "Event": "OrderBookSnapshot"}`)
	if err == nil {
		t.Fatalf("expected an error for an unregistered channel")
	}
}
