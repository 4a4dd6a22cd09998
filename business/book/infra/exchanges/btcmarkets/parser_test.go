package btcmarkets

import "testing"

func TestParseOrderbookThenTick(t *testing.T) {
	p := New(nil)

	book, err := p.Parse(`{"messageType":"orderbook","marketId":"BTC-AUD","bids":[["10","1"]],"asks":[["11","1"]]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.Bid.Len() != 1 || book.Ask.Len() != 1 {
		t.Fatalf("expected one level per side")
	}

	book, err = p.Parse(`{"messageType":"tick","marketId":"BTC-AUD","lastPrice":"10.5","volume24h":"123.45"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.LastPrice.String() != "10.5" || book.Volume.String() != "123.45" {
		t.Fatalf("expected last price/volume updated, got %+v", book)
	}
	if book.Bid.Len() != 1 || book.Ask.Len() != 1 {
		t.Fatalf("tick must not touch ladders")
	}
}

func TestParseUnknownMessageTypeIsIgnored(t *testing.T) {
	p := New(nil)
	book, err := p.Parse(`{"messageType":"heartbeat","marketId":"BTC-AUD"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book != nil {
		t.Fatalf("expected nil book for unrecognized message type")
	}
}
