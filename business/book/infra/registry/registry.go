// Package registry is the static, compile-time exchange table: one entry
// per exchange naming its endpoint, subscription templates, parser
// constructor, and optional heartbeat/forced-reconnect/backoff knobs.
package registry

import (
	"time"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/binance"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/bitstamp"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/btcmarkets"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/coinjar"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/independentreserve"
	"github.com/fd1az/bookfeed/business/book/infra/exchanges/kraken"
	"github.com/fd1az/bookfeed/internal/httpclient"
	"github.com/fd1az/bookfeed/internal/logger"
)

type registry struct {
	stream map[string]app.StreamEntry
	poll   map[string]app.PollEntry
}

var _ app.Registry = (*registry)(nil)

// New builds the static registry. log is threaded into parsers that emit
// diagnostics (e.g. btcmarkets' "unrecognized message type" dump); httpCli
// backs the poll-mode independentreserve fetcher.
func New(log logger.LoggerInterface, httpCli httpclient.Client) app.Registry {
	r := &registry{
		stream: make(map[string]app.StreamEntry),
		poll:   make(map[string]app.PollEntry),
	}

	binanceEntry := app.StreamEntry{
		Endpoint:           "wss://stream.binance.com:9443/ws",
		SubscribeTemplates: []string{`{"id": 1, "method": "SUBSCRIBE", "params": ["{pair}@depth{depth}@100ms"]}`},
		NewParser:          func() app.Parser { return binance.New("binance") },
	}
	r.stream["binance"] = binanceEntry

	r.stream["binance_futures"] = app.StreamEntry{
		Endpoint:           "wss://fstream.binance.com:9443/ws",
		SubscribeTemplates: []string{`{"id":1, "method":"SUBSCRIBE", "params": ["{pair}@depth{depth}@100ms"]}`},
		NewParser:          func() app.Parser { return binance.New("binance_futures") },
	}

	r.stream["bitstamp"] = app.StreamEntry{
		Endpoint:           "wss://ws.bitstamp.net",
		SubscribeTemplates: []string{`{"event":"bts:subscribe","data":{"channel":"order_book_{pair}"}}`},
		NewParser:          func() app.Parser { return bitstamp.New() },
	}

	r.stream["independentreserve"] = app.StreamEntry{
		Endpoint:           "wss://websockets.independentreserve.com/orderbook/20?subscribe={}",
		SubscribeTemplates: []string{`{"Event": "Subscribe", "Data": ["{pair}"]}`},
		RenderURL:          true,
		NewParser:          func() app.Parser { return independentreserve.New() },
	}
	r.poll["independentreserve"] = app.PollEntry{
		Fetch: independentreserve.NewFetcher(httpCli).Fetch,
	}

	r.stream["btcmarkets"] = app.StreamEntry{
		Endpoint:           "wss://socket.btcmarkets.net/v2",
		SubscribeTemplates: []string{`{"marketIds": ["{pair}"], "channels": ["orderbook", "tick"], "messageType": "subscribe"}`},
		NewParser: func() app.Parser { return btcmarkets.New(log) },
		// BTCMarkets limits to 3 connection attempts per 10s window.
		Backoff: 4 * time.Second,
	}

	r.stream["coinjar"] = app.StreamEntry{
		Endpoint: "wss://feed.exchange.coinjar.com/socket/websocket",
		SubscribeTemplates: []string{
			`{"topic": "book:{pair}", "event": "phx_join", "payload": {}, "ref": 0}`,
			`{"topic": "ticker:{pair}", "event": "phx_join", "payload": {}, "ref": 0}`,
		},
		NewParser: func() app.Parser { return coinjar.New() },
	}

	r.stream["kraken"] = app.StreamEntry{
		Endpoint: "wss://ws.kraken.com",
		SubscribeTemplates: []string{
			`{"event":"subscribe","pair":["{pair}"], "subscription": {"name":"book","depth":25}}`,
			`{"event":"subscribe","pair":["{pair}"], "subscription": {"name":"ticker"}}`,
		},
		NewParser: func() app.Parser { return kraken.New() },
	}

	return r
}

func (r *registry) Stream(exchange string) (app.StreamEntry, bool) {
	e, ok := r.stream[exchange]
	return e, ok
}

func (r *registry) Poll(exchange string) (app.PollEntry, bool) {
	e, ok := r.poll[exchange]
	return e, ok
}
