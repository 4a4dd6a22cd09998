package btcmarkets

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
	"github.com/fd1az/bookfeed/internal/logger"
)

// Parser is channel-stateful, keyed by marketId. An "orderbook" message
// replaces both ladders; a "tick" message updates last price and 24h
// volume without touching the ladders. Either still emits the book.
type Parser struct {
	mu    sync.Mutex
	books map[string]*domain.Orderbook
	log   logger.LoggerInterface
}

func New(log logger.LoggerInterface) *Parser {
	return &Parser{books: make(map[string]*domain.Orderbook), log: log}
}

var _ app.Parser = (*Parser)(nil)

func (p *Parser) Parse(raw string) (*domain.Orderbook, error) {
	var event wsEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	book, ok := p.books[event.MarketID]
	if !ok {
		book = domain.New("btcmarkets")
		p.books[event.MarketID] = book
	}

	switch event.MessageType {
	case "orderbook":
		book.ClearBids()
		book.ClearAsks()
		for _, lvl := range event.Bids {
			price, qty, err := parseLevel(lvl)
			if err != nil {
				return nil, err
			}
			book.Insert(context.Background(), p.log, domain.Bid, price, qty)
		}
		for _, lvl := range event.Asks {
			price, qty, err := parseLevel(lvl)
			if err != nil {
				return nil, err
			}
			book.Insert(context.Background(), p.log, domain.Ask, price, qty)
		}
		return book.Clone(), nil

	case "tick":
		lastPrice, err := decimal.NewFromString(event.LastPrice)
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParsePriceFailed, event.LastPrice)
		}
		volume, err := decimal.NewFromString(event.Volume24h)
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParseVolumeFailed, event.Volume24h)
		}
		book.LastPrice = lastPrice
		book.Volume = volume
		return book.Clone(), nil

	default:
		if p.log != nil {
			p.log.Warn(context.Background(), "unrecognized btcmarkets message type", "raw", raw)
		}
		return nil, nil
	}
}

func (p *Parser) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.books = make(map[string]*domain.Orderbook)
}

func parseLevel(lvl [2]string) (price, qty decimal.Decimal, err error) {
	price, err = decimal.NewFromString(lvl[0])
	if err != nil {
		return decimal.Zero, decimal.Zero, apperror.Validation(apperror.CodeParsePriceFailed, lvl[0])
	}
	qty, err = decimal.NewFromString(lvl[1])
	if err != nil {
		return decimal.Zero, decimal.Zero, apperror.Validation(apperror.CodeParseVolumeFailed, lvl[1])
	}
	return price, qty, nil
}
