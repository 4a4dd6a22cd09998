package coinjar

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
)

// Parser is channel-stateful, keyed by the pair extracted from the topic
// (dropping the "book:" or "ticker:" prefix); both channel namespaces
// collapse onto the same per-pair book.
type Parser struct {
	mu    sync.Mutex
	books map[string]*domain.Orderbook
}

func New() *Parser {
	return &Parser{books: make(map[string]*domain.Orderbook)}
}

var _ app.Parser = (*Parser)(nil)

func (p *Parser) Parse(raw string) (*domain.Orderbook, error) {
	var event wsEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}
	if event.Event != "init" && event.Event != "update" {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case strings.HasPrefix(event.Topic, "ticker"):
		key := strings.TrimPrefix(event.Topic, "ticker:")
		book := p.bookFor(key)

		var payload tickerPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		volume, err := decimal.NewFromString(payload.Volume)
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParseVolumeFailed, payload.Volume)
		}
		last, err := decimal.NewFromString(payload.Last)
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParsePriceFailed, payload.Last)
		}
		book.Volume = volume
		book.LastPrice = last
		return book.Clone(), nil

	case strings.HasPrefix(event.Topic, "book"):
		key := strings.TrimPrefix(event.Topic, "book:")
		book := p.bookFor(key)

		if event.Event == "init" {
			book.ClearBids()
			book.ClearAsks()
		}

		var payload bookPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		for _, lvl := range payload.Bids {
			price, qty, err := parseLevel(lvl)
			if err != nil {
				return nil, err
			}
			book.Insert(nil, nil, domain.Bid, price, qty)
		}
		for _, lvl := range payload.Asks {
			price, qty, err := parseLevel(lvl)
			if err != nil {
				return nil, err
			}
			book.Insert(nil, nil, domain.Ask, price, qty)
		}
		return book.Clone(), nil
	}

	return nil, nil
}

func (p *Parser) bookFor(key string) *domain.Orderbook {
	book, ok := p.books[key]
	if !ok {
		book = domain.New("coinjar")
		p.books[key] = book
	}
	return book
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
