package kraken

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
)

// Parser is channel-stateful, keyed by pair (the frame's 4th positional
// element). Book and ticker channels for the same pair share one book.
type Parser struct {
	mu    sync.Mutex
	books map[string]*domain.Orderbook
}

func New() *Parser {
	return &Parser{books: make(map[string]*domain.Orderbook)}
}

var _ app.Parser = (*Parser)(nil)

func (p *Parser) Parse(raw string) (*domain.Orderbook, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if trimmed[0] == '{' {
		// control messages (heartbeat, subscription status, ...) are objects
		return nil, nil
	}

	var frame []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &frame); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}
	if len(frame) < 4 {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, "array frame shorter than 4 elements")
	}

	var channelName, pair string
	if err := json.Unmarshal(frame[2], &channelName); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}
	if err := json.Unmarshal(frame[3], &pair); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	book, ok := p.books[pair]
	if !ok {
		book = domain.New("kraken")
		p.books[pair] = book
	}

	switch {
	case strings.HasPrefix(channelName, "book"):
		var data bookData
		if err := json.Unmarshal(frame[1], &data); err != nil {
			return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		if len(data.Bs) > 0 || len(data.As) > 0 {
			book.ClearBids()
			book.ClearAsks()
		}
		if err := applyTriples(book, domain.Bid, data.Bs); err != nil {
			return nil, err
		}
		if err := applyTriples(book, domain.Bid, data.B); err != nil {
			return nil, err
		}
		if err := applyTriples(book, domain.Ask, data.As); err != nil {
			return nil, err
		}
		if err := applyTriples(book, domain.Ask, data.A); err != nil {
			return nil, err
		}
		return book.Clone(), nil

	case channelName == "ticker":
		var data tickerData
		if err := json.Unmarshal(frame[1], &data); err != nil {
			return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		volume, err := decimal.NewFromString(data.V[1])
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParseVolumeFailed, data.V[1])
		}
		lastPrice, err := decimal.NewFromString(data.C[0])
		if err != nil {
			return nil, apperror.Validation(apperror.CodeParsePriceFailed, data.C[0])
		}
		book.Volume = volume
		book.LastPrice = lastPrice
		return book.Clone(), nil
	}

	return nil, nil
}

func applyTriples(book *domain.Orderbook, side domain.Side, raws []json.RawMessage) error {
	for _, raw := range raws {
		priceStr, qtyStr, err := decodeLevel(raw)
		if err != nil {
			return apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return apperror.Validation(apperror.CodeParsePriceFailed, priceStr)
		}
		qty, err := decimal.NewFromString(qtyStr)
		if err != nil {
			return apperror.Validation(apperror.CodeParseVolumeFailed, qtyStr)
		}
		book.Insert(nil, nil, side, price, qty)
	}
	return nil
}

func (p *Parser) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.books = make(map[string]*domain.Orderbook)
}
