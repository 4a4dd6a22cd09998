package binance

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
)

// Parser decodes Binance's partial-book-depth stream. It is stateless: each
// data frame carries a full top-of-book, so every emitted book is built
// fresh.
type Parser struct {
	exchange string
}

// New returns a Parser tagging emitted books with exchange (e.g. "binance"
// or "binance_futures" — both exchanges speak the same wire format).
func New(exchange string) *Parser {
	return &Parser{exchange: exchange}
}

var _ app.Parser = (*Parser)(nil)

func (p *Parser) Parse(raw string) (*domain.Orderbook, error) {
	var payload partialBookDepth
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}
	if payload.isSubscriptionAck() {
		return nil, nil
	}
	if payload.hasNonNullResult() {
		return nil, apperror.Validation(apperror.CodeUnknownEnvelope, "result not empty")
	}

	book := domain.New(p.exchange)
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
	return book, nil
}

func (p *Parser) Clear() {}

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
