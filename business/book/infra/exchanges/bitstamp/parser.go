package bitstamp

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
)

// Parser decodes Bitstamp's order_book_* channel. It is stateless: each
// "data" event carries a full top-of-book.
type Parser struct{}

func New() *Parser { return &Parser{} }

var _ app.Parser = (*Parser)(nil)

func (p *Parser) Parse(raw string) (*domain.Orderbook, error) {
	var event wsEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}
	if event.Event != "data" {
		// subscription ack, reconnect request, or other control frame
		return nil, nil
	}
	if !strings.HasPrefix(event.Channel, "order_book_") {
		return nil, apperror.Validation(apperror.CodeUnknownEnvelope, "non-orderbook signal on data event")
	}

	var detail liveDetailOrderbook
	if err := json.Unmarshal(event.Data, &detail); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}

	book := domain.New("bitstamp")
	for _, lvl := range detail.Bids {
		price, qty, err := parseLevel(lvl)
		if err != nil {
			return nil, err
		}
		book.Insert(nil, nil, domain.Bid, price, qty)
	}
	for _, lvl := range detail.Asks {
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
