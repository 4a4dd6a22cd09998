package independentreserve

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fd1az/bookfeed/business/book/app"
	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
)

// Parser is channel-stateful: a subscription-acknowledgement event
// pre-allocates one book per channel name, snapshot events clear and
// refill, change events apply incrementally. State is keyed by the
// exchange's own Channel string and guarded by mu, since concurrent driver
// tasks never share a Parser but a single Parser's Parse may be called
// from the transport's read loop and, in principle, a heartbeat goroutine.
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

	if event.Event == "Subscriptions" {
		var channels []string
		if err := json.Unmarshal(event.Data, &channels); err != nil {
			return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
		}
		p.mu.Lock()
		for _, channel := range channels {
			if _, exists := p.books[channel]; !exists {
				p.books[channel] = domain.New("independentreserve")
			}
		}
		p.mu.Unlock()
		return nil, nil
	}

	if event.Event != "OrderBookSnapshot" && event.Event != "OrderBookChange" {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	book, ok := p.books[event.Channel]
	if !ok {
		return nil, apperror.Validation(apperror.CodeUnknownChannel, "orderbook not exist for "+event.Channel)
	}

	if event.Event == "OrderBookSnapshot" {
		book.ClearBids()
		book.ClearAsks()
	}

	var shot snapshot
	if err := json.Unmarshal(event.Data, &shot); err != nil {
		return nil, apperror.Validation(apperror.CodeMalformedFrame, err.Error())
	}

	for _, lvl := range shot.Bids {
		price, qty, err := levelToDecimal(lvl)
		if err != nil {
			return nil, err
		}
		book.Insert(nil, nil, domain.Bid, price, qty)
	}
	for _, lvl := range shot.Offers {
		price, qty, err := levelToDecimal(lvl)
		if err != nil {
			return nil, err
		}
		book.Insert(nil, nil, domain.Ask, price, qty)
	}

	return book.Clone(), nil
}

func (p *Parser) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.books = make(map[string]*domain.Orderbook)
}

// levelToDecimal converts a float-encoded level to decimal via its shortest
// round-tripping textual representation, per the numeric-encoding rule.
func levelToDecimal(u unit) (price, qty decimal.Decimal, err error) {
	priceStr := strconv.FormatFloat(u.Price, 'f', -1, 64)
	price, err = decimal.NewFromString(priceStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperror.Validation(apperror.CodeParsePriceFailed, priceStr)
	}
	volStr := strconv.FormatFloat(u.Volume, 'f', -1, 64)
	qty, err = decimal.NewFromString(volStr)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperror.Validation(apperror.CodeParseVolumeFailed, volStr)
	}
	return price, qty, nil
}
