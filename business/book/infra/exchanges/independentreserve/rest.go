package independentreserve

import (
	"context"
	"fmt"
	"strings"

	"github.com/fd1az/bookfeed/business/book/domain"
	"github.com/fd1az/bookfeed/internal/apperror"
	"github.com/fd1az/bookfeed/internal/httpclient"
)

const restEndpoint = "https://api.independentreserve.com"

type orderbookSnapshot struct {
	BuyOrders  []unit `json:"BuyOrders"`
	SellOrders []unit `json:"SellOrders"`
}

// Fetcher builds a fresh book for one pair by calling IndependentReserve's
// REST orderbook endpoint. The endpoint carries no 24h volume figure, so
// poll-mode books leave Volume at its zero value, same as the orderbook
// builder this is ported from.
type Fetcher struct {
	client httpclient.Client
}

func NewFetcher(client httpclient.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch implements app.PollEntry.Fetch. pair is formatted "Xbt-Aud" per the
// exchange's primary/secondary currency code convention.
func (f *Fetcher) Fetch(ctx context.Context, pair string) (*domain.Orderbook, error) {
	parts := strings.Split(pair, "-")
	if len(parts) != 2 {
		return nil, apperror.Validation(apperror.CodeConfigurationError,
			fmt.Sprintf("pair in wrong format: should be Xbt-Aud but got %s", pair))
	}

	url := fmt.Sprintf("%s/Public/GetOrderbook?primaryCurrencyCode=%s&secondaryCurrencyCode=%s",
		restEndpoint, parts[0], parts[1])

	var shot orderbookSnapshot
	resp, err := f.client.NewRequest().SetResult(&shot).Get(ctx, url)
	if err != nil {
		return nil, apperror.External(apperror.CodePollRequestFailed, url, err)
	}
	if resp.IsError() {
		return nil, apperror.External(apperror.CodePollRequestFailed, resp.String(), nil)
	}

	book := domain.New("independentreserve")
	for _, lvl := range shot.BuyOrders {
		price, qty, err := levelToDecimal(lvl)
		if err != nil {
			return nil, err
		}
		book.Insert(ctx, nil, domain.Bid, price, qty)
	}
	for _, lvl := range shot.SellOrders {
		price, qty, err := levelToDecimal(lvl)
		if err != nil {
			return nil, err
		}
		book.Insert(ctx, nil, domain.Ask, price, qty)
	}

	return book, nil
}
