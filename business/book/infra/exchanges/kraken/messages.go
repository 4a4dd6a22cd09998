// Package kraken decodes Kraken's positional-array book/ticker websocket
// protocol.
package kraken

import (
	"encoding/json"
	"errors"
)

var errTooFewFields = errors.New("kraken: level array has fewer than 2 fields")

// bookData is the object at index 1 of a book-channel frame. bs/as carry
// the initial snapshot as (price, qty, timestamp) triples; b/a carry
// steady-state incremental updates as variable-length arrays whose first
// two elements are price and quantity.
type bookData struct {
	As []json.RawMessage `json:"as"`
	Bs []json.RawMessage `json:"bs"`
	A  []json.RawMessage `json:"a"`
	B  []json.RawMessage `json:"b"`
}

// tickerData is the object at index 1 of a ticker-channel frame.
type tickerData struct {
	C [2]string `json:"c"`
	V [2]string `json:"v"`
}

func decodeLevel(raw json.RawMessage) (price, qty string, err error) {
	var fields []string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", "", err
	}
	if len(fields) < 2 {
		return "", "", errTooFewFields
	}
	return fields[0], fields[1], nil
}
