// Package coinjar decodes CoinJar's Phoenix-channel book/ticker protocol.
package coinjar

import "encoding/json"

type wsEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Topic   string          `json:"topic"`
}

type tickerPayload struct {
	Volume string `json:"volume"`
	Last   string `json:"last"`
}

type bookPayload struct {
	Bids [][2]string `json:"bids"`
	Asks [][2]string `json:"asks"`
}
