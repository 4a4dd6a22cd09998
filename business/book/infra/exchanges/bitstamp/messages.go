// Package bitstamp decodes Bitstamp's live order-book websocket channel.
package bitstamp

import "encoding/json"

type wsEvent struct {
	Data    json.RawMessage `json:"data"`
	Event   string          `json:"event"`
	Channel string          `json:"channel"`
}

type liveDetailOrderbook struct {
	Bids [][2]string `json:"bids"`
	Asks [][2]string `json:"asks"`
}
