// Package independentreserve decodes IndependentReserve's pascal-cased
// per-channel order-book websocket protocol.
package independentreserve

import "encoding/json"

type wsEvent struct {
	Channel string          `json:"Channel"`
	Data    json.RawMessage `json:"Data"`
	Event   string          `json:"Event"`
}

// unit is one price level as IndependentReserve encodes it: native floats,
// not strings.
type unit struct {
	Price  float64 `json:"Price"`
	Volume float64 `json:"Volume"`
}

type snapshot struct {
	Bids   []unit `json:"Bids"`
	Offers []unit `json:"Offers"`
	Crc32  uint64 `json:"Crc32"`
}
