package domain

// SummaryLevel is one price level in a published summary, tagged with the
// exchange that contributed it. All three fields are serialized as strings,
// per the canonical decimal.String() round-trip form.
type SummaryLevel struct {
	Exchange string `json:"exchange"`
	Price    string `json:"price"`
	Amount   string `json:"amount"`
}

// Summary is the cross-exchange aggregate for one trading pair, ready for
// publication: up to ten best bid and ask levels, the current spread, and
// per-exchange last trade price, 24h volume, and last-update timestamp.
type Summary struct {
	Spread    string            `json:"spread"`
	Bids      []SummaryLevel    `json:"bids"`
	Asks      []SummaryLevel    `json:"asks"`
	Timestamp map[string]string `json:"timestamp"`
	Volume    map[string]string `json:"volume"`
	LastPrice map[string]string `json:"last_price"`

	// Sequence lets subscribers detect gaps in the outbound stream; it is
	// metadata only and plays no part in merge/finalize semantics.
	Sequence uint64 `json:"sequence"`
}
