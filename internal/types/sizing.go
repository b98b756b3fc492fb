package types

import "time"

// SizingRequest describes the trade a position size is asked for.
type SizingRequest struct {
	Timestamp  time.Time
	Instrument Instrument
	// Price is the expected execution price.
	Price float64
	// Risk is the amount at risk per share, e.g. the distance to the stop price.
	Risk   float64
	Origin Origin
}

// CostRecord is the transaction cost of a trade as computed by the ledger.
type CostRecord struct {
	Commission float64 `json:"commission" yaml:"commission"`
	StampTax   float64 `json:"stamp_tax" yaml:"stamp_tax"`
	// Total is the full cost of the trade on top of the traded amount.
	Total float64 `json:"total" yaml:"total"`
}
