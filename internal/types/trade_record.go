package types

import "time"

type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// TradeRecord is an executed trade as booked by the ledger.
type TradeRecord struct {
	ID        string     `json:"id" yaml:"id"`
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
	Symbol    string     `json:"symbol" yaml:"symbol"`
	Side      TradeSide  `json:"side" yaml:"side"`
	Quantity  int64      `json:"quantity" yaml:"quantity"`
	Price     float64    `json:"price" yaml:"price"`
	Cost      CostRecord `json:"cost" yaml:"cost"`
	// CashAfter is the ledger cash balance right after the trade.
	CashAfter float64 `json:"cash_after" yaml:"cash_after"`
	// PnL is the realized profit of a sell against the average entry cost, fees included.
	// It is always 0 for buys.
	PnL float64 `json:"pnl" yaml:"pnl"`
}
