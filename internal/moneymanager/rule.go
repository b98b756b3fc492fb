package moneymanager

import (
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/types"
)

// Rule turns a sizing request into a raw quantity. One implementation per
// sizing strategy. Results are not rounded or checked against cash; the
// MoneyManager does that for buys.
type Rule interface {
	// Name returns the rule's display name.
	Name() string
	// ComputeBuyQuantity returns the desired number of shares to buy.
	ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64
	// ComputeSellQuantity returns the quantity to sell.
	ComputeSellQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity
	// ComputeShortSellQuantity returns the quantity to sell short.
	ComputeShortSellQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity
	// ComputeCoverShortQuantity returns the quantity to buy back.
	ComputeCoverShortQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity
	// Clone returns a distinct, independently usable copy of the rule.
	Clone() (Rule, error)
}

// TradeNotifier is implemented by rules that adapt to executed trades.
type TradeNotifier interface {
	BuyNotify(trade types.TradeRecord)
	SellNotify(trade types.TradeRecord)
}

// Resetter is implemented by rules that keep state between calls.
type Resetter interface {
	Reset()
}

// BaseRule provides the default sell and short behavior. Embed it in a rule
// and implement Name, ComputeBuyQuantity and Clone.
type BaseRule struct{}

// ComputeSellQuantity sells the whole holding.
func (BaseRule) ComputeSellQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity {
	return types.FullPosition()
}

// ComputeShortSellQuantity does not short.
func (BaseRule) ComputeShortSellQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity {
	return types.Exact(0)
}

// ComputeCoverShortQuantity does not cover.
func (BaseRule) ComputeCoverShortQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity {
	return types.Exact(0)
}
