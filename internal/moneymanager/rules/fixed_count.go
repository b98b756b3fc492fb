package rules

import (
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
)

// FixedCount buys the same number of shares every time.
type FixedCount struct {
	moneymanager.BaseRule
	Count int64 `validate:"gt=0"`
	// SellFixed sells Count shares instead of the full position.
	SellFixed bool
}

func NewFixedCount(count int64, sellFixed bool) (*FixedCount, error) {
	rule := &FixedCount{Count: count, SellFixed: sellFixed}
	if err := validateRule(rule, RuleTypeFixedCount); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *FixedCount) Name() string {
	return string(RuleTypeFixedCount)
}

func (r *FixedCount) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	return r.Count
}

func (r *FixedCount) ComputeSellQuantity(l ledger.Ledger, req types.SizingRequest) types.Quantity {
	if r.SellFixed {
		return types.Exact(r.Count)
	}

	return r.BaseRule.ComputeSellQuantity(l, req)
}

func (r *FixedCount) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}
