package rules

import (
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
)

// FixedPercent risks a fixed share of the current cash: cash * Percent / risk.
type FixedPercent struct {
	moneymanager.BaseRule
	Percent float64 `validate:"gt=0,lte=1"`
}

func NewFixedPercent(percent float64) (*FixedPercent, error) {
	rule := &FixedPercent{Percent: percent}
	if err := validateRule(rule, RuleTypeFixedPercent); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *FixedPercent) Name() string {
	return string(RuleTypeFixedPercent)
}

func (r *FixedPercent) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	budget := fromFloat(l.CurrentCash()).Mul(fromFloat(r.Percent))

	return floorDiv(budget, fromFloat(req.Risk))
}

func (r *FixedPercent) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}

// WilliamsFixedRisk sizes against the largest expected loss per share
// instead of the request's risk: cash * Percent / MaxLoss.
type WilliamsFixedRisk struct {
	moneymanager.BaseRule
	Percent float64 `validate:"gt=0,lte=1"`
	MaxLoss float64 `validate:"gt=0"`
}

func NewWilliamsFixedRisk(percent float64, maxLoss float64) (*WilliamsFixedRisk, error) {
	rule := &WilliamsFixedRisk{Percent: percent, MaxLoss: maxLoss}
	if err := validateRule(rule, RuleTypeWilliamsFixedRisk); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *WilliamsFixedRisk) Name() string {
	return string(RuleTypeWilliamsFixedRisk)
}

func (r *WilliamsFixedRisk) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	budget := fromFloat(l.CurrentCash()).Mul(fromFloat(r.Percent))

	return floorDiv(budget, fromFloat(r.MaxLoss))
}

func (r *WilliamsFixedRisk) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}
