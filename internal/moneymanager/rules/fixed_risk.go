package rules

import (
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
)

// FixedRisk risks the same amount of money on every trade: RiskAmount / risk.
type FixedRisk struct {
	moneymanager.BaseRule
	RiskAmount float64 `validate:"gt=0"`
}

func NewFixedRisk(riskAmount float64) (*FixedRisk, error) {
	rule := &FixedRisk{RiskAmount: riskAmount}
	if err := validateRule(rule, RuleTypeFixedRisk); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *FixedRisk) Name() string {
	return string(RuleTypeFixedRisk)
}

func (r *FixedRisk) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	return floorDiv(fromFloat(r.RiskAmount), fromFloat(req.Risk))
}

func (r *FixedRisk) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}

// FixedCapital buys one share for every Capital of money per unit of risk:
// Capital / risk.
type FixedCapital struct {
	moneymanager.BaseRule
	Capital float64 `validate:"gt=0"`
}

func NewFixedCapital(capital float64) (*FixedCapital, error) {
	rule := &FixedCapital{Capital: capital}
	if err := validateRule(rule, RuleTypeFixedCapital); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *FixedCapital) Name() string {
	return string(RuleTypeFixedCapital)
}

func (r *FixedCapital) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	return floorDiv(fromFloat(r.Capital), fromFloat(req.Risk))
}

func (r *FixedCapital) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}
