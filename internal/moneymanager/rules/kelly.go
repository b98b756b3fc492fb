package rules

import (
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

// Kelly risks the Kelly percentage of the current cash, learned from the
// profit and loss of closed trades reported through SellNotify.
//
//	W = wins / closed trades
//	R = average win / average loss
//	K = W - (1 - W) / R
//
// The buy quantity is cash * K * Fraction / risk. Until MinTrades trades are
// closed, DefaultPercent is used in place of K * Fraction.
type Kelly struct {
	moneymanager.BaseRule
	Fraction       float64 `validate:"gt=0,lte=1"`
	MinTrades      int     `validate:"gte=0"`
	DefaultPercent float64 `validate:"gte=0,lte=1"`

	wins    int
	losses  int
	winSum  decimal.Decimal
	lossSum decimal.Decimal
}

func NewKelly(fraction float64, minTrades int, defaultPercent float64) (*Kelly, error) {
	rule := &Kelly{
		Fraction:       fraction,
		MinTrades:      minTrades,
		DefaultPercent: defaultPercent,
		wins:           0,
		losses:         0,
		winSum:         decimal.Zero,
		lossSum:        decimal.Zero,
	}
	if err := validateRule(rule, RuleTypeKelly); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *Kelly) Name() string {
	return string(RuleTypeKelly)
}

func (r *Kelly) ComputeBuyQuantity(l ledger.Ledger, req types.SizingRequest) int64 {
	budget := fromFloat(l.CurrentCash()).Mul(r.Percent())

	return floorDiv(budget, fromFloat(req.Risk))
}

// Percent returns the share of cash currently risked per trade.
func (r *Kelly) Percent() decimal.Decimal {
	closed := r.wins + r.losses
	if closed == 0 || closed < r.MinTrades {
		return decimal.NewFromFloat(r.DefaultPercent)
	}

	fraction := decimal.NewFromFloat(r.Fraction)

	if r.wins == 0 {
		return decimal.Zero
	}

	if r.losses == 0 {
		return fraction
	}

	winRate := decimal.NewFromInt(int64(r.wins)).Div(decimal.NewFromInt(int64(closed)))
	averageWin := r.winSum.Div(decimal.NewFromInt(int64(r.wins)))
	averageLoss := r.lossSum.Div(decimal.NewFromInt(int64(r.losses)))
	payoff := averageWin.Div(averageLoss)

	kelly := winRate.Sub(decimal.NewFromInt(1).Sub(winRate).Div(payoff))
	if !kelly.IsPositive() {
		return decimal.Zero
	}

	return kelly.Mul(fraction)
}

// BuyNotify is a no-op, only closed trades change the statistics.
func (r *Kelly) BuyNotify(trade types.TradeRecord) {}

// SellNotify counts a closed trade as a win or a loss. Break-even trades are ignored.
func (r *Kelly) SellNotify(trade types.TradeRecord) {
	pnl := fromFloat(trade.PnL)

	switch {
	case pnl.IsPositive():
		r.wins++
		r.winSum = r.winSum.Add(pnl)
	case pnl.IsNegative():
		r.losses++
		r.lossSum = r.lossSum.Add(pnl.Neg())
	}
}

// Reset forgets all closed trades.
func (r *Kelly) Reset() {
	r.wins = 0
	r.losses = 0
	r.winSum = decimal.Zero
	r.lossSum = decimal.Zero
}

func (r *Kelly) Clone() (moneymanager.Rule, error) {
	clone := *r

	return &clone, nil
}
