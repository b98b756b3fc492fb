package commission_fee

import (
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

var (
	interactiveBrokerPerShare = decimal.RequireFromString("0.005")
	interactiveBrokerMinimum  = decimal.NewFromInt(1)
)

// InteractiveBrokerCommissionFee charges 0.005 per share with a 1.0 minimum
// on both sides.
type InteractiveBrokerCommissionFee struct{}

func NewInteractiveBrokerCommissionFee() CommissionFee {
	return &InteractiveBrokerCommissionFee{}
}

func (c *InteractiveBrokerCommissionFee) Calculate(side types.TradeSide, amount decimal.Decimal, quantity int64) Fee {
	if quantity <= 0 {
		return noFee()
	}

	return Fee{
		Commission: decimal.Max(interactiveBrokerPerShare.Mul(decimal.NewFromInt(quantity)), interactiveBrokerMinimum),
		StampTax:   decimal.Zero,
	}
}
