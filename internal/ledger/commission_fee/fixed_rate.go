package commission_fee

import (
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultFixedRate        = 0.0003
	DefaultFixedRateMinimum = 5.0
)

// FixedRateCommissionFee charges a fraction of the traded amount with a floor.
type FixedRateCommissionFee struct {
	Rate    decimal.Decimal
	Minimum decimal.Decimal
}

func NewFixedRateCommissionFee(rate float64, minimum float64) CommissionFee {
	return &FixedRateCommissionFee{
		Rate:    decimal.NewFromFloat(rate),
		Minimum: decimal.NewFromFloat(minimum),
	}
}

func (c *FixedRateCommissionFee) Calculate(side types.TradeSide, amount decimal.Decimal, quantity int64) Fee {
	if quantity <= 0 {
		return noFee()
	}

	return Fee{
		Commission: decimal.Max(amount.Mul(c.Rate), c.Minimum),
		StampTax:   decimal.Zero,
	}
}
