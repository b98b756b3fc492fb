package commission_fee

import (
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultAShareCommissionRate = 0.0003
	DefaultAShareMinimum        = 5.0
	DefaultAShareStampTaxRate   = 0.001
)

// AShareCommissionFee is the usual mainland China stock fee: a commission
// with a floor on both sides plus a stamp tax on sells.
type AShareCommissionFee struct {
	commission   *FixedRateCommissionFee
	stampTaxRate decimal.Decimal
}

func NewAShareCommissionFee() CommissionFee {
	return &AShareCommissionFee{
		commission: &FixedRateCommissionFee{
			Rate:    decimal.NewFromFloat(DefaultAShareCommissionRate),
			Minimum: decimal.NewFromFloat(DefaultAShareMinimum),
		},
		stampTaxRate: decimal.NewFromFloat(DefaultAShareStampTaxRate),
	}
}

func (c *AShareCommissionFee) Calculate(side types.TradeSide, amount decimal.Decimal, quantity int64) Fee {
	fee := c.commission.Calculate(side, amount, quantity)
	if side == types.TradeSideSell && quantity > 0 {
		fee.StampTax = amount.Mul(c.stampTaxRate)
	}

	return fee
}
