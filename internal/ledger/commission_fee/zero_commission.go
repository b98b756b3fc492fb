package commission_fee

import (
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

// ZeroCommissionFee never charges anything.
type ZeroCommissionFee struct{}

func NewZeroCommissionFee() CommissionFee {
	return &ZeroCommissionFee{}
}

func (c *ZeroCommissionFee) Calculate(side types.TradeSide, amount decimal.Decimal, quantity int64) Fee {
	return noFee()
}
