package commission_fee

import (
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
)

// Fee is what a broker charges for one trade on top of the traded amount.
type Fee struct {
	Commission decimal.Decimal
	// StampTax is the exchange tax, charged on sells only by the brokers that have one.
	StampTax decimal.Decimal
}

func (f Fee) Total() decimal.Decimal {
	return f.Commission.Add(f.StampTax)
}

// CommissionFee prices a trade. amount is price * quantity * contract multiplier.
type CommissionFee interface {
	Calculate(side types.TradeSide, amount decimal.Decimal, quantity int64) Fee
}

type Broker string

const (
	BrokerInteractiveBroker Broker = "interactive_broker"
	BrokerZero              Broker = "zero_commission"
	BrokerFixedRate         Broker = "fixed_rate"
	BrokerAShare            Broker = "a_share"
)

var AllBrokers = []any{
	BrokerInteractiveBroker,
	BrokerZero,
	BrokerFixedRate,
	BrokerAShare,
}

// GetCommissionFeeHandler returns the fee model of broker. Unknown brokers are free.
func GetCommissionFeeHandler(broker Broker) CommissionFee {
	switch broker {
	case BrokerInteractiveBroker:
		return NewInteractiveBrokerCommissionFee()
	case BrokerFixedRate:
		return NewFixedRateCommissionFee(DefaultFixedRate, DefaultFixedRateMinimum)
	case BrokerAShare:
		return NewAShareCommissionFee()
	default:
		return NewZeroCommissionFee()
	}
}

func noFee() Fee {
	return Fee{Commission: decimal.Zero, StampTax: decimal.Zero}
}
