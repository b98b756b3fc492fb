package commission_fee

import (
	"testing"

	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CommissionFeeTestSuite struct {
	suite.Suite
}

func TestCommissionFeeSuite(t *testing.T) {
	suite.Run(t, new(CommissionFeeTestSuite))
}

func (suite *CommissionFeeTestSuite) assertFee(fee Fee, commission string, stampTax string) {
	suite.True(fee.Commission.Equal(decimal.RequireFromString(commission)), "commission %s", fee.Commission)
	suite.True(fee.StampTax.Equal(decimal.RequireFromString(stampTax)), "stamp tax %s", fee.StampTax)
}

func (suite *CommissionFeeTestSuite) TestZeroCommissionFee() {
	fee := NewZeroCommissionFee()

	suite.assertFee(fee.Calculate(types.TradeSideBuy, decimal.NewFromInt(100000), 1000), "0", "0")
	suite.assertFee(fee.Calculate(types.TradeSideSell, decimal.NewFromInt(100000), 1000), "0", "0")
}

func (suite *CommissionFeeTestSuite) TestInteractiveBrokerCommissionFee() {
	fee := NewInteractiveBrokerCommissionFee()

	tests := []struct {
		name     string
		quantity int64
		expected string
	}{
		{"no trade", 0, "0"},
		{"minimum applies", 10, "1"},
		{"quantity at threshold", 200, "1"},
		{"per share", 1000, "5"},
		{"large quantity", 10000, "50"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			amount := decimal.NewFromInt(250 * tc.quantity)
			suite.assertFee(fee.Calculate(types.TradeSideBuy, amount, tc.quantity), tc.expected, "0")
			suite.assertFee(fee.Calculate(types.TradeSideSell, amount, tc.quantity), tc.expected, "0")
		})
	}
}

func (suite *CommissionFeeTestSuite) TestFixedRateCommissionFee() {
	fee := NewFixedRateCommissionFee(0.001, 5)

	tests := []struct {
		name     string
		amount   int64
		quantity int64
		expected string
	}{
		{"no trade", 0, 0, "0"},
		{"minimum applies", 1000, 100, "5"},
		{"rate applies", 100000, 1000, "100"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.assertFee(fee.Calculate(types.TradeSideBuy, decimal.NewFromInt(tc.amount), tc.quantity), tc.expected, "0")
		})
	}
}

func (suite *CommissionFeeTestSuite) TestAShareCommissionFee() {
	fee := NewAShareCommissionFee()
	amount := decimal.NewFromInt(100000)

	buy := fee.Calculate(types.TradeSideBuy, amount, 10000)
	suite.assertFee(buy, "30", "0")
	suite.True(buy.Total().Equal(decimal.NewFromInt(30)))

	sell := fee.Calculate(types.TradeSideSell, amount, 10000)
	suite.assertFee(sell, "30", "100")
	suite.True(sell.Total().Equal(decimal.NewFromInt(130)))

	suite.assertFee(fee.Calculate(types.TradeSideSell, decimal.NewFromInt(1000), 100), "5", "1")
	suite.assertFee(fee.Calculate(types.TradeSideSell, decimal.Zero, 0), "0", "0")
}

func (suite *CommissionFeeTestSuite) TestGetCommissionFeeHandler() {
	tests := []struct {
		name     string
		broker   Broker
		expected string
	}{
		{"interactive broker", BrokerInteractiveBroker, "5"},
		{"zero commission", BrokerZero, "0"},
		{"fixed rate", BrokerFixedRate, "30"},
		{"a share", BrokerAShare, "30"},
		{"unknown broker defaults to zero", Broker("unknown"), "0"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			handler := GetCommissionFeeHandler(tc.broker)
			suite.NotNil(handler)
			// 1000 shares at 100: 0.0003 * 100000 = 30
			fee := handler.Calculate(types.TradeSideBuy, decimal.NewFromInt(100000), 1000)
			suite.True(fee.Total().Equal(decimal.RequireFromString(tc.expected)), "got %s", fee.Total())
		})
	}
}

func (suite *CommissionFeeTestSuite) TestAllBrokers() {
	suite.Len(AllBrokers, 4)
	suite.Contains(AllBrokers, BrokerInteractiveBroker)
	suite.Contains(AllBrokers, BrokerZero)
	suite.Contains(AllBrokers, BrokerFixedRate)
	suite.Contains(AllBrokers, BrokerAShare)
}
