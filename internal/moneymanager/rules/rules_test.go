package rules

import (
	"math"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/mocks"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RulesTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	ledger *mocks.MockLedger
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (suite *RulesTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ledger = mocks.NewMockLedger(suite.ctrl)
}

func (suite *RulesTestSuite) request(price float64, risk float64) types.SizingRequest {
	return types.SizingRequest{
		Timestamp:  time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC),
		Instrument: types.Instrument{Symbol: "600000", MinTradeQuantity: 100, MaxTradeQuantity: 1000000, ContractMultiplier: 1},
		Price:      price,
		Risk:       risk,
		Origin:     types.OriginSignal,
	}
}

func (suite *RulesTestSuite) TestNew() {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantCode errors.ErrorCode
	}{
		{name: "fixed count", config: Config{Type: RuleTypeFixedCount, Count: 100}, wantName: "fixed_count"},
		{name: "fixed risk", config: Config{Type: RuleTypeFixedRisk, RiskAmount: 1000}, wantName: "fixed_risk"},
		{name: "fixed capital", config: Config{Type: RuleTypeFixedCapital, Capital: 10000}, wantName: "fixed_capital"},
		{name: "fixed percent", config: Config{Type: RuleTypeFixedPercent, Percent: 0.02}, wantName: "fixed_percent"},
		{name: "williams", config: Config{Type: RuleTypeWilliamsFixedRisk, Percent: 0.02, MaxLoss: 4}, wantName: "williams_fixed_risk"},
		{name: "kelly", config: Config{Type: RuleTypeKelly, Fraction: 0.5, MinTrades: 10, DefaultPercent: 0.01}, wantName: "kelly"},
		{name: "unknown type", config: Config{Type: "martingale"}, wantCode: errors.ErrCodeUnsupportedRule},
		{name: "empty type", config: Config{}, wantCode: errors.ErrCodeUnsupportedRule},
		{name: "zero count", config: Config{Type: RuleTypeFixedCount}, wantCode: errors.ErrCodeRuleConfigError},
		{name: "negative risk amount", config: Config{Type: RuleTypeFixedRisk, RiskAmount: -1}, wantCode: errors.ErrCodeRuleConfigError},
		{name: "percent above one", config: Config{Type: RuleTypeFixedPercent, Percent: 1.5}, wantCode: errors.ErrCodeRuleConfigError},
		{name: "williams without max loss", config: Config{Type: RuleTypeWilliamsFixedRisk, Percent: 0.02}, wantCode: errors.ErrCodeRuleConfigError},
		{name: "kelly without fraction", config: Config{Type: RuleTypeKelly}, wantCode: errors.ErrCodeRuleConfigError},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rule, err := New(tc.config)
			if tc.wantCode != 0 {
				suite.Error(err)
				suite.True(errors.HasCode(err, tc.wantCode), "got %v", err)
				suite.Nil(rule)

				return
			}

			suite.NoError(err)
			suite.Equal(tc.wantName, rule.Name())
		})
	}
}

func (suite *RulesTestSuite) TestFixedCount() {
	rule, err := NewFixedCount(300, false)
	suite.Require().NoError(err)

	req := suite.request(10, 1)
	suite.Equal(int64(300), rule.ComputeBuyQuantity(suite.ledger, req))
	suite.True(rule.ComputeSellQuantity(suite.ledger, req).IsFullPosition())
	suite.True(rule.ComputeShortSellQuantity(suite.ledger, req).IsZero())
	suite.True(rule.ComputeCoverShortQuantity(suite.ledger, req).IsZero())

	rule.SellFixed = true
	suite.Equal(types.Exact(300), rule.ComputeSellQuantity(suite.ledger, req))
}

func (suite *RulesTestSuite) TestFixedRisk() {
	rule, err := NewFixedRisk(1000)
	suite.Require().NoError(err)

	suite.Equal(int64(10000), rule.ComputeBuyQuantity(suite.ledger, suite.request(10, 0.1)))
	suite.Equal(int64(333), rule.ComputeBuyQuantity(suite.ledger, suite.request(10, 3)))
	suite.Equal(int64(0), rule.ComputeBuyQuantity(suite.ledger, suite.request(10, 0)))
	suite.Equal(int64(0), rule.ComputeBuyQuantity(suite.ledger, suite.request(10, -1)))
	suite.Equal(int64(math.MaxInt64), rule.ComputeBuyQuantity(suite.ledger, suite.request(10, 1e-300)))
}

func (suite *RulesTestSuite) TestFixedCapital() {
	rule, err := NewFixedCapital(10000)
	suite.Require().NoError(err)

	suite.Equal(int64(4000), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 2.5)))
}

func (suite *RulesTestSuite) TestFixedPercent() {
	rule, err := NewFixedPercent(0.02)
	suite.Require().NoError(err)

	suite.ledger.EXPECT().CurrentCash().Return(100000.0)
	suite.Equal(int64(4000), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 0.5)))
}

func (suite *RulesTestSuite) TestWilliamsFixedRiskIgnoresRequestRisk() {
	rule, err := NewWilliamsFixedRisk(0.02, 4)
	suite.Require().NoError(err)

	suite.ledger.EXPECT().CurrentCash().Return(100000.0).Times(2)
	suite.Equal(int64(500), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 0.5)))
	suite.Equal(int64(500), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 8)))
}

func (suite *RulesTestSuite) TestKellyUsesDefaultUntilEnoughTrades() {
	rule, err := NewKelly(0.5, 4, 0.01)
	suite.Require().NoError(err)

	suite.ledger.EXPECT().CurrentCash().Return(100000.0).AnyTimes()
	suite.Equal(int64(500), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 2)))

	rule.SellNotify(types.TradeRecord{PnL: 300})
	rule.SellNotify(types.TradeRecord{PnL: -100})
	rule.SellNotify(types.TradeRecord{PnL: 0})
	suite.True(rule.Percent().Equal(decimal.NewFromFloat(0.01)))

	rule.SellNotify(types.TradeRecord{PnL: 100})
	rule.SellNotify(types.TradeRecord{PnL: -100})

	// W = 0.5, R = 200 / 100 = 2, K = 0.25, half Kelly
	suite.True(rule.Percent().Equal(decimal.RequireFromString("0.125")), "got %s", rule.Percent())
	suite.Equal(int64(6250), rule.ComputeBuyQuantity(suite.ledger, suite.request(20, 2)))
}

func (suite *RulesTestSuite) TestKellyEdges() {
	rule, err := NewKelly(0.5, 2, 0.01)
	suite.Require().NoError(err)

	rule.SellNotify(types.TradeRecord{PnL: -50})
	rule.SellNotify(types.TradeRecord{PnL: -25})
	suite.True(rule.Percent().IsZero())

	rule.Reset()
	rule.SellNotify(types.TradeRecord{PnL: 50})
	rule.SellNotify(types.TradeRecord{PnL: 25})
	suite.True(rule.Percent().Equal(decimal.NewFromFloat(0.5)))

	// negative edge: W = 0.25, R = 1, K < 0
	rule.Reset()
	rule.SellNotify(types.TradeRecord{PnL: 10})
	rule.SellNotify(types.TradeRecord{PnL: -10})
	rule.SellNotify(types.TradeRecord{PnL: -10})
	rule.SellNotify(types.TradeRecord{PnL: -10})
	suite.True(rule.Percent().IsZero())

	rule.Reset()
	suite.True(rule.Percent().Equal(decimal.NewFromFloat(0.01)))
}

func (suite *RulesTestSuite) TestNonFiniteInputsSizeNothing() {
	fixedRisk, err := NewFixedRisk(1000)
	suite.Require().NoError(err)
	percent, err := NewFixedPercent(0.02)
	suite.Require().NoError(err)
	kelly, err := NewKelly(0.5, 0, 0.01)
	suite.Require().NoError(err)

	suite.Equal(int64(0), fixedRisk.ComputeBuyQuantity(suite.ledger, suite.request(10, math.NaN())))
	suite.Equal(int64(0), fixedRisk.ComputeBuyQuantity(suite.ledger, suite.request(10, math.Inf(1))))

	suite.ledger.EXPECT().CurrentCash().Return(math.NaN()).Times(2)
	suite.Equal(int64(0), percent.ComputeBuyQuantity(suite.ledger, suite.request(10, 1)))
	suite.Equal(int64(0), kelly.ComputeBuyQuantity(suite.ledger, suite.request(10, 1)))

	kelly.SellNotify(types.TradeRecord{PnL: math.NaN()})
	suite.True(kelly.Percent().Equal(decimal.NewFromFloat(0.01)))
}

func (suite *RulesTestSuite) TestCloneReturnsIndependentCopy() {
	configs := []Config{
		{Type: RuleTypeFixedCount, Count: 100},
		{Type: RuleTypeFixedRisk, RiskAmount: 1000},
		{Type: RuleTypeFixedCapital, Capital: 10000},
		{Type: RuleTypeFixedPercent, Percent: 0.02},
		{Type: RuleTypeWilliamsFixedRisk, Percent: 0.02, MaxLoss: 4},
		{Type: RuleTypeKelly, Fraction: 0.5, DefaultPercent: 0.01},
	}

	for _, config := range configs {
		suite.Run(string(config.Type), func() {
			rule, err := New(config)
			suite.Require().NoError(err)

			clone, err := rule.Clone()
			suite.Require().NoError(err)
			suite.NotSame(rule, clone)
			suite.Equal(rule, clone)
		})
	}
}

func (suite *RulesTestSuite) TestKellyCloneHasOwnStatistics() {
	rule, err := NewKelly(1, 0, 0.01)
	suite.Require().NoError(err)

	rule.SellNotify(types.TradeRecord{PnL: 100})

	cloned, err := rule.Clone()
	suite.Require().NoError(err)

	clone := cloned.(*Kelly)
	clone.SellNotify(types.TradeRecord{PnL: -100})

	suite.True(rule.Percent().Equal(decimal.NewFromInt(1)))
	suite.True(clone.Percent().Equal(decimal.Zero))
}

func (suite *RulesTestSuite) TestRulesImplementOptionalInterfaces() {
	var rule moneymanager.Rule = &Kelly{}

	_, notifies := rule.(moneymanager.TradeNotifier)
	_, resets := rule.(moneymanager.Resetter)
	suite.True(notifies)
	suite.True(resets)

	rule = &FixedRisk{}
	_, notifies = rule.(moneymanager.TradeNotifier)
	suite.False(notifies)
}
