package rules

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/shopspring/decimal"
)

// RuleType names a built-in sizing rule.
type RuleType string

const (
	RuleTypeFixedCount        RuleType = "fixed_count"
	RuleTypeFixedRisk         RuleType = "fixed_risk"
	RuleTypeFixedCapital      RuleType = "fixed_capital"
	RuleTypeFixedPercent      RuleType = "fixed_percent"
	RuleTypeWilliamsFixedRisk RuleType = "williams_fixed_risk"
	RuleTypeKelly             RuleType = "kelly"
)

// AllRuleTypes is used for the json schema enum.
var AllRuleTypes = []any{
	RuleTypeFixedCount,
	RuleTypeFixedRisk,
	RuleTypeFixedCapital,
	RuleTypeFixedPercent,
	RuleTypeWilliamsFixedRisk,
	RuleTypeKelly,
}

var validate = validator.New()

// Config selects a rule and carries its parameters. Only the fields of the
// selected type are read.
type Config struct {
	Type RuleType `yaml:"type" json:"type" jsonschema:"title=Rule Type,description=The sizing rule to use" validate:"required"`
	// fixed_count
	Count     int64 `yaml:"count,omitempty" json:"count,omitempty" jsonschema:"title=Count,description=Shares per buy for fixed_count"`
	SellFixed bool  `yaml:"sell_fixed,omitempty" json:"sell_fixed,omitempty" jsonschema:"title=Sell Fixed,description=Sell count shares instead of the full position"`
	// fixed_risk
	RiskAmount float64 `yaml:"risk_amount,omitempty" json:"risk_amount,omitempty" jsonschema:"title=Risk Amount,description=Money risked per trade for fixed_risk"`
	// fixed_capital
	Capital float64 `yaml:"capital,omitempty" json:"capital,omitempty" jsonschema:"title=Capital,description=Capital per unit of risk for fixed_capital"`
	// fixed_percent, williams_fixed_risk
	Percent float64 `yaml:"percent,omitempty" json:"percent,omitempty" jsonschema:"title=Percent,description=Fraction of cash risked per trade between 0 and 1"`
	MaxLoss float64 `yaml:"max_loss,omitempty" json:"max_loss,omitempty" jsonschema:"title=Max Loss,description=Largest expected loss per share for williams_fixed_risk"`
	// kelly
	Fraction       float64 `yaml:"fraction,omitempty" json:"fraction,omitempty" jsonschema:"title=Fraction,description=Share of the Kelly percentage to use"`
	MinTrades      int     `yaml:"min_trades,omitempty" json:"min_trades,omitempty" jsonschema:"title=Min Trades,description=Closed trades needed before the Kelly percentage is used"`
	DefaultPercent float64 `yaml:"default_percent,omitempty" json:"default_percent,omitempty" jsonschema:"title=Default Percent,description=Cash fraction risked before enough trades are closed"`
}

// New builds the rule described by config.
func New(config Config) (moneymanager.Rule, error) {
	switch config.Type {
	case RuleTypeFixedCount:
		return build(NewFixedCount(config.Count, config.SellFixed))
	case RuleTypeFixedRisk:
		return build(NewFixedRisk(config.RiskAmount))
	case RuleTypeFixedCapital:
		return build(NewFixedCapital(config.Capital))
	case RuleTypeFixedPercent:
		return build(NewFixedPercent(config.Percent))
	case RuleTypeWilliamsFixedRisk:
		return build(NewWilliamsFixedRisk(config.Percent, config.MaxLoss))
	case RuleTypeKelly:
		return build(NewKelly(config.Fraction, config.MinTrades, config.DefaultPercent))
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedRule, "unsupported rule type %q", config.Type)
	}
}

func build[T moneymanager.Rule](rule T, err error) (moneymanager.Rule, error) {
	if err != nil {
		return nil, err
	}

	return rule, nil
}

func validateRule(rule any, ruleType RuleType) error {
	if err := validate.Struct(rule); err != nil {
		return errors.Wrapf(errors.ErrCodeRuleConfigError, err, "invalid %s rule", ruleType)
	}

	return nil
}

var maxQuantity = decimal.NewFromInt(math.MaxInt64)

// fromFloat converts v to a decimal, NaN and infinities become zero.
func fromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(v)
}

// floorDiv returns floor(numerator / denominator) as a share count. It is 0
// unless both operands are positive.
func floorDiv(numerator, denominator decimal.Decimal) int64 {
	if !numerator.IsPositive() || !denominator.IsPositive() {
		return 0
	}

	quantity := numerator.Div(denominator).Floor()
	if quantity.GreaterThan(maxQuantity) {
		return math.MaxInt64
	}

	return quantity.IntPart()
}
