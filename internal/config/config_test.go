package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-sizing/internal/ledger/commission_fee"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager/rules"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

const fullConfig = `
requires: ">= 0.1"
name: MM_FixedRisk
params:
  auto_fund: true
  max_instrument_count: 10
  force_clean_on_environment: true
rule:
  type: fixed_risk
  risk_amount: 1000
account:
  initial_cash: 100000
  broker: fixed_rate
  cash_precision: 2
query:
  start_time: 2024-01-01T00:00:00Z
  end_time: 2024-06-30T00:00:00Z
  interval: 1d
`

func (suite *ConfigTestSuite) TestParse() {
	config, err := Parse([]byte(fullConfig))
	suite.Require().NoError(err)

	suite.Equal("MM_FixedRisk", config.Name)
	suite.Equal(rules.RuleTypeFixedRisk, config.Rule.Type)
	suite.Equal(1000.0, config.Rule.RiskAmount)
	suite.Equal(commission_fee.BrokerFixedRate, config.Account.Broker)
	suite.Equal(100000.0, config.Account.InitialCash)
	suite.Equal("1d", config.Query.Interval)
	suite.True(config.Query.StartTime.IsSome())
	suite.True(config.Query.StartTime.Unwrap().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	params := config.Params.ToParams()
	suite.True(params.AutoFund)
	suite.Equal(10, params.MaxInstrumentCount)
	suite.True(params.ForceCleanOnEnvironment)
	suite.False(params.ForceCleanOnCondition)
}

func (suite *ConfigTestSuite) TestParseDefaults() {
	config, err := Parse([]byte("rule:\n  type: fixed_count\n  count: 100\n"))
	suite.Require().NoError(err)

	suite.Equal(moneymanager.DefaultParams(), config.Params.ToParams())
	suite.Equal(commission_fee.BrokerZero, config.Account.Broker)
	suite.Equal(2, config.Account.CashPrecision)
	suite.True(config.Query.StartTime.IsNone())
	suite.True(config.Query.EndTime.IsNone())
}

func (suite *ConfigTestSuite) TestParseErrors() {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
	}{
		{name: "malformed yaml", content: "rule: [", wantCode: errors.ErrCodeConfigParseFailed},
		{name: "missing rule", content: "name: x\n", wantCode: errors.ErrCodeInvalidConfiguration},
		{name: "zero max instrument count", content: "rule:\n  type: fixed_count\n  count: 1\nparams:\n  max_instrument_count: 0\n", wantCode: errors.ErrCodeInvalidParameter},
		{name: "negative cash", content: "rule:\n  type: fixed_count\n  count: 1\naccount:\n  initial_cash: -5\n", wantCode: errors.ErrCodeInvalidConfiguration},
		{name: "misspelled broker", content: "rule:\n  type: fixed_count\n  count: 1\naccount:\n  broker: a_shares\n", wantCode: errors.ErrCodeInvalidConfiguration},
		{name: "tool version too old", content: "requires: \">= 99.0\"\nrule:\n  type: fixed_count\n  count: 1\n", wantCode: errors.ErrCodeInvalidConfiguration},
		{name: "end before start", content: "rule:\n  type: fixed_count\n  count: 1\nquery:\n  start_time: 2024-02-01T00:00:00Z\n  end_time: 2024-01-01T00:00:00Z\n", wantCode: errors.ErrCodeInvalidConfiguration},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := Parse([]byte(tc.content))
			suite.True(errors.HasCode(err, tc.wantCode), "got %v", err)
		})
	}
}

func (suite *ConfigTestSuite) TestLoad() {
	path := filepath.Join(suite.T().TempDir(), "sizing.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(fullConfig), 0o600))

	config, err := Load(path)
	suite.Require().NoError(err)
	suite.Equal("MM_FixedRisk", config.Name)

	_, err = Load(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.True(errors.HasCode(err, errors.ErrCodeConfigReadFailed))
}

func (suite *ConfigTestSuite) TestBuild() {
	config, err := Parse([]byte(fullConfig))
	suite.Require().NoError(err)

	manager, err := config.Build(logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.Equal("MM_FixedRisk", manager.Name())
	suite.Equal("fixed_risk", manager.Rule().Name())
	suite.Equal(config.Params.ToParams(), manager.Params())
	suite.Equal("1d", manager.Query().Interval)
	suite.Nil(manager.Ledger())

	ledger, err := config.NewLedger(logger.NewNopLogger())
	suite.Require().NoError(err)
	defer ledger.Close()

	suite.Equal(100000.0, ledger.CurrentCash())
	suite.Equal(2, ledger.CashPrecision())
}

func (suite *ConfigTestSuite) TestBuildUnsupportedRule() {
	config := EmptyConfig()
	config.Rule.Type = "martingale"

	_, err := config.Build(nil)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedRule))
}

func (suite *ConfigTestSuite) TestGenerateSchemaJSON() {
	config := EmptyConfig()

	schema, err := config.GenerateSchemaJSON()
	suite.Require().NoError(err)
	suite.Contains(schema, `"title": "money-manager-config"`)
	suite.Contains(schema, `"max_instrument_count"`)
	suite.Contains(schema, `"williams_fixed_risk"`)
	suite.Contains(schema, `"interactive_broker"`)
	suite.Contains(schema, `"date-time"`)
}
