package config

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/ledger/commission_fee"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager"
	"github.com/rxtech-lab/argo-sizing/internal/moneymanager/rules"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/internal/version"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is the YAML description of a money manager and the backtest
// account it sizes against.
type Config struct {
	// Requires is a semver constraint on the tool version, e.g. ">= 0.3".
	Requires string        `yaml:"requires" json:"requires,omitempty" jsonschema:"title=Requires,description=Semver constraint on the sizing tool version"`
	Name     string        `yaml:"name" json:"name" jsonschema:"title=Name,description=Display name of the money manager"`
	Params   ParamsConfig  `yaml:"params" json:"params" jsonschema:"title=Params,description=Money manager options"`
	Rule     rules.Config  `yaml:"rule" json:"rule" jsonschema:"title=Rule,description=The sizing rule"`
	Account  AccountConfig `yaml:"account" json:"account" jsonschema:"title=Account,description=Backtest account used by the resolve command"`
	Query    QueryConfig   `yaml:"query" json:"query" jsonschema:"title=Query,description=Bar range the money manager is set up for"`
}

type ParamsConfig struct {
	AutoFund                bool                 `yaml:"auto_fund" json:"auto_fund" jsonschema:"title=Auto Fund,description=Deposit missing cash instead of shrinking a buy"`
	MaxInstrumentCount      optional.Option[int] `yaml:"max_instrument_count" json:"max_instrument_count" jsonschema:"title=Max Instrument Count,description=Stop buying once this many instruments are held. Defaults to 20000"`
	ForceCleanOnEnvironment bool                 `yaml:"force_clean_on_environment" json:"force_clean_on_environment" jsonschema:"title=Force Clean On Environment,description=Sell the full position when the market environment turns"`
	ForceCleanOnCondition   bool                 `yaml:"force_clean_on_condition" json:"force_clean_on_condition" jsonschema:"title=Force Clean On Condition,description=Sell the full position when the system condition fails"`
}

type AccountConfig struct {
	InitialCash   float64               `yaml:"initial_cash" json:"initial_cash" jsonschema:"title=Initial Cash,description=Opening cash balance,minimum=0" validate:"gte=0"`
	Broker        commission_fee.Broker `yaml:"broker" json:"broker" jsonschema:"title=Broker,description=The broker to use for commission calculations" validate:"omitempty,oneof=interactive_broker zero_commission fixed_rate a_share"`
	CashPrecision int                   `yaml:"cash_precision" json:"cash_precision" jsonschema:"title=Cash Precision,description=Decimal places cash is kept in,minimum=0" validate:"gte=0"`
}

type QueryConfig struct {
	StartTime optional.Option[time.Time] `yaml:"start_time" json:"start_time" jsonschema:"title=Start Time,description=Optional start of the bar range"`
	EndTime   optional.Option[time.Time] `yaml:"end_time" json:"end_time" jsonschema:"title=End Time,description=Optional end of the bar range"`
	Interval  string                     `yaml:"interval" json:"interval" jsonschema:"title=Interval,description=Bar interval such as 1d or 1m"`
}

// UnmarshalYAML implements custom unmarshaling for ParamsConfig
func (p *ParamsConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type params struct {
		AutoFund                bool `yaml:"auto_fund"`
		MaxInstrumentCount      *int `yaml:"max_instrument_count"`
		ForceCleanOnEnvironment bool `yaml:"force_clean_on_environment"`
		ForceCleanOnCondition   bool `yaml:"force_clean_on_condition"`
	}

	var raw params
	if err := unmarshal(&raw); err != nil {
		return err
	}

	p.AutoFund = raw.AutoFund
	p.ForceCleanOnEnvironment = raw.ForceCleanOnEnvironment
	p.ForceCleanOnCondition = raw.ForceCleanOnCondition
	p.MaxInstrumentCount = optional.None[int]()

	if raw.MaxInstrumentCount != nil {
		p.MaxInstrumentCount = optional.Some(*raw.MaxInstrumentCount)
	}

	return nil
}

// UnmarshalYAML implements custom unmarshaling for QueryConfig
func (q *QueryConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type query struct {
		StartTime *time.Time `yaml:"start_time"`
		EndTime   *time.Time `yaml:"end_time"`
		Interval  string     `yaml:"interval"`
	}

	var raw query
	if err := unmarshal(&raw); err != nil {
		return err
	}

	q.Interval = raw.Interval
	q.StartTime = optional.None[time.Time]()
	q.EndTime = optional.None[time.Time]()

	if raw.StartTime != nil {
		q.StartTime = optional.Some(*raw.StartTime)
	}

	if raw.EndTime != nil {
		q.EndTime = optional.Some(*raw.EndTime)
	}

	return nil
}

// ToParams converts the YAML options to money manager params.
func (p ParamsConfig) ToParams() moneymanager.Params {
	params := moneymanager.DefaultParams()
	params.AutoFund = p.AutoFund
	params.ForceCleanOnEnvironment = p.ForceCleanOnEnvironment
	params.ForceCleanOnCondition = p.ForceCleanOnCondition

	if p.MaxInstrumentCount.IsSome() {
		params.MaxInstrumentCount = p.MaxInstrumentCount.Unwrap()
	}

	return params
}

func (q QueryConfig) ToQuery() types.Query {
	return types.Query{
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
		Interval:  q.Interval,
	}
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigReadFailed, err, "failed to read config %s", path)
	}

	return Parse(content)
}

// Parse decodes and validates YAML config content. Missing sections keep
// the EmptyConfig defaults.
func Parse(content []byte) (Config, error) {
	config := EmptyConfig()
	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigParseFailed, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the config without building anything.
func (c Config) Validate() error {
	if err := version.CheckRequirement(version.GetVersion(), c.Requires); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := c.Params.ToParams().Validate(); err != nil {
		return err
	}

	if end, start := c.Query.EndTime, c.Query.StartTime; start.IsSome() && end.IsSome() && end.Unwrap().Before(start.Unwrap()) {
		return errors.New(errors.ErrCodeInvalidConfiguration, "query end_time is before start_time")
	}

	return nil
}

// Build creates the configured money manager. The ledger is left unbound.
func (c Config) Build(log *logger.Logger) (*moneymanager.MoneyManager, error) {
	rule, err := rules.New(c.Rule)
	if err != nil {
		return nil, err
	}

	manager, err := moneymanager.NewMoneyManager(c.Name, rule, log)
	if err != nil {
		return nil, err
	}

	if err := manager.SetParams(c.Params.ToParams()); err != nil {
		return nil, err
	}

	manager.SetQuery(c.Query.ToQuery())

	return manager, nil
}

// NewLedger creates the backtest ledger described by the account section.
func (c Config) NewLedger(log *logger.Logger) (*ledger.BacktestLedger, error) {
	return ledger.NewBacktestLedger(
		log,
		c.Account.InitialCash,
		commission_fee.GetCommissionFeeHandler(c.Account.Broker),
		c.Account.CashPrecision,
	)
}

// GenerateSchema generates a JSON schema for the Config
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch {
			case t.String() == "optional.Option[time.Time]":
				return &jsonschema.Schema{
					Type:   "string",
					Format: "date-time",
				}
			case t.String() == "optional.Option[int]":
				return &jsonschema.Schema{
					Type: "integer",
				}
			case strings.Contains(t.String(), "commission_fee.Broker"):
				return &jsonschema.Schema{
					Type: "string",
					Enum: commission_fee.AllBrokers,
				}
			case strings.Contains(t.String(), "rules.RuleType"):
				return &jsonschema.Schema{
					Type: "string",
					Enum: rules.AllRuleTypes,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)
	if schema == nil {
		return nil, errors.New(errors.ErrCodeSchemaFailed, "failed to reflect config schema")
	}

	schema.Title = "money-manager-config"
	schema.Description = "Configuration schema for a money manager"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSchemaFailed, "failed to encode config schema", err)
	}

	return string(schemaBytes), nil
}

// EmptyConfig returns a Config with default values
func EmptyConfig() Config {
	return Config{
		Requires: "",
		Name:     "",
		Params: ParamsConfig{
			AutoFund:                false,
			MaxInstrumentCount:      optional.None[int](),
			ForceCleanOnEnvironment: false,
			ForceCleanOnCondition:   false,
		},
		Rule: rules.Config{Type: ""},
		Account: AccountConfig{
			InitialCash:   0,
			Broker:        commission_fee.BrokerZero,
			CashPrecision: 2,
		},
		Query: QueryConfig{
			StartTime: optional.None[time.Time](),
			EndTime:   optional.None[time.Time](),
			Interval:  "",
		},
	}
}
