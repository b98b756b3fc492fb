package moneymanager

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
)

const (
	ParamAutoFund                = "auto-fund"
	ParamMaxInstrumentCount      = "max-instrument-count"
	ParamForceCleanOnEnvironment = "force-clean-on-environment"
	ParamForceCleanOnCondition   = "force-clean-on-condition"
)

const DefaultMaxInstrumentCount = 20000

var validate = validator.New()

// Params is the option set of a MoneyManager.
type Params struct {
	// AutoFund deposits missing cash instead of shrinking a buy.
	AutoFund bool `yaml:"auto_fund" json:"auto_fund"`
	// MaxInstrumentCount stops buying once this many instruments are held.
	MaxInstrumentCount int `yaml:"max_instrument_count" json:"max_instrument_count" validate:"gt=0"`
	// ForceCleanOnEnvironment sells the full position for environment-raised sells.
	ForceCleanOnEnvironment bool `yaml:"force_clean_on_environment" json:"force_clean_on_environment"`
	// ForceCleanOnCondition sells the full position for condition-raised sells.
	ForceCleanOnCondition bool `yaml:"force_clean_on_condition" json:"force_clean_on_condition"`
}

// DefaultParams returns the option defaults.
func DefaultParams() Params {
	return Params{
		AutoFund:                false,
		MaxInstrumentCount:      DefaultMaxInstrumentCount,
		ForceCleanOnEnvironment: false,
		ForceCleanOnCondition:   false,
	}
}

// ParamNames lists the recognized option names.
func ParamNames() []string {
	return []string{
		ParamAutoFund,
		ParamMaxInstrumentCount,
		ParamForceCleanOnEnvironment,
		ParamForceCleanOnCondition,
	}
}

// Validate checks the option values.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid money manager params", err)
	}

	return nil
}

// Get returns the value of the named option.
func (p Params) Get(name string) (any, error) {
	switch name {
	case ParamAutoFund:
		return p.AutoFund, nil
	case ParamMaxInstrumentCount:
		return p.MaxInstrumentCount, nil
	case ParamForceCleanOnEnvironment:
		return p.ForceCleanOnEnvironment, nil
	case ParamForceCleanOnCondition:
		return p.ForceCleanOnCondition, nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unknown param %q", name)
	}
}

// Set changes the named option. The value must have the option's type.
func (p *Params) Set(name string, value any) error {
	switch name {
	case ParamAutoFund:
		return setBool(&p.AutoFund, name, value)
	case ParamForceCleanOnEnvironment:
		return setBool(&p.ForceCleanOnEnvironment, name, value)
	case ParamForceCleanOnCondition:
		return setBool(&p.ForceCleanOnCondition, name, value)
	case ParamMaxInstrumentCount:
		var n int

		switch v := value.(type) {
		case int:
			n = v
		case int32:
			n = int(v)
		case int64:
			n = int(v)
		default:
			return errors.Newf(errors.ErrCodeInvalidType, "param %q expects an int, got %T", name, value)
		}

		if n <= 0 {
			return errors.Newf(errors.ErrCodeInvalidParameter, "param %q must be positive, got %d", name, n)
		}

		p.MaxInstrumentCount = n

		return nil
	default:
		return errors.Newf(errors.ErrCodeInvalidParameter, "unknown param %q", name)
	}
}

func setBool(target *bool, name string, value any) error {
	v, ok := value.(bool)
	if !ok {
		return errors.Newf(errors.ErrCodeInvalidType, "param %q expects a bool, got %T", name, value)
	}

	*target = v

	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%s=%t, %s=%d, %s=%t, %s=%t",
		ParamAutoFund, p.AutoFund,
		ParamMaxInstrumentCount, p.MaxInstrumentCount,
		ParamForceCleanOnEnvironment, p.ForceCleanOnEnvironment,
		ParamForceCleanOnCondition, p.ForceCleanOnCondition,
	)
}
