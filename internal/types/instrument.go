package types

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator adds a "finite" tag, gt=0 alone accepts +Inf.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()

		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Instrument carries the trading constraints of a tradable symbol.
// The zero value is the null instrument and is never valid.
type Instrument struct {
	Symbol string `yaml:"symbol" json:"symbol" validate:"required"`
	// MinTradeQuantity is the lot size. Every traded quantity is a multiple of it.
	MinTradeQuantity int64 `yaml:"min_trade_quantity" json:"min_trade_quantity" validate:"gt=0"`
	// MaxTradeQuantity is the largest quantity allowed in a single trade.
	MaxTradeQuantity int64 `yaml:"max_trade_quantity" json:"max_trade_quantity" validate:"gtefield=MinTradeQuantity"`
	// ContractMultiplier is the value of one unit of price movement per share (1 for stocks).
	ContractMultiplier float64 `yaml:"contract_multiplier" json:"contract_multiplier" validate:"gt=0,finite"`
}

// Validate checks the instrument against its field rules.
func (i Instrument) Validate() error {
	return validate.Struct(i)
}

// IsValid reports whether the instrument can be traded.
func (i Instrument) IsValid() bool {
	return i.Validate() == nil
}

// IsNull reports whether i is the null instrument.
func (i Instrument) IsNull() bool {
	return i == Instrument{}
}
