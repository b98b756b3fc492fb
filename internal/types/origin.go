package types

import (
	"strings"

	"github.com/rxtech-lab/argo-sizing/pkg/errors"
)

// Origin tells which part of the trading system asked for a position size.
type Origin string

const (
	// OriginEnvironment is a request raised by the market environment check.
	OriginEnvironment Origin = "ENVIRONMENT"
	// OriginCondition is a request raised by the system condition check.
	OriginCondition Origin = "CONDITION"
	// OriginSignal is a request raised by a trading signal.
	OriginSignal Origin = "SIGNAL"
	// OriginStopLoss is a request raised by a stop loss.
	OriginStopLoss Origin = "STOP_LOSS"
	// OriginOther is anything else.
	OriginOther Origin = "OTHER"
)

var AllOrigins = []any{
	OriginEnvironment,
	OriginCondition,
	OriginSignal,
	OriginStopLoss,
	OriginOther,
}

// ParseOrigin converts a case-insensitive name into an Origin.
func ParseOrigin(value string) (Origin, error) {
	origin := Origin(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range AllOrigins {
		if origin == known {
			return origin, nil
		}
	}

	return "", errors.Newf(errors.ErrCodeInvalidParameter, "unknown origin %q", value)
}
