package types

import "strconv"

// Quantity is the result of a sizing decision.
// It is either an exact share count or the full current holding of an instrument.
// The zero value is an exact quantity of 0, meaning "do not trade".
type Quantity struct {
	value        int64
	fullPosition bool
}

// Exact returns a quantity of n shares. Negative values are treated as 0.
func Exact(n int64) Quantity {
	if n < 0 {
		n = 0
	}

	return Quantity{value: n}
}

// FullPosition returns the quantity that stands for the whole current holding.
// The ledger resolves it to a share count when the trade is executed.
func FullPosition() Quantity {
	return Quantity{fullPosition: true}
}

// IsFullPosition reports whether q stands for the whole current holding.
func (q Quantity) IsFullPosition() bool {
	return q.fullPosition
}

// IsZero reports whether q is an exact quantity of 0.
func (q Quantity) IsZero() bool {
	return !q.fullPosition && q.value == 0
}

// Exact returns the share count and true, or 0 and false for a full position.
func (q Quantity) Exact() (int64, bool) {
	if q.fullPosition {
		return 0, false
	}

	return q.value, true
}

// Value returns the exact share count, 0 for a full position.
func (q Quantity) Value() int64 {
	return q.value
}

func (q Quantity) String() string {
	if q.fullPosition {
		return "FULL_POSITION"
	}

	return strconv.FormatInt(q.value, 10)
}
