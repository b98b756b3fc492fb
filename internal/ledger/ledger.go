package ledger

import (
	"time"

	"github.com/rxtech-lab/argo-sizing/internal/types"
)

// Ledger is the account a money manager sizes trades against.
// Implementations serialize their own cash mutations.
type Ledger interface {
	// CurrentCash returns the cash balance available right now.
	CurrentCash() float64
	// HeldInstrumentCount returns how many distinct instruments are currently held.
	HeldInstrumentCount() int
	// TransactionCost returns the cost of buying quantity shares of instrument at price.
	TransactionCost(timestamp time.Time, instrument types.Instrument, price float64, quantity int64) types.CostRecord
	// CashPrecision returns the number of decimal places cash is kept in.
	CashPrecision() int
	// DepositCash adds amount to the cash balance.
	DepositCash(timestamp time.Time, amount float64) error
}
