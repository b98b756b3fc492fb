package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidInstrument    ErrorCode = 102
	ErrCodeInvalidPrice         ErrorCode = 103
	ErrCodeInvalidRisk          ErrorCode = 104
	ErrCodeInvalidQuantity      ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106
	ErrCodeInvalidType          ErrorCode = 107

	// Ledger errors (200-299)
	ErrCodeLedgerUnavailable   ErrorCode = 200
	ErrCodeLedgerQueryFailed   ErrorCode = 201
	ErrCodeLedgerWriteFailed   ErrorCode = 202
	ErrCodeInsufficientCash    ErrorCode = 203
	ErrCodeInsufficientHolding ErrorCode = 204
	ErrCodeInvalidDeposit      ErrorCode = 205

	// Instrument errors (300-399)
	ErrCodeInstrumentNotFound      ErrorCode = 300
	ErrCodeInstrumentAlreadyExists ErrorCode = 301

	// Rule errors (400-499)
	ErrCodeUnsupportedRule ErrorCode = 400
	ErrCodeRuleConfigError ErrorCode = 401
	ErrCodeRuleCloneFailed ErrorCode = 402

	// Config errors (600-699)
	ErrCodeConfigReadFailed  ErrorCode = 600
	ErrCodeConfigParseFailed ErrorCode = 601
	ErrCodeSchemaFailed      ErrorCode = 602
)

// Category names the range a code belongs to.
func (c ErrorCode) Category() string {
	switch {
	case c >= 100 && c < 200:
		return "validation"
	case c >= 200 && c < 300:
		return "ledger"
	case c >= 300 && c < 400:
		return "instrument"
	case c >= 400 && c < 500:
		return "rule"
	case c >= 600 && c < 700:
		return "config"
	default:
		return "general"
	}
}
