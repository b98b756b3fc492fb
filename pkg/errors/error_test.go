package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInstrumentNotFound, "instrument %s not found", "AAPL")
	suite.NotNil(err)
	suite.Equal(ErrCodeInstrumentNotFound, err.Code)
	suite.Equal("instrument AAPL not found", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLedgerWriteFailed, "failed to record deposit", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeLedgerWriteFailed, err.Code)
	suite.Equal("failed to record deposit", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeConfigReadFailed, cause, "failed to read %s", "sizing.yaml")
	suite.NotNil(err)
	suite.Equal(ErrCodeConfigReadFailed, err.Code)
	suite.Equal("failed to read sizing.yaml", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeLedgerWriteFailed, "failed to record deposit", cause)
	suite.Equal("[202] failed to record deposit: disk full", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLedgerQueryFailed, "query failed", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestUnwrapNil() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	cause := New(ErrCodeInsufficientCash, "not enough cash")
	err := Wrap(ErrCodeLedgerWriteFailed, "buy failed", cause)
	// outermost code wins
	suite.Equal(ErrCodeLedgerWriteFailed, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromStandardError() {
	err := errors.New("standard error")
	suite.Equal(ErrCodeUnknown, GetCode(err))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeUnsupportedRule, "unsupported rule")
	suite.True(HasCode(err, ErrCodeUnsupportedRule))
	suite.False(HasCode(err, ErrCodeRuleConfigError))
}

func (suite *ErrorTestSuite) TestIsAndAs() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRuleCloneFailed, "clone failed", cause)
	suite.True(Is(err, cause))

	var sizingErr *Error
	suite.True(As(err, &sizingErr))
	suite.Equal(ErrCodeRuleCloneFailed, sizingErr.Code)
}

func (suite *ErrorTestSuite) TestIsMatchesByCode() {
	err := Wrapf(ErrCodeLedgerWriteFailed, New(ErrCodeInsufficientCash, "cash"), "buy of %d shares failed", 100)

	suite.True(Is(err, New(ErrCodeLedgerWriteFailed, "")))
	suite.True(Is(err, New(ErrCodeInsufficientCash, "")))
	suite.False(Is(err, New(ErrCodeInvalidDeposit, "")))
	suite.False(Is(err, errors.New("cash")))
}

func (suite *ErrorTestSuite) TestErrorCodeCategory() {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeUnknown, "general"},
		{ErrCodeInvalidRisk, "validation"},
		{ErrCodeInsufficientCash, "ledger"},
		{ErrCodeInstrumentAlreadyExists, "instrument"},
		{ErrCodeRuleCloneFailed, "rule"},
		{ErrCodeSchemaFailed, "config"},
		{ErrorCode(999), "general"},
	}

	for _, tc := range tests {
		suite.Equal(tc.expected, tc.code.Category(), "code %d", tc.code)
	}
}

func (suite *ErrorTestSuite) TestErrorCodeRanges() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeLedgerUnavailable)
	suite.Equal(ErrorCode(300), ErrCodeInstrumentNotFound)
	suite.Equal(ErrorCode(400), ErrCodeUnsupportedRule)
	suite.Equal(ErrorCode(600), ErrCodeConfigReadFailed)
}
