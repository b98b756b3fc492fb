package moneymanager

import (
	"testing"

	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ParamsTestSuite struct {
	suite.Suite
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(ParamsTestSuite))
}

func (suite *ParamsTestSuite) TestDefaults() {
	params := DefaultParams()
	suite.False(params.AutoFund)
	suite.Equal(20000, params.MaxInstrumentCount)
	suite.False(params.ForceCleanOnEnvironment)
	suite.False(params.ForceCleanOnCondition)
	suite.NoError(params.Validate())

	for _, name := range ParamNames() {
		_, err := params.Get(name)
		suite.NoError(err, name)
	}
}

func (suite *ParamsTestSuite) TestSet() {
	tests := []struct {
		name     string
		param    string
		value    any
		want     any
		wantCode errors.ErrorCode
	}{
		{name: "auto fund", param: ParamAutoFund, value: true, want: true},
		{name: "force clean on environment", param: ParamForceCleanOnEnvironment, value: true, want: true},
		{name: "force clean on condition", param: ParamForceCleanOnCondition, value: true, want: true},
		{name: "max instrument count int", param: ParamMaxInstrumentCount, value: 10, want: 10},
		{name: "max instrument count int64", param: ParamMaxInstrumentCount, value: int64(15), want: 15},
		{name: "max instrument count zero", param: ParamMaxInstrumentCount, value: 0, wantCode: errors.ErrCodeInvalidParameter},
		{name: "max instrument count negative", param: ParamMaxInstrumentCount, value: -3, wantCode: errors.ErrCodeInvalidParameter},
		{name: "max instrument count string", param: ParamMaxInstrumentCount, value: "10", wantCode: errors.ErrCodeInvalidType},
		{name: "auto fund int", param: ParamAutoFund, value: 1, wantCode: errors.ErrCodeInvalidType},
		{name: "unknown param", param: "auto_fund", value: true, wantCode: errors.ErrCodeInvalidParameter},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			params := DefaultParams()
			err := params.Set(tc.param, tc.value)

			if tc.wantCode != 0 {
				suite.True(errors.HasCode(err, tc.wantCode), "got %v", err)
				suite.Equal(DefaultParams(), params)

				return
			}

			suite.NoError(err)

			got, err := params.Get(tc.param)
			suite.NoError(err)
			suite.Equal(tc.want, got)
		})
	}
}

func (suite *ParamsTestSuite) TestValidate() {
	params := DefaultParams()
	params.MaxInstrumentCount = 0

	err := params.Validate()
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = params.Get("unknown")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *ParamsTestSuite) TestString() {
	params := DefaultParams()
	params.AutoFund = true

	suite.Equal("auto-fund=true, max-instrument-count=20000, force-clean-on-environment=false, force-clean-on-condition=false", params.String())
}
