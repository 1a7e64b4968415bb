package printtrace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
}

func TestValidateRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero plate width", func(p *Params) { p.PlateWidthMM = 0 }},
		{"negative plate height", func(p *Params) { p.PlateHeightMM = -10 }},
		{"tiny warped size", func(p *Params) { p.WarpedSizePX = 32 }},
		{"even threshold block", func(p *Params) { p.ThresholdBlockSize = 50 }},
		{"threshold block below minimum", func(p *Params) { p.ThresholdBlockSize = 1 }},
		{"negative smoothing epsilon", func(p *Params) { p.SmoothingEpsilonMM = -0.1 }},
		{"negative min object area", func(p *Params) { p.MinObjectAreaMM2 = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, ErrInvalidParameters, perr.Code)
			assert.NotEmpty(t, perr.Message)
		})
	}
}

func TestValidateNilReceiver(t *testing.T) {
	var p *Params
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrInvalidParameters}))
}
