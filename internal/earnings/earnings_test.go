package earnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Basic(t *testing.T) {
	// 720 min = 12.0h; 12.0*1.5 = 18.00; 18.00*2.0 = 36.00
	d := Compute(720, 1.5, 2.0)
	assert.InDelta(t, 12.0, d.Hours, 1e-9)
	assert.InDelta(t, 18.00, d.AmountX, 1e-9)
	assert.InDelta(t, 36.00, d.AmountY, 1e-9)
}

func TestCompute_ChainsOffRoundedX(t *testing.T) {
	// 50 min = 0.8333...h; *1.5 = 1.25 exactly after rounding.
	// Y must be computed from the rounded 1.25, not from 0.8333*1.5*3.0.
	d := Compute(50, 1.5, 3.0)
	assert.InDelta(t, 1.25, d.AmountX, 1e-9)
	assert.InDelta(t, 3.75, d.AmountY, 1e-9)

	// 100 min = 1.6666...h; *1.5 = 2.5; rounding X to 2.5 then *3.64 = 9.10.
	d = Compute(100, 1.5, 3.64)
	assert.InDelta(t, 2.5, d.AmountX, 1e-9)
	assert.InDelta(t, 9.10, d.AmountY, 1e-9)
}

func TestCompute_ZeroDuration(t *testing.T) {
	d := Compute(0, 1.5, 3.64)
	assert.Zero(t, d.Hours)
	assert.Zero(t, d.AmountX)
	assert.Zero(t, d.AmountY)
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.125, 0.13}, // exact half rounds up
		{18.375, 18.38},
		{1.004, 1.0},
		{18.0, 18.0},
		{0.994, 0.99},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Round2(tc.in), 1e-9, "input %v", tc.in)
	}
}
