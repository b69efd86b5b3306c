package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	// Zero rate: NPV is the plain sum.
	assert.InDelta(t, 30, NPV([]float64{-70, 40, 60}, 0), 1e-9)

	// -100 + 50/1.1 + 60/1.21 = -100 + 45.4545... + 49.5867...
	assert.InDelta(t, -4.9586776, NPV([]float64{-100, 50, 60}, 0.10), 1e-6)
}

func TestPayback(t *testing.T) {
	y := Payback([]float64{-100, 60, 60})
	require.NotNil(t, y)
	assert.Equal(t, 2, *y)

	// A zero-investment series pays back immediately.
	y = Payback([]float64{0, 10})
	require.NotNil(t, y)
	assert.Equal(t, 0, *y)

	assert.Nil(t, Payback([]float64{-100, 10, 10}))
}

func TestDiscount(t *testing.T) {
	assert.InDelta(t, 100, Discount(100, 0.06, 0), 1e-9)
	assert.InDelta(t, 100/1.06, Discount(100, 0.06, 1), 1e-9)
	assert.InDelta(t, 100/(1.06*1.06), Discount(100, 0.06, 2), 1e-9)
}

func TestAnnuityFactor(t *testing.T) {
	assert.Zero(t, AnnuityFactor(0.06, 0))
	assert.InDelta(t, 0.05, AnnuityFactor(0, 20), 1e-9)
	assert.InDelta(t, 0.0871846, AnnuityFactor(0.06, 20), 1e-6)
}
