package isrutilities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiric(t *testing.T) {
	// analytic limits at multiples of 2*pi
	assert.Equal(t, 1.0, diric(0.0, 8))
	assert.Equal(t, -1.0, diric(2.0*math.Pi, 8), "odd n-1 flips sign every period")
	assert.Equal(t, 1.0, diric(4.0*math.Pi, 8))
	assert.Equal(t, 1.0, diric(2.0*math.Pi, 7), "even n-1 keeps sign")

	// order 1 is identically one
	for _, x := range []float64{0.0, 0.3, 2.0, -5.0} {
		assert.InDelta(t, 1.0, diric(x, 1), 1e-15)
	}

	// generic argument against the defining quotient
	x := 0.5
	want := math.Sin(7.0*x/2.0) / (7.0 * math.Sin(x/2.0))
	assert.InDelta(t, want, diric(x, 7), 1e-14)

	// zero crossing of an even-order kernel
	assert.InDelta(t, 0.0, diric(math.Pi, 2), 1e-14)

	assert.Panics(t, func() { diric(1.0, 0) })
}

func TestJinc(t *testing.T) {
	assert.Equal(t, 0.5, jinc(0.0))

	// even function
	assert.Equal(t, jinc(0.3), jinc(-0.3))

	// first null of the Airy pattern: J1(3.8317...) = 0
	firstNull := 3.8317059702075125 / math.Pi
	assert.InDelta(t, 0.0, jinc(firstNull), 1e-10)

	// continuous through the origin
	assert.InDelta(t, 0.5, jinc(1e-9), 1e-6)
}

func TestAngles2xy(t *testing.T) {
	az := []float64{0.0, 0.0, 90.0, 180.0}
	el := []float64{90.0, 80.0, 80.0, 45.0}
	x, y := angles2xy(az, el)

	// zenith projects onto the origin
	assert.InDelta(t, 0.0, x[0], 1e-12)
	assert.InDelta(t, 0.0, y[0], 1e-12)

	// north at 80 deg elevation lands 10 units up the y axis
	assert.InDelta(t, 0.0, x[1], 1e-12)
	assert.InDelta(t, 10.0, y[1], 1e-12)

	// east lands on the x axis
	assert.InDelta(t, 10.0, x[2], 1e-12)
	assert.InDelta(t, 0.0, y[2], 1e-12)

	// south lands on the negative y axis
	assert.InDelta(t, 0.0, x[3], 1e-12)
	assert.InDelta(t, -45.0, y[3], 1e-12)

	assert.PanicsWithValue(t, ErrShape, func() { angles2xy([]float64{1.0}, []float64{1.0, 2.0}) })
}

func TestRotcoordsIdentity(t *testing.T) {
	az := []float64{0.0, 45.0, 200.0}
	el := []float64{90.0, 30.0, 10.0}
	azout, elout := rotcoords(az, el, 0.0, 0.0)
	for i := range az {
		assert.InDelta(t, az[i], azout[i], 1e-9)
		assert.InDelta(t, el[i], elout[i], 1e-9)
	}
}

func TestRotcoordsRoundTripSingleAxis(t *testing.T) {
	// a pure yaw or a pure pitch is undone by its negation
	az := []float64{10.0, 123.4, 251.0, 340.0}
	el := []float64{15.0, 42.0, 60.0, 85.0}

	for _, off := range []float64{15.0, -26.0, 120.0} {
		az1, el1 := rotcoords(az, el, -off, 0.0)
		az2, el2 := rotcoords(az1, el1, off, 0.0)
		for i := range az {
			assert.InDelta(t, az[i], math.Mod(az2[i], 360.0), 1e-5, "azimuth after yaw round trip, offset %v", off)
			assert.InDelta(t, el[i], el2[i], 1e-5, "elevation after yaw round trip, offset %v", off)
		}

		az1, el1 = rotcoords(az, el, 0.0, -off)
		az2, el2 = rotcoords(az1, el1, 0.0, off)
		for i := range az {
			assert.InDelta(t, az[i], math.Mod(az2[i], 360.0), 1e-5, "azimuth after pitch round trip, offset %v", off)
			assert.InDelta(t, el[i], el2[i], 1e-5, "elevation after pitch round trip, offset %v", off)
		}
	}
}

func TestRotcoordsRoundTripInverse(t *testing.T) {
	// yaw-then-pitch offsets do not commute, so a combined rotation is
	// undone by applying the compensating offsets in reverse order: pitch
	// back first, then yaw back
	az := []float64{10.0, 123.4, 251.0, 340.0}
	el := []float64{15.0, 42.0, 60.0, 85.0}

	for _, off := range [][2]float64{{15.0, 16.0}, {-26.0, 3.0}, {120.0, -10.0}} {
		az1, el1 := rotcoords(az, el, off[0], off[1])
		az2, el2 := rotcoords(az1, el1, 0.0, -off[1])
		az3, el3 := rotcoords(az2, el2, -off[0], 0.0)
		for i := range az {
			assert.InDelta(t, az[i], math.Mod(az3[i], 360.0), 1e-5, "azimuth round trip, offset %v", off)
			assert.InDelta(t, el[i], el3[i], 1e-5, "elevation round trip, offset %v", off)
		}
	}
}

func TestRotcoordsSnapAndWrap(t *testing.T) {
	// a yaw that cancels the azimuth must give exactly zero, not 1e-14 or
	// a wrap to 360-epsilon
	azout, elout := rotcoords([]float64{30.0}, []float64{45.0}, -30.0, 0.0)
	require.Len(t, azout, 1)
	assert.Equal(t, 0.0, azout[0])
	assert.InDelta(t, 45.0, elout[0], 1e-9)

	// results are always inside [0, 360)
	azout, _ = rotcoords([]float64{10.0, 350.0}, []float64{20.0, 20.0}, -30.0, 0.0)
	for _, a := range azout {
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 360.0)
	}

	assert.PanicsWithValue(t, ErrShape, func() { rotcoords([]float64{1.0, 2.0}, []float64{1.0}, 0.0, 0.0) })
}

func TestRotcoordsPointingToZenith(t *testing.T) {
	// the dish-model convention: yaw by -az0 then pitch by el0-90 moves the
	// pointing direction itself onto zenith
	for _, p := range [][2]float64{{0.0, 90.0}, {30.0, 45.0}, {200.0, 70.0}} {
		_, el := rotcoord(p[0], p[1], -p[0], p[1]-90.0)
		assert.InDelta(t, 90.0, el, 1e-5, "pointing (%v, %v)", p[0], p[1])
	}
}
