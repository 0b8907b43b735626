package isrutilities

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

/*
Theoretical far-field beam patterns for the supported ISR antennas: the
AMISR-style planar phased array (RISR, PFISR) and the circular dishes
(Sondrestrom, the Millstone Hill zenith and MISA antennas). Every model
satisfies the same contract so the sensor registry can hand any of them to
a caller unchanged.
*/

/*
PatternFunc is the common contract of all antenna models.

	Args:
	    az: observation azimuth angles in degrees, [n]
	    el: observation elevation angles in degrees, [n]
	    az0: azimuth pointing angle in degrees.
	    el0: elevation pointing angle in degrees.
	    angleoffset: offset of the array face from north, degrees
	        (ignored by the dish models).

	Returns:
	    Non-negative relative power, [n]. Panics ErrShape when az and el
	    disagree in length.
*/
type PatternFunc func(az, el []float64, az0, el0 float64, angleoffset [2]float64) []float64

// AMISR element spacings in m and carrier frequency in Hz, from the array
// spec; the field calculation follows the report by Adam R. Wichman.
const (
	amisrDx = 0.4343
	amisrDy = 0.4958
	amisrF0 = 440e6
)

/*
Relative beam pattern of an AMISR face in geographic coordinates. Rotates
both the observation directions and the pointing direction by the negated
face offset so the array's local frame becomes canonical, then evaluates
AMISR_Pattern in zenith-referenced radians.
*/
func AMISR_Patternadj(az, el []float64, az0, el0 float64, angleoffset [2]float64) []float64 {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	azs, els := rotcoords(az, el, -angleoffset[0], -angleoffset[1])
	az0s, el0s := rotcoord(az0, el0, -angleoffset[0], -angleoffset[1])

	azr := make([]float64, len(azs))
	elr := make([]float64, len(els))
	for i := range azs {
		azr[i] = azs[i] * d2r
		elr[i] = (90.0 - els[i]) * d2r
	}
	return AMISR_Pattern(azr, elr, az0s*d2r, (90.0-el0s)*d2r)
}

/*
Idealized antenna pattern for the AMISR array in the frame of the array
face. The antenna is taken as a grid of ideal cross dipole elements where
every other column is shifted by half the column spacing; the array factor
is a product of Dirichlet kernels over the two spacing directions with a
two-element interference term for the column offset. The output is raw
relative power, intentionally not normalized to unity at boresight.

	Args:
	    azr: observation azimuths in radians, [n]
	    elr: observation zenith angles in radians (vertical is zero), [n]
	    az0r: pointing azimuth in radians.
	    el0r: pointing zenith angle in radians.

	Returns:
	    Relative radiation density, [n].
*/
func AMISR_Pattern(azr, elr []float64, az0r, el0r float64) []float64 {
	if len(azr) != len(elr) {
		panic(ErrShape)
	}
	lam0 := v_C_0 / amisrF0
	k0 := 2.0 * math.Pi / lam0

	// 8 panels of 8 elements across, 16 panels of 4 elements down
	const mtot = 8 * 8
	const ntot = 16 * 4

	pat := make([]float64, len(azr))
	for i := range azr {
		// element pattern of an ideal cross dipole; back lobes killed where
		// the canonical elevation is negative (zenith angle past pi/2)
		elementpower := 0.5 * (1.0 + math.Cos(elr[i])*math.Cos(elr[i]))
		if elr[i] > math.Pi/2.0 {
			elementpower = 0.0
		}

		// relative phases between elements in the two spacing directions
		phix := k0 * amisrDx * (math.Sin(elr[i])*math.Cos(azr[i]) - math.Sin(el0r)*math.Cos(az0r))
		phiy := k0 * amisrDy * (math.Sin(elr[i])*math.Sin(azr[i]) - math.Sin(el0r)*math.Sin(az0r))

		af := (1.0 + cmplx.Exp(complex(0.0, phiy/2.0+phix))) *
			complex(diric(2.0*phix, mtot/2)*diric(phiy, ntot), 0.0)
		arrayfac := cmplx.Abs(af) * cmplx.Abs(af)
		pat[i] = elementpower * arrayfac
	}
	return pat
}

/*
Pattern for a circular dish antenna, the Airy diffraction pattern of a
uniformly illuminated circular aperture.

	Args:
	    elr: zenith-referenced observation angles in radians (vertical is
	        at zero; values past pi/2 are below the local horizon), [n]
	    r: dish radius in m.
	    lamb: wavelength in m.

	Returns:
	    Radiation density normalized to unity at boresight, [n]. Directions
	    below the horizon are zero.
*/
func Circ_Ant_Pattern(elr []float64, r float64, lamb float64) []float64 {
	d := 2.0 * r / lamb
	pat := make([]float64, len(elr))
	for i, e := range elr {
		if e > math.Pi/2.0 {
			continue
		}
		pat[i] = d * d * math.Abs(jinc(d*math.Sin(e)))
	}
	normfactor := d * d * jinc(0.0)
	floats.Scale(1.0/normfactor, pat)
	return pat
}

/*
Ideal pattern of the Sondrestrom dish (radius 30 m at 1.2 GHz). The
coordinates are rotated so the pointing direction sits at zenith before the
circular-aperture pattern is evaluated.
*/
func Sond_Pattern(az, el []float64, az0, el0 float64, angleoffset [2]float64) []float64 {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	const radius = 30.0
	lamb := v_C_0 / 1.2e9

	_, eladj := rotcoords(az, el, -az0, el0-90.0)
	return Circ_Ant_Pattern(zenith_rad(eladj), radius, lamb)
}

/*
Ideal pattern of the fixed zenith dish at Millstone Hill (radius 33.5 m at
440 MHz). The dish cannot steer, so no rotation is applied and the pointing
arguments are ignored.
*/
func Millstone_Pattern_Z(az, el []float64, az0, el0 float64, angleoffset [2]float64) []float64 {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	const radius = 33.5
	lamb := v_C_0 / 4.4e8

	_, eladj := rotcoords(az, el, 0.0, 0.0)
	return Circ_Ant_Pattern(zenith_rad(eladj), radius, lamb)
}

/*
Ideal pattern of the steerable MISA dish at Millstone Hill (radius 23 m at
440 MHz), rotated so the pointing direction sits at zenith.
*/
func Millstone_Pattern_M(az, el []float64, az0, el0 float64, angleoffset [2]float64) []float64 {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	const radius = 23.0
	lamb := v_C_0 / 4.4e8

	_, eladj := rotcoords(az, el, -az0, el0-90.0)
	return Circ_Ant_Pattern(zenith_rad(eladj), radius, lamb)
}

// zenith_rad converts elevations in degrees to zenith angles in radians.
func zenith_rad(el []float64) []float64 {
	out := make([]float64, len(el))
	for i := range el {
		out[i] = (90.0 - el[i]) * d2r
	}
	return out
}
