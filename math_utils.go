package isrutilities

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Math helpers carried over from the Python mathutils module: the Dirichlet
kernel, the jinc kernel, the planar projection used by the calibration grid
and the spherical rotation used to move between the geographic frame and an
array-face frame.
*/

// snap tolerance for azimuths that should be exactly zero after rotation
const azSnapEps = 15.0 * 2.220446049250313e-16

/*
Dirichlet kernel (periodic sinc). Gives the array factor of a uniformly
spaced linear array of n elements.

	Args:
	    x: phase argument in radians.
	    n: kernel order (number of elements), n >= 1.

	Returns:
	    sin(n*x/2) / (n*sin(x/2)), with the analytic limit (-1)^(k*(n-1))
	    substituted at x = 2*pi*k where the quotient is 0/0.
*/
func diric(x float64, n int) float64 {
	if n < 1 {
		panic("diric: order must be a positive integer")
	}
	if r := math.Remainder(x, 2.0*math.Pi); math.Abs(r) < 1e-9 {
		k := math.Round(x / (2.0 * math.Pi))
		if math.Mod(math.Abs(k*float64(n-1)), 2.0) != 0.0 {
			return -1.0
		}
		return 1.0
	}
	return math.Sin(float64(n)*x/2.0) / (float64(n) * math.Sin(x/2.0))
}

/*
Jinc kernel, the circular-aperture analogue of the sinc function.

	Args:
	    t: argument.

	Returns:
	    J1(pi*t)/(pi*t), with the analytic limit 0.5 at t = 0.
*/
func jinc(t float64) float64 {
	if t == 0.0 {
		return 0.5
	}
	return math.J1(math.Pi*t) / (math.Pi * t)
}

/*
Projects az/el pairs onto the 2-D plane the calibration grids were built in:
a polar plot with zenith at the origin and radius equal to the zenith angle.
Both the calibration samples and any query points must go through this one
function, otherwise nearest-neighbor lookup silently loses meaning.

	Args:
	    az: azimuth angles in degrees, [n]
	    el: elevation angles in degrees, [n]

	Returns:
	    (x, y) plane coordinates, [n] each.
*/
func angles2xy(az []float64, el []float64) ([]float64, []float64) {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	x := make([]float64, len(az))
	y := make([]float64, len(az))
	for i := range az {
		zen := 90.0 - el[i]
		x[i] = zen * math.Sin(az[i]*d2r)
		y[i] = zen * math.Cos(az[i]*d2r)
	}
	return x, y
}

/*
Builds the rotation matrix for an (azimuth, elevation) offset pair: yaw
about the zenith axis first, then pitch. The two axis rotations do not
commute, so the inverse of an offset pair is not the negated pair: a
rotation by (a, b) is undone by pitching back with (0, -b) and then yawing
back with (-a, 0). Single-axis offsets invert by plain negation, and the
(-az0, el0-90) pair used by the dish models moves the pointing direction
(az0, el0) exactly onto zenith.

	Args:
	    az_0: azimuth offset in degrees.
	    el_0: elevation offset in degrees.

	Returns:
	    3x3 rotation matrix R = R_el(el_0) * R_az(az_0).
*/
func rotmatrix(az_0 float64, el_0 float64) *mat.Dense {
	a := az_0 * d2r
	e := el_0 * d2r
	r_az := mat.NewDense(3, 3, []float64{
		math.Cos(a), -math.Sin(a), 0.0,
		math.Sin(a), math.Cos(a), 0.0,
		0.0, 0.0, 1.0,
	})
	r_el := mat.NewDense(3, 3, []float64{
		math.Cos(e), 0.0, math.Sin(e),
		0.0, 1.0, 0.0,
		-math.Sin(e), 0.0, math.Cos(e),
	})
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(r_el, r_az)
	return rot
}

/*
Rotates spherical directions by an angular offset pair, e.g. to move
between geographic coordinates and the local frame of a tilted array face.

Azimuths that land within a few machine epsilons of zero are snapped to
exactly zero before wrapping into [0, 360), so that downstream trig never
sees a spurious -0 or 360-epsilon value.

	Args:
	    az: azimuth angles in degrees, [n]
	    el: elevation angles in degrees, [n]
	    azoff: azimuth offset in degrees.
	    eloff: elevation offset in degrees.

	Returns:
	    Rotated (azimuth, elevation) in degrees, az in [0, 360),
	    el in [-90, 90], [n] each.
*/
func rotcoords(az []float64, el []float64, azoff float64, eloff float64) ([]float64, []float64) {
	if len(az) != len(el) {
		panic(ErrShape)
	}
	rot := rotmatrix(azoff, eloff)

	azout := make([]float64, len(az))
	elout := make([]float64, len(az))
	u := mat.NewVecDense(3, nil)
	v := mat.NewVecDense(3, nil)
	for i := range az {
		a := az[i] * d2r
		e := el[i] * d2r
		u.SetVec(0, math.Cos(e)*math.Cos(a))
		u.SetVec(1, math.Cos(e)*math.Sin(a))
		u.SetVec(2, math.Sin(e))
		v.MulVec(rot, u)

		aznew := math.Atan2(v.AtVec(1), v.AtVec(0)) * r2d
		if math.Abs(aznew) < azSnapEps*math.Max(1.0, math.Abs(az[i])) {
			aznew = 0.0
		}
		aznew = math.Mod(aznew, 360.0)
		if aznew < 0.0 {
			aznew += 360.0
		}
		azout[i] = aznew

		z := v.AtVec(2)
		if z > 1.0 {
			z = 1.0
		} else if z < -1.0 {
			z = -1.0
		}
		elout[i] = math.Asin(z) * r2d
	}
	return azout, elout
}

/*
Scalar convenience wrapper around rotcoords for a single direction, used for
pointing directions.
*/
func rotcoord(az float64, el float64, azoff float64, eloff float64) (float64, float64) {
	azs, els := rotcoords([]float64{az}, []float64{el}, azoff, eloff)
	return azs[0], els[0]
}
