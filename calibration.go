package isrutilities

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

/*
Nearest-neighbor lookup of the per-beam system constant Ksys over the
projected calibration plane. The calibration grids ship as (az, el, ksys)
samples; both the samples and the query directions are projected with
angles2xy and the query picks up the Ksys of the closest sample in the
plane. No extrapolation weighting is applied.
*/

// calib_sample is a calibration grid point in the projected plane with its
// system constant carried as payload.
type calib_sample struct {
	x, y float64
	ksys float64
}

func (p calib_sample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(calib_sample)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("illegal dimension")
	}
}

func (p calib_sample) Dims() int { return 2 }

func (p calib_sample) Distance(c kdtree.Comparable) float64 {
	q := c.(calib_sample)
	dx := q.x - p.x
	dy := q.y - p.y
	return dx*dx + dy*dy
}

type calib_samples []calib_sample

func (p calib_samples) Index(i int) kdtree.Comparable { return p[i] }
func (p calib_samples) Len() int                      { return len(p) }
func (p calib_samples) Pivot(d kdtree.Dim) int {
	return calib_plane{calib_samples: p, Dim: d}.Pivot()
}
func (p calib_samples) Slice(start, end int) kdtree.Interface { return p[start:end] }

// calib_plane implements kdtree.SortSlicer over a single dimension.
type calib_plane struct {
	calib_samples
	kdtree.Dim
}

func (p calib_plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.calib_samples[i].x < p.calib_samples[j].x
	case 1:
		return p.calib_samples[i].y < p.calib_samples[j].y
	default:
		panic("illegal dimension")
	}
}
func (p calib_plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p calib_plane) Slice(start, end int) kdtree.SortSlicer {
	p.calib_samples = p.calib_samples[start:end]
	return p
}
func (p calib_plane) Swap(i, j int) {
	p.calib_samples[i], p.calib_samples[j] = p.calib_samples[j], p.calib_samples[i]
}

/*
Returns the system constant for each query direction by nearest-neighbor
interpolation over the projected calibration grid.

	Args:
	    calib_az: calibration azimuths in degrees, [m]
	    calib_el: calibration elevations in degrees, [m]
	    calib_ksys: calibration system constants, [m]
	    query_az: query azimuths in degrees, [n]
	    query_el: query elevations in degrees, [n]

	Returns:
	    Per-query system constant, [n]; nil when no query angles are
	    supplied. Panics ErrEmptyCalibration when the calibration table is
	    empty and ErrShape when parallel inputs disagree in length.
*/
func system_constant(calib_az, calib_el, calib_ksys, query_az, query_el []float64) []float64 {
	if len(calib_az) != len(calib_el) || len(calib_az) != len(calib_ksys) ||
		len(query_az) != len(query_el) {
		panic(ErrShape)
	}
	if len(query_az) == 0 {
		return nil
	}
	if len(calib_az) == 0 {
		panic(ErrEmptyCalibration)
	}

	xin, yin := angles2xy(calib_az, calib_el)
	samples := make(calib_samples, len(calib_az))
	for i := range samples {
		samples[i] = calib_sample{x: xin[i], y: yin[i], ksys: calib_ksys[i]}
	}
	tree := kdtree.New(samples, false)

	xq, yq := angles2xy(query_az, query_el)
	ksysout := make([]float64, len(query_az))
	for i := range ksysout {
		got, _ := tree.Nearest(calib_sample{x: xq[i], y: yq[i]})
		ksysout[i] = got.(calib_sample).ksys
	}
	return ksysout
}
