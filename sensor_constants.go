package isrutilities

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

/*
Registry of the supported ISR installations. A radar name resolves to a
SensorType variant, which binds the antenna model and the calibration
parameter file; GetConst then assembles the full sensor descriptor from the
loaded calibration data.
*/

// SensorType enumerates the supported radar systems.
type SensorType string

const (
	SensorRISR        SensorType = "risr"
	SensorRISRN       SensorType = "risr-n"
	SensorPFISR       SensorType = "pfisr"
	SensorMillstone   SensorType = "millstone"
	SensorMillstoneZ  SensorType = "millstonez"
	SensorSondrestrom SensorType = "sondrestrom"
)

/*
Resolves a case-insensitive radar name to its SensorType.

	Args:
	    str: radar name, e.g. "PFISR" or "millstonez".

	Returns:
	    The SensorType, or a *ConfigError for an unrecognized name.
*/
func SensorTypeFromString(str string) (SensorType, error) {
	switch strings.ToLower(str) {
	case "risr":
		return SensorRISR, nil
	case "risr-n":
		return SensorRISRN, nil
	case "pfisr":
		return SensorPFISR, nil
	case "millstone":
		return SensorMillstone, nil
	case "millstonez":
		return SensorMillstoneZ, nil
	case "sondrestrom":
		return SensorSondrestrom, nil
	default:
		return "", &ConfigError{Reason: fmt.Sprintf("unknown radar system %q", str)}
	}
}

// array_func returns the antenna pattern model bound to the sensor type.
func (s SensorType) array_func() PatternFunc {
	switch s {
	case SensorRISR, SensorRISRN, SensorPFISR:
		return AMISR_Patternadj
	case SensorMillstone:
		return Millstone_Pattern_M
	case SensorMillstoneZ:
		return Millstone_Pattern_Z
	case SensorSondrestrom:
		return Sond_Pattern
	default:
		panic("invalid sensor type")
	}
}

// param_base returns the base name of the calibration parameter files for
// the sensor type. The two Millstone Hill antennas share one file.
func (s SensorType) param_base() string {
	switch s {
	case SensorRISR, SensorRISRN:
		return "RISR_PARAMS"
	case SensorPFISR:
		return "PFISR_PARAMS"
	case SensorMillstone, SensorMillstoneZ:
		return "Millstone_PARAMS"
	case SensorSondrestrom:
		return "Sondrestrom_PARAMS"
	default:
		panic("invalid sensor type")
	}
}

/*
SensorDescriptor holds the constants of a radar system. Field names follow
the keys of the sensor dictionary in the Python original.
*/
type SensorDescriptor struct {
	Name        string      // radar name as given by the caller
	Pt          float64     // transmit power, W
	K           float64     // carrier wavenumber, rad/m
	Lamb        float64     // wavelength, m
	Fc          float64     // carrier frequency, Hz
	Fs          float64     // sampling frequency, Hz
	Ts          float64     // sampling period, s
	Taurg       float64     // pulse length in samples
	Tsys        float64     // system temperature, K
	BeamWidth   [2]float64  // nominal beam widths, degrees
	Ksys        []float64   // per-beam system constant; nil when no angles were supplied
	BandWidth   float64     // filter bandwidth, Hz
	Angleoffset [2]float64  // offset of the array face from north, degrees
	ArrayFunc   PatternFunc // antenna pattern model
}

/*
Assembles the sensor descriptor for a radar system. This is the public
entry point of the package: it resolves the radar name, loads the
calibration table through the supplied loader, derives the wave constants
from the carrier frequency, and, when query angles are given, fills in the
per-beam system constant by nearest-neighbor lookup over the calibration
grid.

	Args:
	    typestr: radar name (case-insensitive), see SensorTypeFromString.
	    angles: Nx2 matrix of (az, el) pairs in degrees, or nil. When nil
	        the Ksys field of the result is left absent.
	    loader: calibration-table source.

	Returns:
	    A freshly built descriptor owned by the caller, or a *ConfigError
	    when the radar name is unknown or the calibration table cannot be
	    loaded. Panics ErrShape when angles does not have two columns.
*/
func GetConst(typestr string, angles *mat.Dense, loader ParamLoader) (*SensorDescriptor, error) {
	stype, err := SensorTypeFromString(typestr)
	if err != nil {
		return nil, err
	}
	params, err := loader.Load(stype)
	if err != nil {
		return nil, err
	}

	lamb := v_C_0 / params.Frequency
	ksens := 2.0 * math.Pi / lamb

	var ksysout []float64
	if angles != nil {
		nq, cols := angles.Dims()
		if cols != 2 {
			panic(ErrShape)
		}
		queryAz := make([]float64, nq)
		queryEl := make([]float64, nq)
		for i := 0; i < nq; i++ {
			queryAz[i] = angles.At(i, 0)
			queryEl[i] = angles.At(i, 1)
		}
		ksysout = system_constant(
			mat.Col(nil, 1, params.Kmat),
			mat.Col(nil, 2, params.Kmat),
			mat.Col(nil, 3, params.Kmat),
			queryAz, queryEl)
	}

	return &SensorDescriptor{
		Name:        typestr,
		Pt:          params.Power,
		K:           ksens,
		Lamb:        lamb,
		Fc:          params.Frequency,
		Fs:          1.0 / params.Sampletime,
		Ts:          params.Sampletime,
		Taurg:       14.0,
		Tsys:        params.Systemp,
		BeamWidth:   [2]float64{2.0, 2.0},
		Ksys:        ksysout,
		BandWidth:   params.Bandwidth,
		Angleoffset: params.Angleoffset,
		ArrayFunc:   stype.array_func(),
	}, nil
}
