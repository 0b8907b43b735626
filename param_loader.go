package isrutilities

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"
)

/*
Calibration-table loading. The original distribution ships one HDF5
parameter file per site; this loader consumes the CSV conversion of those
files, one scalar-parameter file and one Kmat table per site. The core
only ever sees the ParamLoader interface, so tests and callers with other
storage can substitute their own source.
*/

// SensorParams is the calibration data of one site as returned by a loader.
type SensorParams struct {
	Kmat        *mat.Dense // Nx4 table of (index, az, el, ksys) rows
	Frequency   float64    // carrier frequency, Hz
	Power       float64    // transmit power, W
	Bandwidth   float64    // filter bandwidth, Hz
	Sampletime  float64    // sample time, s
	Systemp     float64    // system temperature, K
	Angleoffset [2]float64 // array face offset from north, degrees
}

// ParamLoader is the external source of per-site calibration data.
type ParamLoader interface {
	Load(stype SensorType) (*SensorParams, error)
}

// FileParamLoader reads calibration data from per-site CSV files in Dir:
// <BASE>.csv with one row of scalar parameters and <BASE>_Kmat.csv with
// the calibration grid, where <BASE> is SensorType.param_base().
type FileParamLoader struct {
	Dir string
}

type param_row struct {
	Frequency  float64 `csv:"frequency"`
	Power      float64 `csv:"power"`
	Bandwidth  float64 `csv:"bandwidth"`
	Sampletime float64 `csv:"sampletime"`
	Systemp    float64 `csv:"systemp"`
	Azoffset   float64 `csv:"azoffset"`
	Eloffset   float64 `csv:"eloffset"`
}

type kmat_row struct {
	Index float64 `csv:"index"`
	Az    float64 `csv:"az"`
	El    float64 `csv:"el"`
	Ksys  float64 `csv:"ksys"`
}

func (l FileParamLoader) Load(stype SensorType) (*SensorParams, error) {
	base := stype.param_base()

	var pp []*param_row
	if err := read_csv(filepath.Join(l.Dir, base+".csv"), &pp); err != nil {
		return nil, err
	}
	if len(pp) != 1 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("parameter file %s.csv should hold exactly one row, got %d", base, len(pp)),
		}
	}

	var kk []*kmat_row
	if err := read_csv(filepath.Join(l.Dir, base+"_Kmat.csv"), &kk); err != nil {
		return nil, err
	}
	if len(kk) == 0 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("calibration table %s_Kmat.csv is empty", base),
		}
	}

	kmat := mat.NewDense(len(kk), 4, nil)
	for i, row := range kk {
		kmat.SetRow(i, []float64{row.Index, row.Az, row.El, row.Ksys})
	}

	return &SensorParams{
		Kmat:        kmat,
		Frequency:   pp[0].Frequency,
		Power:       pp[0].Power,
		Bandwidth:   pp[0].Bandwidth,
		Sampletime:  pp[0].Sampletime,
		Systemp:     pp[0].Systemp,
		Angleoffset: [2]float64{pp[0].Azoffset, pp[0].Eloffset},
	}, nil
}

// read_csv unmarshals one CSV file into out, mapping any failure to a
// configuration error.
func read_csv(path string, out interface{}) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &ConfigError{Reason: fmt.Sprintf("calibration file %s does not exist", path)}
	}
	file, err := os.Open(path)
	if err != nil {
		return &ConfigError{Reason: "opening calibration file " + path, Err: err}
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return &ConfigError{Reason: "malformed calibration file " + path, Err: err}
	}
	return nil
}
