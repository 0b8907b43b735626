package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"

	"isrutilities"
)

// elevation_grid returns elevations from 0 up to at most 90 degrees in
// exact multiples of step, so the requested spacing is honored even when
// it does not divide 90 evenly.
func elevation_grid(step float64) []float64 {
	n := int(math.Floor(90.0/step+1e-9)) + 1
	el := make([]float64, n)
	for i := range el {
		el[i] = float64(i) * step
	}
	return el
}

// one output sample of the elevation cut
type patternRow struct {
	Az    float64 `csv:"az"`
	El    float64 `csv:"el"`
	Power float64 `csv:"power"`
	Ksys  float64 `csv:"ksys"`
}

/*
Computes an elevation cut of the theoretical beam pattern for one radar
site and writes it to CSV.

	Args:
	    radar: radar name, e.g. pfisr or millstonez.
	    datadir: directory holding the per-site calibration CSV files.
	    outpath: output CSV path.
	    az0, el0: pointing direction in degrees.
	    step: elevation step of the cut in degrees.
*/
func run(radar string, datadir string, outpath string, az0 float64, el0 float64, step float64) {
	el := elevation_grid(step)
	n := len(el)
	az := make([]float64, n)
	for i := range az {
		az[i] = az0
	}

	angles := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		angles.Set(i, 0, az[i])
		angles.Set(i, 1, el[i])
	}

	log.Printf("resolving sensor constants for %s", radar)
	sens, err := isrutilities.GetConst(radar, angles, isrutilities.FileParamLoader{Dir: datadir})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: fc=%.4g Hz lambda=%.4g m k=%.4g rad/m", sens.Name, sens.Fc, sens.Lamb, sens.K)

	log.Printf("computing beam pattern cut at az=%.2f, pointing (%.2f, %.2f)", az0, az0, el0)
	pat := sens.ArrayFunc(az, el, az0, el0, sens.Angleoffset)

	rows := make([]*patternRow, n)
	for i := range rows {
		rows[i] = &patternRow{Az: az[i], El: el[i], Power: pat[i], Ksys: sens.Ksys[i]}
	}

	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d samples to %s", n, outpath)
}

func main() {
	radar := flag.String("radar", "millstonez", "radar system name")
	datadir := flag.String("datadir", ".", "directory with the calibration CSV files")
	outpath := flag.String("out", "beampattern.csv", "output CSV path")
	az0 := flag.Float64("az0", 0.0, "pointing azimuth, degrees")
	el0 := flag.Float64("el0", 90.0, "pointing elevation, degrees")
	step := flag.Float64("step", 0.5, "elevation step of the cut, degrees")
	flag.Parse()

	run(*radar, *datadir, *outpath, *az0, *el0, *step)
}
