package isrutilities

import "math"

// speed of light in vacuum, m/s
const v_C_0 = 299792458.0

// degrees to radians
const d2r = math.Pi / 180.0

// radians to degrees
const r2d = 180.0 / math.Pi
