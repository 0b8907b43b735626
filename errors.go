package isrutilities

import "fmt"

// Error is the type of the fixed error values this package panics with on
// precondition violations ("bad call"), following the gonum/mat convention.
type Error struct{ string }

func (e Error) Error() string { return e.string }

var (
	// ErrShape is panicked when parallel azimuth/elevation inputs have
	// mismatched lengths.
	ErrShape = Error{"isrutilities: dimension mismatch"}

	// ErrEmptyCalibration is panicked when a system-constant lookup is
	// attempted against an empty calibration table.
	ErrEmptyCalibration = Error{"isrutilities: empty calibration table"}
)

// ConfigError is returned for configuration problems ("bad setup"): an
// unknown radar name, or a missing or malformed calibration table.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("isrutilities: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("isrutilities: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }
