package cs

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Errors returned by this package. Callers should test them with errors.Is; the returned
// errors are wrapped with the offending values.
var (
	ErrIllegalArgument         = errors.New("illegal argument")
	ErrIncompatibleTypes       = errors.New("incompatible coordinate system types")
	ErrMismatchedDimension     = errors.New("mismatched dimension")
	ErrColinearAxes            = errors.New("colinear axes")
	ErrUnmappedAxis            = errors.New("axis has no matching target axis")
	ErrIllegalRange            = errors.New("illegal axis range")
	ErrUnknownDirection        = errors.New("unknown axis direction")
	ErrIllegalUnit             = errors.New("illegal unit of measurement")
	ErrNonLinearUnitConversion = errors.New("non-linear unit conversion")
)

func errorf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for the diagnostic events of this package.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
