package projection

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// Errors returned by this package.
var (
	// ErrInvalidParameter is returned by the constructors for out of range parameters.
	ErrInvalidParameter = errors.New("invalid projection parameter")

	// ErrNoConvergence is returned by inverse projections when the iteration on the
	// latitude does not converge. Points outside the domain of validity produce NaN
	// instead of this error.
	ErrNoConvergence = errors.New("no convergence")

	// ErrOutOfRange is returned by UTM conversions for coordinates outside the UTM grid.
	ErrOutOfRange = errors.New("coordinate out of range")
)

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by this package. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
