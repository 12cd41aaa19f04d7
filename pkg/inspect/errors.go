package inspect

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMissingCapability marks errors caused by an absent capability,
// driver, type or constant.
var ErrMissingCapability = errors.New("missing capability")

// ProbeError reports a failure raised while introspecting a capability.
type ProbeError struct {
	Op   string // inspector operation, e.g. OpTypeExists
	Name string // capability or symbol being probed
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Op, e.Name, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// NewProbeError wraps err as a ProbeError. A nil err yields nil.
func NewProbeError(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &ProbeError{Op: op, Name: name, Err: err}
}

// IsProbeError reports whether err is, or wraps, a ProbeError.
func IsProbeError(err error) bool {
	var pe *ProbeError
	return errors.As(err, &pe)
}

// Missing returns an error marked as ErrMissingCapability.
func Missing(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrMissingCapability)
}

// IsMissing reports whether err is marked as ErrMissingCapability.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingCapability)
}

// Recover converts a panic into a ProbeError stored in *errp.
// It must be deferred directly:
//
//	defer inspect.Recover(inspect.OpTypeExists, name, &err)
func Recover(op, name string, errp *error) {
	if r := recover(); r != nil {
		*errp = &ProbeError{Op: op, Name: name, Err: errors.Newf("panic: %v", r)}
	}
}
