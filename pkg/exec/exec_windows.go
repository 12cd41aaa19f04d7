//go:build windows

package exec

import "github.com/cockroachdb/errors"

// ErrExecNotSupported is returned for "--" commands on Windows.
var ErrExecNotSupported = errors.New("entrypoint mode needs exec(2), which Windows lacks; run the command from a wrapper script")

func (e *RealExecutor) Exec(name string, _ []string) error {
	return errors.Wrapf(ErrExecNotSupported, "cannot replace process with %s", name)
}
