//go:build unix

package exec

import (
	"syscall"
)

// execFunc is swapped in tests so the test process is not replaced.
var execFunc = syscall.Exec

// Exec replaces the current process with the specified command.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- entrypoint mode runs the command the operator put after "--".
	return execFunc(binary, argv, environ())
}
