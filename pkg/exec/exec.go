// Package exec implements entrypoint mode: once the database checks pass,
// the process is replaced by the application command given after "--".
package exec

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Separator splits dbpreflight arguments from the command to exec.
const Separator = "--"

// Executor handles process replacement after successful checks.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// It only returns on failure.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Split separates argv at the first Separator. The command after it is
// returned as cmd; argv before it is returned unchanged otherwise.
func Split(argv []string) (own, cmd []string) {
	for i, a := range argv {
		if a == Separator {
			return argv[:i:i], argv[i+1:]
		}
	}
	return argv, nil
}

// Run execs cmd with e. An empty cmd is a no-op.
func Run(e Executor, cmd []string) error {
	if len(cmd) == 0 {
		return nil
	}
	if err := e.Exec(cmd[0], cmd[1:]); err != nil {
		return errors.Wrapf(err, "exec %s", cmd[0])
	}
	return nil
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
