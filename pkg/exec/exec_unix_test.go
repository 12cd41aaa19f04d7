//go:build unix

package exec

import (
	"errors"
	"testing"
)

func TestRealExecutor_Exec_Success(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	var capturedBinary string
	var capturedArgv []string
	var capturedEnv []string

	execFunc = func(binary string, argv []string, env []string) error {
		capturedBinary = binary
		capturedArgv = argv
		capturedEnv = env
		return nil
	}

	e := &RealExecutor{}
	if err := e.Exec("sh", []string{"-c", "true"}); err != nil {
		t.Errorf("Exec() error = %v, want nil", err)
	}

	if capturedBinary == "" || capturedBinary == "sh" {
		t.Errorf("binary = %q, want resolved absolute path", capturedBinary)
	}
	if len(capturedArgv) != 3 || capturedArgv[0] != "sh" || capturedArgv[1] != "-c" {
		t.Errorf("argv = %v, want [sh -c true]", capturedArgv)
	}
	if len(capturedEnv) == 0 {
		t.Error("expected environment to be passed")
	}
}

func TestRealExecutor_Exec_ExecFuncError(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	expectedErr := errors.New("exec failed")
	execFunc = func(binary string, argv []string, env []string) error {
		return expectedErr
	}

	e := &RealExecutor{}
	err := e.Exec("sh", []string{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("Exec() error = %v, want %v", err, expectedErr)
	}
}
