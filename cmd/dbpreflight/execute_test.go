package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vertti/dbpreflight/pkg/inspect"
)

func executeCommand(args ...string) (string, error) {
	stdout, _, err := executeCommandSplit(args...)
	return stdout, err
}

func executeCommandSplit(args ...string) (string, string, error) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func useInspector(t *testing.T, i inspect.Inspector) {
	t.Helper()
	old := newInspector
	newInspector = func() inspect.Inspector { return i }
	t.Cleanup(func() { newInspector = old })
}

// inTempDir keeps a stray .dbpreflight.yaml in the package directory
// from leaking into tests.
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func healthyFake() *inspect.Fake {
	return &inspect.Fake{
		Info: inspect.RuntimeInfo{GoVersion: "go1.25.1", OS: "Linux", Release: "6.8.0", Arch: "amd64"},
		Loaded: []string{
			"mysql",
			"database/sql:mysql",
			"github.com/go-sql-driver/mysql",
			"github.com/spf13/cobra",
		},
		Drivers: map[string][]string{inspect.Abstraction: {"mysql"}},
		Clients: map[string]inspect.ClientInfo{
			"mysql": {Module: "github.com/go-sql-driver/mysql", Version: "v1.9.3", VersionNumber: 10903},
		},
		Types:     map[string]bool{"mysql.Config": true, "sql.DB": true},
		Constants: map[string]bool{"mysql.ErrInvalidConn": true},
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "dbpreflight")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "dbpreflight")
	assert.Contains(t, output, "--min-driver-version")
}

func TestUnexpectedArgument(t *testing.T) {
	inTempDir(t)
	_, err := executeCommand("mysqli")
	assert.Error(t, err)
}

func TestVerifyScenarios(t *testing.T) {
	inTempDir(t)

	tests := []struct {
		name     string
		mutate   func(f *inspect.Fake)
		wantErr  bool
		contains []string
	}{
		{
			name:    "all required present",
			mutate:  func(f *inspect.Fake) {},
			wantErr: false,
			contains: []string{
				"Go Version: go1.25.1",
				"1. Checking mysql driver...",
				"✓ Status: LOADED",
				"- database/sql PostgreSQL driver: Not loaded (optional)",
				"• github.com/go-sql-driver/mysql",
				"✓ ALL TESTS PASSED",
			},
		},
		{
			name:     "abstraction missing",
			mutate:   func(f *inspect.Fake) { f.Loaded = []string{"mysql", "github.com/go-sql-driver/mysql"} },
			wantErr:  true,
			contains: []string{"✗ Status: NOT LOADED", "✗ ERROR: database/sql mysql is missing!", "✗ SOME TESTS FAILED"},
		},
		{
			name:     "sub-driver missing",
			mutate:   func(f *inspect.Fake) { f.Drivers[inspect.Abstraction] = []string{"sqlite"} },
			wantErr:  true,
			contains: []string{"✗ database/sql mysql driver: NOT AVAILABLE", "Available drivers: sqlite"},
		},
		{
			name: "probe error",
			mutate: func(f *inspect.Fake) {
				f.Errors = map[string]error{inspect.Key(inspect.OpTypeExists, "sql.DB"): errors.New("reflection failed")}
			},
			wantErr:  true,
			contains: []string{"✗ Error testing database/sql mysql: TypeExists(sql.DB): reflection failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFake()
			tt.mutate(f)
			useInspector(t, f)

			output, err := executeCommand("--no-color")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCheckFailed)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestVerifyJSON(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	output, err := executeCommand("--format", "json")
	require.NoError(t, err)
	require.True(t, gjson.Valid(output), output)
	assert.True(t, gjson.Get(output, "passed").Bool())
	assert.Equal(t, int64(0), gjson.Get(output, "exit_code").Int())
	assert.Equal(t, "Linux", gjson.Get(output, "runtime.os").String())
	assert.Equal(t, int64(7), gjson.Get(output, "sections.#").Int())
}

func TestVerifyInvalidFormat(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	_, err := executeCommand("--format", "xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestVerifyMinDriverVersion(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	t.Run("satisfied", func(t *testing.T) {
		output, err := executeCommand("--no-color", "--min-driver-version", ">= 1.8")
		require.NoError(t, err)
		assert.Contains(t, output, `Version v1.9.3 satisfies ">= 1.8"`)
	})

	t.Run("not satisfied", func(t *testing.T) {
		output, err := executeCommand("--no-color", "--min-driver-version", ">= 2.0")
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, output, `Version v1.9.3 does not satisfy ">= 2.0"`)
	})

	t.Run("invalid constraint", func(t *testing.T) {
		_, err := executeCommand("--min-driver-version", "not-a-version")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCheckFailed)
	})
}

func TestVerifyEnvironmentOverride(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())
	t.Setenv("DBPREFLIGHT_ABSTRACTION_SUB_DRIVER", "postgres")

	output, err := executeCommand("--no-color")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, output, "database/sql postgres driver: NOT AVAILABLE")
}

func TestVerifyEnvironmentFormat(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())
	t.Setenv("DBPREFLIGHT_FORMAT", "json")

	output, err := executeCommand()
	require.NoError(t, err)
	assert.True(t, gjson.Valid(output))
}

func TestVerifyConfigFile(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	path := writeTempFile(t, "dbpreflight.yaml", `
filter_tokens:
  - cobra
optional:
  - name: database/sql:pgx
    label: pgx driver
`)

	output, err := executeCommand("--no-color", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Capabilities matching cobra:")
	assert.Contains(t, output, "• github.com/spf13/cobra")
	assert.NotContains(t, output, "• github.com/go-sql-driver/mysql")
	assert.Contains(t, output, "- pgx driver: Not loaded (optional)")
	assert.NotContains(t, output, "SQLite")
}

func TestVerifyConfigFileInWorkingDirectory(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())
	require.NoError(t, os.WriteFile(".dbpreflight.yaml", []byte("primary:\n  label: MariaDB connector\n"), 0o600))

	output, err := executeCommand("--no-color")
	require.NoError(t, err)
	assert.Contains(t, output, "1. Checking MariaDB connector...")
	assert.Contains(t, output, "5. Testing MariaDB connector basic functionality...")
}

func TestVerifyConfigErrors(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := executeCommand("--config", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("invalid profile", func(t *testing.T) {
		path := writeTempFile(t, "bad.yaml", "abstraction:\n  sub_driver: \"\"\n")
		_, err := executeCommand("--config", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "abstraction.sub_driver")
	})
}

func TestVerifyVerboseLogsToStderr(t *testing.T) {
	inTempDir(t)
	useInspector(t, healthyFake())

	stdout, stderr, err := executeCommandSplit("--no-color", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "section finished")
	assert.NotContains(t, stdout, "section finished")

	_, stderr, err = executeCommandSplit("--no-color")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestDriversCommand(t *testing.T) {
	t.Run("drivers registered", func(t *testing.T) {
		useInspector(t, &inspect.Fake{Drivers: map[string][]string{inspect.Abstraction: {"pgx", "mysql"}}})
		output, err := executeCommand("drivers", "--no-color")
		require.NoError(t, err)
		assert.Equal(t, "[OK] drivers: database/sql\n     • mysql\n     • pgx\n", output)
	})

	t.Run("none registered", func(t *testing.T) {
		useInspector(t, &inspect.Fake{Drivers: map[string][]string{inspect.Abstraction: nil}})
		output, err := executeCommand("drivers", "--no-color")
		assert.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, output, "[FAIL] drivers: database/sql")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := executeCommand("drivers", "mysql")
		assert.Error(t, err)
	})
}
