package main

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/vertti/dbpreflight/pkg/check"
	"github.com/vertti/dbpreflight/pkg/inspect"
	"github.com/vertti/dbpreflight/pkg/output"
)

// ErrCheckFailed is returned when a required check fails.
var ErrCheckFailed = errors.New("check failed")

// newInspector is replaced in tests with a deterministic fake.
var newInspector = func() inspect.Inspector {
	return inspect.NewBuildInspector()
}

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes main to exit with code 1.
func runCheck(w io.Writer, c check.Checker) error {
	result := c.Run()
	output.PrintResult(w, result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
