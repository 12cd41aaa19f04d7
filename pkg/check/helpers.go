package check

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Fail sets the result to failed status with a failure line.
func (r *Result) Fail(text string, err error) Result {
	r.Status = StatusFail
	r.Lines = append(r.Lines, Line{Mark: MarkFail, Text: text})
	if r.Err == nil {
		r.Err = err
	}
	return *r
}

// Failf sets the result to failed status with a formatted failure line.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), errors.Newf(format, args...))
}

// Pass appends a success line to the result.
func (r *Result) Pass(text string) *Result {
	return r.add(MarkPass, text)
}

// Passf appends a formatted success line to the result.
func (r *Result) Passf(format string, args ...interface{}) *Result {
	return r.add(MarkPass, fmt.Sprintf(format, args...))
}

// Info appends an informational line to the result.
func (r *Result) Info(text string) *Result {
	return r.add(MarkInfo, text)
}

// Infof appends a formatted informational line to the result.
func (r *Result) Infof(format string, args ...interface{}) *Result {
	return r.add(MarkInfo, fmt.Sprintf(format, args...))
}

// Item appends a list item line to the result.
func (r *Result) Item(text string) *Result {
	return r.add(MarkItem, text)
}

// AddDetailf appends a formatted line without a glyph.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.add(MarkPlain, fmt.Sprintf(format, args...))
}

func (r *Result) add(mark Mark, text string) *Result {
	r.Lines = append(r.Lines, Line{Mark: mark, Text: text})
	return r
}
