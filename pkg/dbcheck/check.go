// Package dbcheck verifies that the database support linked into a binary
// is present and usable, and produces a pass/fail Report.
package dbcheck

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/vertti/dbpreflight/pkg/check"
	"github.com/vertti/dbpreflight/pkg/inspect"
	"github.com/vertti/dbpreflight/pkg/version"
)

// Report is the outcome of a single verification run.
type Report struct {
	Passed   bool
	Runtime  inspect.RuntimeInfo
	Sections []check.Result
}

// ExitCode returns 0 when every required check passed, 1 otherwise.
func (r Report) ExitCode() int {
	if r.Passed {
		return 0
	}
	return 1
}

// Failures counts the failed required sections.
func (r Report) Failures() int {
	n := 0
	for _, s := range r.Sections {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Check runs the verification sequence against an Inspector.
type Check struct {
	Profile   Profile
	Inspector inspect.Inspector // injected for testing
	Logger    *zap.Logger       // optional, defaults to a no-op logger
}

type section struct {
	title    string
	required bool
	run      func(*check.Result)
}

// Run executes every section in order. Failures never stop the run;
// Passed is the conjunction of the required sections.
func (c *Check) Run() Report {
	p := c.Profile
	report := Report{Passed: true}

	sections := []section{
		{"", false, func(r *check.Result) { report.Runtime = c.runtime(r) }},
		{fmt.Sprintf("Checking %s...", p.Primary.label()), true, c.primary},
		{fmt.Sprintf("Checking %s...", p.Abstraction.label()), true, c.abstraction},
		{"Checking related database capabilities...", false, c.optional},
		{fmt.Sprintf("Capabilities matching %s:", strings.Join(p.FilterTokens, ", ")), true, c.listing},
		{fmt.Sprintf("Testing %s basic functionality...", p.Primary.label()), true, c.primaryProbe},
		{fmt.Sprintf("Testing %s basic functionality...", p.Abstraction.label()), true, c.abstractionProbe},
	}

	for i, s := range sections {
		name := s.title
		if name != "" {
			name = fmt.Sprintf("%d. %s", i, name)
		}
		res := check.Result{Name: name, Status: check.StatusOK, Required: s.required}
		c.guard(&res, s.run)

		c.logger().Debug("section finished",
			zap.String("section", name),
			zap.String("status", string(res.Status)),
			zap.Bool("required", res.Required),
			zap.Error(res.Err))

		if res.Failed() {
			report.Passed = false
		}
		report.Sections = append(report.Sections, res)
	}

	return report
}

func (c *Check) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// guard turns a panic raised while running a section into a ProbeError
// failure of that section.
func (c *Check) guard(res *check.Result, run func(*check.Result)) {
	defer func() {
		if r := recover(); r != nil {
			err := &inspect.ProbeError{Op: "section", Name: res.Name, Err: errors.Newf("panic: %v", r)}
			c.logger().Warn("section panicked", zap.String("section", res.Name), zap.Error(err))
			res.Fail(fmt.Sprintf("Error: %v", err), err)
		}
	}()
	run(res)
}

func (c *Check) runtime(res *check.Result) inspect.RuntimeInfo {
	info, err := c.Inspector.Runtime()
	if err != nil {
		c.logger().Warn("runtime info unavailable", zap.Error(err))
		res.Status = check.StatusSkip
		res.AddDetailf("Go Version: unavailable (%v)", err)
		return info
	}

	res.AddDetailf("Go Version: %s", info.GoVersion)
	res.AddDetailf("OS: %s", strings.TrimSpace(info.OS+" "+info.Release))
	if info.Arch != "" {
		res.AddDetailf("Arch: %s", info.Arch)
	}
	return info
}

func (c *Check) primary(res *check.Result) {
	d := c.Profile.Primary

	loaded, err := c.Inspector.IsLoaded(d.Capability)
	if err != nil {
		res.Fail(fmt.Sprintf("Error probing %s: %v", d.label(), err), err)
		return
	}
	if !loaded {
		err := inspect.Missing("%s is missing", d.Capability)
		res.Fail("Status: NOT LOADED", err)
		res.Fail(fmt.Sprintf("ERROR: %s is missing!", d.label()), err)
		return
	}
	res.Pass("Status: LOADED")

	info, err := c.Inspector.ClientInfo(d.Capability)
	if err != nil {
		res.Fail(fmt.Sprintf("Error reading client info: %v", err), err)
		return
	}
	res.Passf("Client Library: %s", info.Library())
	res.Passf("Client Version Number: %d", info.VersionNumber)

	c.checkMinVersion(res, info)
}

func (c *Check) checkMinVersion(res *check.Result, info inspect.ClientInfo) {
	minVersion := c.Profile.Primary.MinVersion
	if minVersion == "" {
		return
	}

	constraint, err := version.ParseConstraint(minVersion)
	if err != nil {
		res.Fail(fmt.Sprintf("Invalid version constraint: %v", err), err)
		return
	}

	ok, err := version.Satisfies(info.Version, constraint)
	switch {
	case err != nil:
		res.Fail(fmt.Sprintf("Cannot verify version %s against %q: %v", info.Version, minVersion, err), err)
	case !ok:
		res.Failf("Version %s does not satisfy %q", info.Version, minVersion)
	default:
		res.Passf("Version %s satisfies %q", info.Version, minVersion)
	}
}

func (c *Check) abstraction(res *check.Result) {
	a := c.Profile.Abstraction

	loaded, err := c.Inspector.IsLoaded(a.Capability)
	if err != nil {
		res.Fail(fmt.Sprintf("Error probing %s: %v", a.label(), err), err)
		return
	}
	if !loaded {
		err := inspect.Missing("%s is missing", a.Capability)
		res.Fail("Status: NOT LOADED", err)
		res.Fail(fmt.Sprintf("ERROR: %s is missing!", a.label()), err)
		return
	}
	res.Pass("Status: LOADED")

	drivers, err := c.Inspector.SubDrivers(a.Layer)
	switch {
	case err != nil:
		res.Fail(fmt.Sprintf("Error listing %s drivers: %v", a.Layer, err), err)
	case contains(drivers, a.SubDriver):
		res.Passf("%s %s driver: AVAILABLE", a.Layer, a.SubDriver)
	default:
		res.Failf("%s %s driver: NOT AVAILABLE", a.Layer, a.SubDriver)
	}

	res.Passf("%s support confirmed", a.label())
}

func (c *Check) optional(res *check.Result) {
	for _, o := range c.Profile.Optional {
		loaded, err := c.Inspector.IsLoaded(o.Name)
		switch {
		case err != nil:
			c.logger().Debug("optional capability probe failed", zap.String("capability", o.Name), zap.Error(err))
			res.Infof("%s: Probe failed (optional): %v", o.label(), err)
		case loaded:
			res.Passf("%s: LOADED", o.label())
		default:
			res.Infof("%s: Not loaded (optional)", o.label())
		}
	}
}

func (c *Check) listing(res *check.Result) {
	tokens := c.Profile.FilterTokens

	names, err := c.Inspector.ListLoaded()
	if err != nil {
		res.Fail(fmt.Sprintf("Error listing loaded capabilities: %v", err), err)
		return
	}

	matches := FilterCapabilities(names, tokens)
	if len(matches) == 0 {
		res.Fail(fmt.Sprintf("No capabilities matching %s found!", strings.Join(tokens, ", ")),
			inspect.Missing("no capability matches %v", tokens))
		return
	}
	for _, m := range matches {
		res.Item(m)
	}
}

func (c *Check) primaryProbe(res *check.Result) {
	d := c.Profile.Primary
	if !c.loadedForProbe(res, d.Capability, d.label()) {
		return
	}
	if err := c.probePrimary(res, d); err != nil {
		res.Fail(fmt.Sprintf("Error testing %s: %v", d.label(), err), err)
	}
}

func (c *Check) probePrimary(res *check.Result, d Driver) error {
	exists, err := c.Inspector.TypeExists(d.Type)
	if err != nil {
		return err
	}
	if exists {
		res.Passf("%s type is available", d.Type)
	} else {
		res.Fail(fmt.Sprintf("%s type not found", d.Type), inspect.Missing("type %s not found", d.Type))
	}

	defined, err := c.Inspector.ConstantDefined(d.Constant)
	if err != nil {
		return err
	}
	if defined {
		res.Passf("%s is defined", d.Constant)
	} else {
		res.Fail(fmt.Sprintf("%s not defined", d.Constant), inspect.Missing("constant %s not defined", d.Constant))
	}
	return nil
}

func (c *Check) abstractionProbe(res *check.Result) {
	a := c.Profile.Abstraction
	if !c.loadedForProbe(res, a.Capability, a.label()) {
		return
	}
	if err := c.probeAbstraction(res, a); err != nil {
		res.Fail(fmt.Sprintf("Error testing %s: %v", a.label(), err), err)
	}
}

func (c *Check) probeAbstraction(res *check.Result, a Abstraction) error {
	exists, err := c.Inspector.TypeExists(a.Type)
	if err != nil {
		return err
	}
	if exists {
		res.Passf("%s type is available", a.Type)
	} else {
		res.Fail(fmt.Sprintf("%s type not found", a.Type), inspect.Missing("type %s not found", a.Type))
	}

	drivers, err := c.Inspector.SubDrivers(a.Layer)
	if err != nil {
		return err
	}
	if contains(drivers, a.SubDriver) {
		res.Passf("%s %s driver is registered", a.Layer, a.SubDriver)
		res.Passf("Available %s drivers: %s", a.Layer, strings.Join(drivers, ", "))
	} else {
		res.Fail(fmt.Sprintf("%s %s driver not registered", a.Layer, a.SubDriver),
			inspect.Missing("driver %s not registered", a.SubDriver))
		res.AddDetailf("Available drivers: %s", strings.Join(drivers, ", "))
	}
	return nil
}

// loadedForProbe marks the section skipped when the capability is absent;
// that failure is already counted by the earlier section.
func (c *Check) loadedForProbe(res *check.Result, capability, label string) bool {
	loaded, err := c.Inspector.IsLoaded(capability)
	if err != nil {
		res.Fail(fmt.Sprintf("Error testing %s: %v", label, err), err)
		return false
	}
	if !loaded {
		res.Status = check.StatusSkip
		res.Infof("Skipped (%s not loaded)", label)
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
