package inspect

import (
	"database/sql"
	"reflect"
	"runtime/debug"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/vertti/dbpreflight/pkg/version"
)

// BuildInspector inspects the running binary: its build info, the
// database/sql driver registry and the capability Registry.
// Zero-value fields fall back to the real process sources.
type BuildInspector struct {
	Registry      *Registry                       // defaults to Default()
	ReadBuildInfo func() (*debug.BuildInfo, bool) // defaults to debug.ReadBuildInfo
	Drivers       func() []string                 // defaults to sql.Drivers
	Sys           SysInfo                         // defaults to RealSysInfo
}

// NewBuildInspector returns an inspector over the running process.
func NewBuildInspector() *BuildInspector {
	return &BuildInspector{}
}

func (b *BuildInspector) registry() *Registry {
	if b.Registry == nil {
		return Default()
	}
	return b.Registry
}

func (b *BuildInspector) sys() SysInfo {
	if b.Sys == nil {
		return &RealSysInfo{}
	}
	return b.Sys
}

func (b *BuildInspector) drivers() []string {
	list := sql.Drivers
	if b.Drivers != nil {
		list = b.Drivers
	}
	drivers := append([]string(nil), list()...)
	sort.Strings(drivers)
	return drivers
}

func (b *BuildInspector) modules() map[string]string {
	read := debug.ReadBuildInfo
	if b.ReadBuildInfo != nil {
		read = b.ReadBuildInfo
	}
	mods := make(map[string]string)
	info, ok := read()
	if !ok || info == nil {
		return mods
	}
	if info.Main.Path != "" {
		mods[info.Main.Path] = info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep == nil {
			continue
		}
		v := dep.Version
		if dep.Replace != nil && dep.Replace.Version != "" {
			v = dep.Replace.Version
		}
		mods[dep.Path] = v
	}
	return mods
}

// Runtime reports the Go version and host OS.
func (b *BuildInspector) Runtime() (info RuntimeInfo, err error) {
	defer Recover(OpRuntime, "", &err)

	sys := b.sys()
	sysname, release, err := sys.Uname()
	if err != nil {
		return RuntimeInfo{}, NewProbeError(OpRuntime, "", err)
	}
	return RuntimeInfo{
		GoVersion: sys.GoVersion(),
		OS:        sysname,
		Release:   release,
		Arch:      sys.Arch(),
	}, nil
}

// ListLoaded returns every loaded capability name, sorted: the abstraction
// layer, one "database/sql:<driver>" entry per registered driver, the
// registered capabilities and every module linked into the binary.
func (b *BuildInspector) ListLoaded() (names []string, err error) {
	defer Recover(OpListLoaded, "", &err)

	set := map[string]struct{}{Abstraction: {}}
	for _, d := range b.drivers() {
		set[Abstraction+":"+d] = struct{}{}
	}
	for _, c := range b.registry().Capabilities() {
		set[c] = struct{}{}
	}
	for path := range b.modules() {
		set[path] = struct{}{}
	}

	names = make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// IsLoaded reports whether name appears in ListLoaded.
func (b *BuildInspector) IsLoaded(name string) (loaded bool, err error) {
	defer Recover(OpIsLoaded, name, &err)

	names, err := b.ListLoaded()
	if err != nil {
		return false, NewProbeError(OpIsLoaded, name, err)
	}
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name, nil
}

// SubDrivers returns the sorted database/sql driver names.
func (b *BuildInspector) SubDrivers(abstraction string) (drivers []string, err error) {
	defer Recover(OpSubDrivers, abstraction, &err)

	if abstraction != Abstraction {
		return nil, NewProbeError(OpSubDrivers, abstraction,
			Missing("unknown abstraction layer %q", abstraction))
	}
	return b.drivers(), nil
}

// ClientInfo resolves the module behind a capability and its linked version.
// Capabilities that are not registered are treated as module paths.
func (b *BuildInspector) ClientInfo(name string) (info ClientInfo, err error) {
	defer Recover(OpClientInfo, name, &err)

	module := name
	if c, ok := b.registry().Capability(name); ok && c.Module != "" {
		module = c.Module
	}

	info = ClientInfo{Module: module, Version: version.Unknown}
	if v, ok := b.modules()[module]; ok && v != "" {
		info.Version = v
	}
	if v, err := version.Parse(info.Version); err == nil {
		info.VersionNumber = version.Number(v)
	}
	return info, nil
}

// TypeExists reports whether a named type is registered and can be instantiated.
func (b *BuildInspector) TypeExists(name string) (exists bool, err error) {
	defer Recover(OpTypeExists, name, &err)

	t, ok := b.registry().Type(name)
	if !ok {
		return false, nil
	}
	if v := reflect.New(t); !v.IsValid() {
		return false, NewProbeError(OpTypeExists, name, errors.Newf("cannot instantiate %s", t))
	}
	return true, nil
}

// ConstantDefined reports whether a named constant or sentinel is registered.
func (b *BuildInspector) ConstantDefined(name string) (defined bool, err error) {
	defer Recover(OpConstantDefined, name, &err)

	v, ok := b.registry().Constant(name)
	return ok && v != nil, nil
}
