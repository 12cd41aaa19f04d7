package inspect

import (
	"sort"

	"github.com/vertti/dbpreflight/pkg/version"
)

// Fake is a deterministic Inspector for tests.
// Errors and Panics are keyed by Key(op, name) and injected before the
// normal lookup runs.
type Fake struct {
	Info      RuntimeInfo
	Loaded    []string
	Drivers   map[string][]string // abstraction -> sub-drivers
	Clients   map[string]ClientInfo
	Types     map[string]bool
	Constants map[string]bool
	Errors    map[string]error
	Panics    map[string]interface{}
}

// Key builds the fault injection key for an operation on a name.
func Key(op, name string) string {
	return op + ":" + name
}

func (f *Fake) fault(op, name string) error {
	key := Key(op, name)
	if p, ok := f.Panics[key]; ok {
		panic(p)
	}
	if err, ok := f.Errors[key]; ok {
		return NewProbeError(op, name, err)
	}
	return nil
}

func (f *Fake) Runtime() (RuntimeInfo, error) {
	if err := f.fault(OpRuntime, ""); err != nil {
		return RuntimeInfo{}, err
	}
	return f.Info, nil
}

func (f *Fake) IsLoaded(name string) (bool, error) {
	if err := f.fault(OpIsLoaded, name); err != nil {
		return false, err
	}
	for _, l := range f.Loaded {
		if l == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *Fake) ListLoaded() ([]string, error) {
	if err := f.fault(OpListLoaded, ""); err != nil {
		return nil, err
	}
	return append([]string(nil), f.Loaded...), nil
}

func (f *Fake) SubDrivers(abstraction string) ([]string, error) {
	if err := f.fault(OpSubDrivers, abstraction); err != nil {
		return nil, err
	}
	drivers, ok := f.Drivers[abstraction]
	if !ok {
		return nil, NewProbeError(OpSubDrivers, abstraction,
			Missing("unknown abstraction layer %q", abstraction))
	}
	drivers = append([]string(nil), drivers...)
	sort.Strings(drivers)
	return drivers, nil
}

func (f *Fake) ClientInfo(name string) (ClientInfo, error) {
	if err := f.fault(OpClientInfo, name); err != nil {
		return ClientInfo{}, err
	}
	if c, ok := f.Clients[name]; ok {
		return c, nil
	}
	return ClientInfo{Module: name, Version: version.Unknown}, nil
}

func (f *Fake) TypeExists(name string) (bool, error) {
	if err := f.fault(OpTypeExists, name); err != nil {
		return false, err
	}
	return f.Types[name], nil
}

func (f *Fake) ConstantDefined(name string) (bool, error) {
	if err := f.fault(OpConstantDefined, name); err != nil {
		return false, err
	}
	return f.Constants[name], nil
}
