package inspect

import (
	"reflect"
	"sort"
	"sync"
)

// Capability is a named piece of database support compiled into the binary.
type Capability struct {
	Name   string // e.g. "mysql"
	Module string // module providing it, e.g. "github.com/go-sql-driver/mysql"
}

// Registry records the capabilities and symbols contributed by driver
// registration files. It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]Capability
	types        map[string]reflect.Type
	constants    map[string]interface{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]Capability),
		types:        make(map[string]reflect.Type),
		constants:    make(map[string]interface{}),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by driver registrations.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a capability to the default registry.
func Register(c Capability) { defaultRegistry.Register(c) }

// RegisterType adds a named type to the default registry.
func RegisterType(name string, t reflect.Type) { defaultRegistry.RegisterType(name, t) }

// RegisterConstant adds a named constant or sentinel value to the default registry.
func RegisterConstant(name string, v interface{}) { defaultRegistry.RegisterConstant(name, v) }

// Register adds a capability. Like sql.Register it panics on an empty
// or duplicate name, since both are programming errors.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Name == "" {
		panic("inspect: Register capability with empty name")
	}
	if _, dup := r.capabilities[c.Name]; dup {
		panic("inspect: Register called twice for capability " + c.Name)
	}
	r.capabilities[c.Name] = c
}

// RegisterType adds a named type. It panics on a nil type or a duplicate name.
func (r *Registry) RegisterType(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t == nil {
		panic("inspect: RegisterType type is nil for " + name)
	}
	if _, dup := r.types[name]; dup {
		panic("inspect: RegisterType called twice for " + name)
	}
	r.types[name] = t
}

// RegisterConstant adds a named value. It panics on a duplicate name.
func (r *Registry) RegisterConstant(name string, v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.constants[name]; dup {
		panic("inspect: RegisterConstant called twice for " + name)
	}
	r.constants[name] = v
}

// Capability looks up a registered capability by name.
func (r *Registry) Capability(name string) (Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.capabilities[name]
	return c, ok
}

// Capabilities returns the registered capability names, sorted.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.capabilities))
	for name := range r.capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Type looks up a registered type.
func (r *Registry) Type(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Constant looks up a registered constant.
func (r *Registry) Constant(name string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.constants[name]
	return v, ok
}
