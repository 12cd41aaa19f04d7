// Package inspect answers questions about the database support linked into
// the running binary: which capabilities are loaded, which database/sql
// drivers are registered, and which driver symbols exist.
package inspect

// Abstraction is the name of the driver abstraction layer.
const Abstraction = "database/sql"

// Operation names, used in ProbeError and by Fake for fault injection.
const (
	OpRuntime         = "Runtime"
	OpIsLoaded        = "IsLoaded"
	OpListLoaded      = "ListLoaded"
	OpSubDrivers      = "SubDrivers"
	OpClientInfo      = "ClientInfo"
	OpTypeExists      = "TypeExists"
	OpConstantDefined = "ConstantDefined"
)

// Inspector abstracts runtime introspection for testability.
// Every method reports introspection failures as errors instead of panicking.
type Inspector interface {
	Runtime() (RuntimeInfo, error)
	IsLoaded(name string) (bool, error)
	ListLoaded() ([]string, error)
	SubDrivers(abstraction string) ([]string, error)
	ClientInfo(name string) (ClientInfo, error)
	TypeExists(name string) (bool, error)
	ConstantDefined(name string) (bool, error)
}

// RuntimeInfo describes the Go runtime and the host it runs on.
type RuntimeInfo struct {
	GoVersion string
	OS        string
	Release   string
	Arch      string
}

// ClientInfo describes the library backing a capability.
type ClientInfo struct {
	Module        string // module path
	Version       string // module version, or version.Unknown
	VersionNumber int    // major*10000 + minor*100 + patch, 0 if unknown
}

// Library returns the module path and version as one string.
func (c ClientInfo) Library() string {
	return c.Module + " " + c.Version
}
