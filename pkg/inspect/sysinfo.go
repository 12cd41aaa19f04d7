package inspect

import "runtime"

// SysInfo abstracts host information for testability.
type SysInfo interface {
	GoVersion() string
	Uname() (sysname, release string, err error)
	Arch() string
}

// RealSysInfo returns actual host information.
type RealSysInfo struct{}

func (r *RealSysInfo) GoVersion() string { return runtime.Version() }
func (r *RealSysInfo) Arch() string      { return runtime.GOARCH }
