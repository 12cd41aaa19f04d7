//go:build !unix

package inspect

import "runtime"

// Uname falls back to GOOS where uname(2) is unavailable.
func (r *RealSysInfo) Uname() (sysname, release string, err error) {
	return runtime.GOOS, "", nil
}
