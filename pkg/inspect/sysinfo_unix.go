//go:build unix

package inspect

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// Uname returns the kernel name and release reported by uname(2).
func (r *RealSysInfo) Uname() (sysname, release string, err error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", "", errors.Wrap(err, "uname")
	}
	return unix.ByteSliceToString(u.Sysname[:]), unix.ByteSliceToString(u.Release[:]), nil
}
