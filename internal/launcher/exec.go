// Package launcher hands the process over to the validated target
// command. Exec replaces the current process, so a successful launch
// never returns.
package launcher

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// Exec replaces the current process with target, passing environ as the
// new process's environment. On failure it returns an error; the caller
// maps not-found to exit 127 and permission-denied to exit 126.
func Exec(target string, args []string, environ []string) error {
	path, err := exec.LookPath(target)
	if err != nil {
		return err
	}

	argv := append([]string{target}, args...)
	return syscall.Exec(path, argv, environ)
}

// IsNotFound reports whether err indicates the command was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return os.IsNotExist(err) || errors.Is(err, exec.ErrNotFound)
}

// IsPermissionDenied reports whether err indicates permission was denied.
func IsPermissionDenied(err error) bool {
	return err != nil && os.IsPermission(err)
}
