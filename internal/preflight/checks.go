package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"sorter/internal/config"
	"sorter/internal/services"
)

// CheckDirectoryAccess verifies that a directory exists and is
// readable, writable, and searchable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSourceDir resolves path to an absolute directory and verifies it can
// be sorted in place.
func CheckSourceDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", services.Wrap(services.ErrInvalidSourcePath, "preflight", "check source", "Source path is empty", nil)
	}
	abs, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", services.Wrap(services.ErrInvalidSourcePath, "preflight", "resolve source", "Unable to resolve source path", err)
	}
	result := CheckDirectoryAccess("Source directory", abs)
	if !result.Passed {
		return "", services.Wrap(services.ErrInvalidSourcePath, "preflight", "check source", result.Detail, nil)
	}
	return abs, nil
}
