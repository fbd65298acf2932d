// Package sysinfo is a read-only formatting shim over host APIs, backing the
// `os` command.
package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"runtime"

	"github.com/fileman-cli/fileman/internal/errors"
)

// Report formats the host detail selected by flag. An unrecognized flag is
// reported as invalid input, not as a failed operation.
func Report(flag string) (string, error) {
	switch flag {
	case "--EOL":
		return fmt.Sprintf("%q", EOL()), nil
	case "--cpus":
		return fmt.Sprintf("CPUs: %d (%s)", runtime.NumCPU(), runtime.GOARCH), nil
	case "--homedir":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "unable to determine the home directory")
		}
		return home, nil
	case "--username":
		current, err := user.Current()
		if err != nil {
			return "", errors.Wrap(err, "unable to determine the current user")
		}
		return current.Username, nil
	case "--architecture":
		return runtime.GOARCH, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidInput, "unknown flag %q", flag)
	}
}

func EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}
