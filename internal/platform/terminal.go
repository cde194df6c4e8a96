package platform

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo-terminals on Windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether prompting is permitted: stdin must be a
// terminal and the user must not have asked to accept all defaults.
func Interactive(stdin *os.File, yes bool) bool {
	return !yes && IsTerminal(stdin)
}

// Workdir returns the current working directory.
func Workdir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}
