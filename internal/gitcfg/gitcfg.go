// Package gitcfg reads the single piece of git configuration the checker
// depends on: core.autocrlf.
package gitcfg

import (
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its stdout. The
// indirection lets tests substitute a fake without spawning processes.
type Runner func(name string, args ...string) ([]byte, error)

// Git is the default Runner, backed by os/exec.
func Git(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// AutoCRLF reports whether the ambient git configuration normalizes line
// endings to CRLF on checkout. Any failure (git not installed, the key
// unset, a non-zero exit) yields false; the lookup never aborts a run
// and is never reported to the user.
func AutoCRLF(run Runner) bool {
	out, err := run("git", "config", "core.autocrlf")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}
