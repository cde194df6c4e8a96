package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion reports whether v is a strict semantic version suitable for a
// package.json "version" field. A leading "v" is rejected because npm rejects it.
func CheckVersion(v string) error {
	if strings.HasPrefix(v, "v") {
		return fmt.Errorf("version %q must not have a leading 'v'", v)
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("parsing version %q: %w", v, err)
	}
	return nil
}

// CheckEngine reports whether c is a valid semver range for "engines.node".
func CheckEngine(c string) error {
	if _, err := semver.NewConstraint(c); err != nil {
		return fmt.Errorf("parsing node engine range %q: %w", c, err)
	}
	return nil
}

// SatisfiesEngine reports whether the installed Node.js version satisfies the
// engines.node range c. A leading "v" on version is tolerated, matching the
// output of `node --version`.
func SatisfiesEngine(version, c string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		return false, fmt.Errorf("parsing node engine range %q: %w", c, err)
	}
	return constraint.Check(v), nil
}
