package metadata

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SatisfiesPython reports whether an interpreter version (as printed by
// "python3 --version", with or without the "Python " prefix) meets the
// python_requires constraint.
func SatisfiesPython(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}

	version = strings.TrimSpace(version)
	version = strings.TrimPrefix(version, "Python ")
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing python version %q: %w", version, err)
	}
	return c.Check(v), nil
}
