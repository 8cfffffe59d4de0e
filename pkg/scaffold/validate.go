package scaffold

import (
	"regexp"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// Package names are snake_case tokens. They become directory names and
// registry keys, so path separators and case variance are rejected outright.
var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidateName checks a package name before any filesystem access.
func ValidateName(name string) error {
	if name == "" {
		return srpkgerr.New(srpkgerr.ErrInvalidInput, "package name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return srpkgerr.Newf(srpkgerr.ErrInvalidInput,
			"invalid package name %q: must be snake_case ([a-z0-9_])", name)
	}
	return nil
}
