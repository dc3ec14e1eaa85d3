package nodeid

import (
	"fmt"
	"regexp"
)

// keyRegex matches the canonical `fn(arg)` form. The argument may be any
// text without a closing parenthesis at the end being ambiguous, so we anchor
// on the outermost pair.
var keyRegex = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\((.*)\)$`)

// Parse creates a Key by parsing its canonical string representation.
func Parse(rawID string) (Key, error) {
	if rawID == "" {
		return Key{}, fmt.Errorf("identifier cannot be empty")
	}

	matches := keyRegex.FindStringSubmatch(rawID)
	if matches == nil {
		return Key{}, fmt.Errorf("invalid identifier format: %q", rawID)
	}

	return Key{Fn: Fn(matches[1]), Arg: matches[2]}, nil
}
