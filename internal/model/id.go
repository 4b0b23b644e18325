package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// idRegex matches todo IDs like 7, 007, #7
	idRegex = regexp.MustCompile(`^#?(\d+)$`)
)

// ParseID parses a todo ID as typed on the command line.
// Accepts 7, 07 and #7; all parse to 7.
// Returns ErrInvalidID if the format is invalid.
func ParseID(s string) (int, error) {
	matches := idRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid todo ID", ErrInvalidID, s)
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return id, nil
}

// FormatID formats a todo ID for display, e.g. "#7".
func FormatID(id int) string {
	return fmt.Sprintf("#%d", id)
}
