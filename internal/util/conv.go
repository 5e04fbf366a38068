package util

import (
	"strconv"
)

// ParseID parses a decimal route or form parameter into an entity id.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// MustParseUint converts a string to an unsigned integer, returning 0 when it
// does not parse.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
