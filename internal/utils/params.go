package utils

import "fmt"

// ParseUintParam parses a numeric path or query parameter.
func ParseUintParam(value string) (uint, error) {
	var id uint
	if _, err := fmt.Sscan(value, &id); err != nil {
		return 0, fmt.Errorf("invalid id: %q", value)
	}
	return id, nil
}
