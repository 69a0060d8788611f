package utils

import (
	"fmt"
	"strconv"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// ParseQueryInt converts a query value to int, using defaultValue when the value is empty.
func ParseQueryInt(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", value)
	}

	return result, nil
}

// ParseID parses a positive integer path parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%q is not a valid id", value)
	}
	return id, nil
}
