// Package env reads configuration defaults from environment variables.
// Keys are compared case-insensitively, and values are trimmed of surrounding whitespace.
package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lookup gets the trimmed value of an environment variable.
// False is returned if the variable isn't set, or is blank.
func Lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, entry := range os.Environ() {
		name, val, found := strings.Cut(entry, "=")
		if !found || strings.ToLower(name) != key {
			continue
		}
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return "", false
		}
		return trimmed, true
	}
	return "", false
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

var (
	ErrNotInt = errors.New("not an integer")

	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval, ok := Lookup(key)
	if !ok {
		return defaultVal
	}
	for _, candidate := range DefaultTrue {
		if strings.EqualFold(sval, candidate) {
			return true
		}
	}
	for _, candidate := range DefaultFalse {
		if strings.EqualFold(sval, candidate) {
			return false
		}
	}
	return defaultVal
}

// Int interprets an environment variable as an integer.
// False is returned if the variable isn't set or is blank, and an error is returned if it's set to something that isn't an integer.
func Int(key string) (int, bool, error) {
	sval, ok := Lookup(key)
	if !ok {
		return 0, false, nil
	}
	ival, err := strconv.Atoi(sval)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s is set to '%s'", ErrNotInt, key, sval)
	}
	return ival, true, nil
}
