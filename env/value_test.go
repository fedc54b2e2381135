package env

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestVal(t *testing.T) {
	const key = "TEST_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Setenv("TEST_LOOKUP_CASE", "value")
	val, ok := Lookup("test_lookup_case")
	assert.True(t, ok)
	assert.Equal(t, "value", val)

	_, ok = Lookup("TEST_LOOKUP_MISSING")
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	const key = "TEST_BOOL"
	tests := []struct {
		name       string
		unset      bool
		value      string
		defaultVal bool
		expected   bool
	}{
		{name: "Unset", unset: true, defaultVal: true, expected: true},
		{name: "Empty", value: "", expected: false},
		{name: "Not a bool", value: "maybe", defaultVal: true, expected: true},
		{name: "Yes", value: "YES", expected: true},
		{name: "On", value: "on", expected: true},
		{name: "Off", value: "Off", defaultVal: true, expected: false},
		{name: "Zero", value: "0", defaultVal: true, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Bool(key, tc.defaultVal))
		})
	}
}

func TestInt(t *testing.T) {
	const key = "TEST_INT"
	tests := []struct {
		name     string
		unset    bool
		value    string
		expected int
		found    bool
		err      bool
	}{
		{name: "Unset", unset: true},
		{name: "Empty", value: " "},
		{name: "Not an int", value: "seven", err: true},
		{name: "Negative", value: "-12", expected: -12, found: true},
		{name: "Padded", value: " 42\n", expected: 42, found: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			val, found, err := Int(key)
			if tc.err {
				assert.ErrorIs(t, err, ErrNotInt)
				assert.ErrorContains(t, err, key)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, val)
		})
	}
}
