package testutil

import (
	"testing"
)

func Assert[T comparable](t *testing.T, expected T, value T, message string) {
	t.Helper()

	if expected != value {
		t.Fatalf("%s: expected %v got %v", message, expected, value)
	}
}

func AssertErr(t *testing.T, expected error, value error, message string) {
	t.Helper()

	if expected == nil && value == nil {
		return
	}

	if expected == nil || value == nil || expected.Error() != value.Error() {
		t.Fatalf("%s: expected %v got %v", message, expected, value)
	}
}

func IsNil(t *testing.T, value interface{}, message string) {
	t.Helper()

	if value != nil {
		t.Fatalf("%s: expected nil got %v", message, value)
	}
}

func IsNotNil(t *testing.T, value interface{}, message string) {
	t.Helper()

	if value == nil {
		t.Fatalf("%s: expected not nil got nil", message)
	}
}

// InDelta asserts two floats are within eps of each other.
func InDelta(t *testing.T, expected float64, value float64, eps float64, message string) {
	t.Helper()

	diff := expected - value
	if diff < 0 {
		diff = -diff
	}

	if diff > eps {
		t.Fatalf("%s: expected %v±%v got %v", message, expected, eps, value)
	}
}
