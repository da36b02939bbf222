package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []string{"e4", "e5"}, []string{"e4", "e5"})
	AssertEqual(t, map[string]string{"a1": "R"}, map[string]string{"a1": "R"}, "board at move %d", 1)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "move should be accepted")
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "should be false")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"move %s-%s", "e2", "e4"}, "move e2-e4"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix(); got != "" {
		t.Errorf("prefix() = %q, want empty", got)
	}
	if got := prefix("turn %d", 3); got != "turn 3: " {
		t.Errorf("prefix() = %q, want %q", got, "turn 3: ")
	}
}
