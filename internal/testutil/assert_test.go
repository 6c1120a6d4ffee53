package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// recorder captures failures so the helpers can be checked for both outcomes.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertEqual(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, []int{1, 2}, []int{1, 2})
	if len(r.failures) != 0 {
		t.Errorf("AssertEqual on equal slices reported %v", r.failures)
	}

	AssertEqual(r, 3, 4, "square %d", 12)
	if len(r.failures) != 1 {
		t.Fatalf("AssertEqual on different values reported %d failures; want 1", len(r.failures))
	}
	if got := r.failures[0]; got[:9] != "square 12" {
		t.Errorf("failure message = %q; want prefix \"square 12\"", got)
	}
}

func TestAssertSameElements(t *testing.T) {
	r := &recorder{TB: t}
	AssertSameElements(r, []string{"e2e4", "d2d4"}, []string{"d2d4", "e2e4"})
	AssertSameElements(r, nil, []string{})
	if len(r.failures) != 0 {
		t.Errorf("AssertSameElements reported %v for equal sets", r.failures)
	}

	AssertSameElements(r, []string{"e2e4"}, []string{"e2e3"})
	if len(r.failures) != 1 {
		t.Errorf("AssertSameElements reported %d failures for different sets; want 1", len(r.failures))
	}
}

func TestAssertErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	r := &recorder{TB: t}
	AssertErrorIs(r, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(r, nil)
	AssertTrue(r, true)
	AssertFalse(r, false)
	if len(r.failures) != 0 {
		t.Errorf("passing assertions reported %v", r.failures)
	}

	AssertErrorIs(r, nil, sentinel)
	AssertNoError(r, sentinel)
	AssertTrue(r, false)
	AssertFalse(r, true)
	if len(r.failures) != 4 {
		t.Errorf("failing assertions reported %d failures; want 4", len(r.failures))
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value: %d", 42}, "value: 42"},
		{"non-string", []interface{}{123}, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
