package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownLabel, "unknown labels in ordering: %v", []string{"x"})

	if err.Code != ErrCodeUnknownLabel {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownLabel)
	}

	expected := "UNKNOWN_LABEL: unknown labels in ordering: [x]"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidInput, cause, "read graph.json")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeMixedSign, "test"),
			code:     ErrCodeMixedSign,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeMixedSign, "test"),
			code:     ErrCodeShape,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeShape,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeUnknownNode, errors.New("cause"), "lookup"),
			code:     ErrCodeUnknownNode,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeShape, "bad shape")); got != ErrCodeShape {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeShape)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeLengthMismatch, "3 labels for 4 nodes")); got != "3 labels for 4 nodes" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}
