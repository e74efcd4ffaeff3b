package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]any{
		"mountpoint": "/mnt/secure",
	}

	err := WrapWithContext(ErrCodePermissionDenied, "disk usage failed", os.ErrPermission, ctx)

	if err.Code != ErrCodePermissionDenied {
		t.Errorf("expected code %s, got %s", ErrCodePermissionDenied, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["mountpoint"] != "/mnt/secure" {
		t.Errorf("expected mountpoint to be /mnt/secure")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected os.ErrPermission in chain")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	denied := Wrap(ErrCodePermissionDenied, "usage", os.ErrPermission)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"nil error", nil, ErrCodeInternal, false},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"direct match", denied, ErrCodePermissionDenied, true},
		{"fmt wrapped", fmt.Errorf("collect: %w", denied), ErrCodePermissionDenied, true},
		{"nested under other code", Wrap(ErrCodeInternal, "disk", denied), ErrCodePermissionDenied, true},
		{"outer code", Wrap(ErrCodeInternal, "disk", denied), ErrCodeInternal, true},
		{"no match", denied, ErrCodeUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
	if got := CodeOf(fmt.Errorf("x: %w", New(ErrCodeTimeout, "slow"))); got != ErrCodeTimeout {
		t.Errorf("expected %s, got %s", ErrCodeTimeout, got)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodePermissionDenied,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeRateLimitExceeded,
		ErrCodeMethodNotAllowed,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
