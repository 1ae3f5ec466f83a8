package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidAddress, "invalid wallet address: %s", "abc")
	want := "INVALID_ADDRESS: invalid wallet address: abc"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeNetwork, stderrors.New("connection refused"), "fetch %s", "wallet")
	want = "NETWORK_ERROR: fetch wallet: connection refused"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeNotFound, "no transfers")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}

	// Codes survive wrapping with %w.
	outer := fmt.Errorf("outer: %w", err)
	if !Is(outer, ErrCodeNotFound) {
		t.Error("Is should unwrap standard wrapping")
	}
	if GetCode(outer) != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", GetCode(outer), ErrCodeNotFound)
	}

	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode on a plain error should be empty")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "operation failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeTimeout, "rpc timed out")
	if got := UserMessage(err); got != "rpc timed out" {
		t.Errorf("UserMessage = %q, want %q", got, "rpc timed out")
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q, want %q", got, "plain failure")
	}
}
