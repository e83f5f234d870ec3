package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRecords, "record %d has no id", 3)

	if err.Code != ErrCodeInvalidRecords {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidRecords)
	}
	want := "INVALID_RECORDS: record 3 has no id"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write artifact")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not satisfy errors.Is for its cause")
	}
	want := "INTERNAL_ERROR: write artifact: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidFocus, "no scheme with id %q", "wubi")

	if !Is(err, ErrCodeInvalidFocus) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidFocus) {
		t.Error("Is() = true for non-structured error")
	}
}

func TestIs_WrappedInPlainError(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "records.json")
	outer := fmt.Errorf("loading: %w", inner)

	if !Is(outer, ErrCodeFileNotFound) {
		t.Error("Is() = false for code buried in a wrap chain")
	}
	if GetCode(outer) != ErrCodeFileNotFound {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeFileNotFound)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode() = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format %q", "pdf")
	if got := UserMessage(err); got != `unknown format "pdf"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
