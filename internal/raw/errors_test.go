package raw

import (
	"fmt"
	"strings"
	"testing"
)

func TestDecodeErrorMessage(t *testing.T) {
	err := NewLayoutMismatchError(48, 44)
	msg := err.Error()
	if !strings.Contains(msg, "LAYOUT_MISMATCH") {
		t.Errorf("error message missing code: %q", msg)
	}
	if !strings.Contains(msg, "48") || !strings.Contains(msg, "44") {
		t.Errorf("error message missing lengths: %q", msg)
	}
}

func TestIsDecodeError_Wrapped(t *testing.T) {
	inner := NewInvalidSourceError("/tmp/x.csv", "unexpected extension")
	wrapped := fmt.Errorf("reload: %w", inner)

	if !IsDecodeError(wrapped, ErrCodeInvalidSource) {
		t.Error("IsDecodeError must unwrap")
	}
	if IsDecodeError(wrapped, ErrCodeLayoutMismatch) {
		t.Error("IsDecodeError must not match a different code")
	}
	if IsDecodeError(fmt.Errorf("plain"), ErrCodeInvalidSource) {
		t.Error("IsDecodeError must not match foreign errors")
	}
}

func TestErrorCode(t *testing.T) {
	if code := ErrorCode(NewUndecodableHeaderError("f.raw")); code != ErrCodeUndecodableHeader {
		t.Errorf("ErrorCode = %q, want %q", code, ErrCodeUndecodableHeader)
	}
	if code := ErrorCode(nil); code != "" {
		t.Errorf("ErrorCode(nil) = %q, want empty", code)
	}
}

func TestMalformedNumericFieldError(t *testing.T) {
	err := NewMalformedNumericFieldError("No. Points", "abc")
	if err.Field != "No. Points" {
		t.Errorf("Field = %q", err.Field)
	}
	if !strings.Contains(err.Error(), "No. Points") {
		t.Errorf("message missing field name: %q", err.Error())
	}
}
