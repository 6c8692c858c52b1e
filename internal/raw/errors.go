package raw

import (
	"errors"
	"fmt"
)

// DecodeError represents a fatal failure of one parse attempt.
//
// Decode errors include:
//   - Invalid source: missing file, not a regular file, wrong extension
//   - Undecodable header: no encoding candidate produced a marker match
//   - Missing boundary marker: no "Binary:" separator in the header
//   - Malformed numeric field: non-integer No. Points / No. Variables
//   - Layout mismatch: computed payload length differs from observed
//
// All decode errors abort the parse; a failed reload leaves the previously
// decoded dataset untouched.
type DecodeError struct {
	// Code identifies the error category.
	Code DecodeErrorCode

	// Message is a human-readable description.
	Message string

	// Path is the source file, when known.
	Path string

	// Field names the offending header field (for numeric errors).
	Field string
}

// DecodeErrorCode categorizes decode errors.
type DecodeErrorCode string

const (
	// ErrCodeInvalidSource indicates the path failed the pre-read checks.
	ErrCodeInvalidSource DecodeErrorCode = "INVALID_SOURCE"

	// ErrCodeUndecodableHeader indicates no encoding candidate matched.
	ErrCodeUndecodableHeader DecodeErrorCode = "UNDECODABLE_HEADER"

	// ErrCodeMissingBoundaryMarker indicates the "Binary:" marker is absent.
	ErrCodeMissingBoundaryMarker DecodeErrorCode = "MISSING_BOUNDARY_MARKER"

	// ErrCodeMalformedNumericField indicates a non-integer count field.
	ErrCodeMalformedNumericField DecodeErrorCode = "MALFORMED_NUMERIC_FIELD"

	// ErrCodeLayoutMismatch indicates expected and observed payload lengths differ.
	ErrCodeLayoutMismatch DecodeErrorCode = "LAYOUT_MISMATCH"
)

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%q)", e.Code, e.Message, e.Field)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path=%s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDecodeError returns true if err is a DecodeError with the given code.
// Uses errors.As to handle wrapped errors.
func IsDecodeError(err error, code DecodeErrorCode) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ErrorCode extracts the code from a decode error. Returns "" for nil or
// foreign errors.
func ErrorCode(err error) DecodeErrorCode {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// NewInvalidSourceError creates a DecodeError for a failed source check.
func NewInvalidSourceError(path, reason string) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeInvalidSource,
		Message: reason,
		Path:    path,
	}
}

// NewUndecodableHeaderError creates a DecodeError for a failed encoding sniff.
func NewUndecodableHeaderError(path string) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeUndecodableHeader,
		Message: "no encoding candidate produced a recognizable header",
		Path:    path,
	}
}

// NewMissingBoundaryMarkerError creates a DecodeError for an absent
// header/payload separator.
func NewMissingBoundaryMarkerError(path string) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeMissingBoundaryMarker,
		Message: `header contains no "Binary:" marker`,
		Path:    path,
	}
}

// NewMalformedNumericFieldError creates a DecodeError for a count field
// that failed integer parsing.
func NewMalformedNumericFieldError(field, value string) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeMalformedNumericField,
		Message: fmt.Sprintf("cannot parse %q as an unsigned integer", value),
		Field:   field,
	}
}

// NewLayoutMismatchError creates a DecodeError for a payload whose observed
// length differs from the computed layout.
func NewLayoutMismatchError(expected, actual int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeLayoutMismatch,
		Message: fmt.Sprintf("expected %d payload bytes, found %d", expected, actual),
	}
}

// NewVariableCountMismatchError creates a DecodeError for a header whose
// parsed variable declarations disagree with its declared count.
func NewVariableCountMismatchError(declared, parsed int) *DecodeError {
	return &DecodeError{
		Code:    ErrCodeLayoutMismatch,
		Message: fmt.Sprintf("header declares %d dependent variables, parsed %d declarations", declared, parsed),
	}
}
