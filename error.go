package sqlkw

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EFETCH    = "fetch"
	EEXTRACT  = "extract"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sqlkw error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EFETCH
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return EEXTRACT
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Error()
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError reports that a source could not be retrieved.
// The run continues without the source's dialect.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError reports that a source document matched zero keyword patterns.
// It usually means the vendor page layout drifted.
type ExtractionError struct {
	Dialect Dialect
	Reason  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.Dialect, e.Reason)
}

// ExtractionWarning flags a source entry whose classification could not be
// read unambiguously from the markup.
type ExtractionWarning struct {
	Dialect Dialect     `json:"dialect"`
	Word    string      `json:"word"`
	Kind    WarningKind `json:"kind"`
	Detail  string      `json:"detail"`
}

// WarningKind categorizes an ExtractionWarning.
type WarningKind string

// WarningKind constants.
const (
	WarningAmbiguousHistory WarningKind = "ambiguous-history"
	WarningUnknownLabel     WarningKind = "unknown-label"
	WarningFallbackLayout   WarningKind = "fallback-layout"
)

func (w ExtractionWarning) String() string {
	return fmt.Sprintf("%s %s: %s (%s)", w.Dialect, w.Word, w.Kind, w.Detail)
}

// NormalizationWarning records an extracted token that was dropped because
// it is not a well-formed keyword.
type NormalizationWarning struct {
	Dialect Dialect `json:"dialect"`
	Token   string  `json:"token"`
	Reason  string  `json:"reason"`
}

func (w NormalizationWarning) String() string {
	return fmt.Sprintf("%s %q: %s", w.Dialect, w.Token, w.Reason)
}

// ClassificationConflict records a keyword observed as both reserved and
// non-reserved within one dialect. Reserved always wins.
type ClassificationConflict struct {
	Dialect     Dialect `json:"dialect"`
	Text        string  `json:"text"`
	Reserved    int     `json:"reserved"`
	NonReserved int     `json:"nonReserved"`
}

func (c ClassificationConflict) String() string {
	return fmt.Sprintf("%s %s: reserved in %d rows, non-reserved in %d rows", c.Dialect, c.Text, c.Reserved, c.NonReserved)
}
