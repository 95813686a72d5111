package reminder

import (
	"errors"
	"fmt"
)

// Kind classifies registration failures so callers can dispatch without
// string matching. All kinds are deterministic for identical inputs.
type Kind string

const (
	KindConsentDenied   Kind = "CONSENT_DENIED"
	KindMalformedPlate  Kind = "MALFORMED_PLATE"
	KindUnknownDistrict Kind = "UNKNOWN_DISTRICT"
	KindContactMismatch Kind = "CONTACT_MISMATCH"
	KindInvalidInput    Kind = "INVALID_INPUT"
)

// Error is the single failure type the policy returns. Detail is
// human-readable only; machine handling goes through Kind.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func NewError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// KindOf returns the kind carried by err, or "" for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
