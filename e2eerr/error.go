// Package e2eerr defines the error taxonomy shared by the E2E protection
// profiles. Every precondition violation surfaced by a profile package is an
// *Error so callers can dispatch on Kind with errors.As.
package e2eerr

import "fmt"

// Kind identifies the class of precondition a profile or CRC call violated.
type Kind int

const (
	// KindBufferTooSmall means the supplied buffer cannot hold the profile's
	// header at the requested offset.
	KindBufferTooSmall Kind = iota
	// KindLengthTooSmall means length is smaller than the profile's minimum
	// header size (P01 also reports a length above its 256-byte maximum with
	// this kind).
	KindLengthTooSmall
	// KindUnknownMode means an unrecognised DataIDMode (or equivalent
	// profile-specific selector) was passed.
	KindUnknownMode
	// KindDataIDOutOfRange means a data ID does not fit the profile's field
	// width.
	KindDataIDOutOfRange
	// KindInvalidDataIDList means a data-ID table does not have the size a
	// profile's counter-indexed lookup requires.
	KindInvalidDataIDList
)

func (k Kind) String() string {
	switch k {
	case KindBufferTooSmall:
		return "buffer too small"
	case KindLengthTooSmall:
		return "length too small"
	case KindUnknownMode:
		return "unknown mode"
	case KindDataIDOutOfRange:
		return "data id out of range"
	case KindInvalidDataIDList:
		return "invalid data id list"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned for every precondition violation
// in the profile packages. Profile identifies which package raised it ("p01",
// "p02", ...); Msg carries a short, specific diagnostic.
type Error struct {
	Kind    Kind
	Profile string
	Msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Profile, e.Kind, e.Msg)
}

// New builds an *Error for the given profile, kind and diagnostic.
func New(profile string, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Profile: profile, Msg: msg}
}

// Is reports whether target shares this error's Kind, so callers may write
// errors.Is(err, e2eerr.New("", e2eerr.KindBufferTooSmall, "")) to test only
// the class of failure without caring about the profile or message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
