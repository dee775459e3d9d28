package model

import "errors"

// ErrMalformedEvent means an event's payload is inconsistent with its status
// byte. It aborts the whole conversion; every other input problem is handled
// by dropping or approximating the offending note.
var ErrMalformedEvent = errors.New("malformed event")

// ErrUnsupportedTimeFormat is returned for SMPTE-timed files, which have no
// tick-per-beat mapping.
var ErrUnsupportedTimeFormat = errors.New("unsupported time format")
