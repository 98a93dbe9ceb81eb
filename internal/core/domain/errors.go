package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownVersion is returned when a requested version has no release
	// artifact for this platform, or when a version string cannot be parsed.
	ErrUnknownVersion = zerr.New("unknown version")

	// ErrGlobalVersionNotSet is returned when an operation needs the active
	// version but the global version pointer is empty.
	ErrGlobalVersionNotSet = zerr.New("global version not set")

	// ErrChecksumMismatch is returned when a downloaded artifact does not match
	// the checksum published for it.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrUnsupportedPlatform is returned when the host platform has no
	// published release artifacts.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")
)

// UnsuccessfulResponseError reports a non-success HTTP status from the
// release host. It carries the request URL and status code for diagnostics.
type UnsuccessfulResponseError struct {
	URL    string
	Status int
}

func (e *UnsuccessfulResponseError) Error() string {
	return fmt.Sprintf("unsuccessful response from %q: status %d", e.URL, e.Status)
}
