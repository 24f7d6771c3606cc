package essay

import "errors"

var (
	// ErrMalformedDocument reports unparsable input or a missing root key.
	ErrMalformedDocument = errors.New("malformed essay document")
	// ErrUnreadableFile reports a failure to read an import source.
	ErrUnreadableFile = errors.New("unreadable file")
	// ErrNetworkFailure reports a rejected or unsuccessful submission.
	ErrNetworkFailure = errors.New("network failure")
)
