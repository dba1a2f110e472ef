package endpoint

import "errors"

var (
	// ErrUnsupportedResourceType means the caller asked for a resource type
	// that has no API endpoint. This is an integration error, not a runtime one.
	ErrUnsupportedResourceType = errors.New("unsupported resource type")
	ErrFormatMismatch          = errors.New("endpoint format mismatch")
)
