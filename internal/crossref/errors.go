package crossref

import "errors"

// Common errors returned by the client. The watcher treats all of them
// the same way (skip the entry), but callers that care can tell them apart.
var (
	// ErrNotFound indicates the DOI is not registered with Crossref.
	ErrNotFound = errors.New("DOI not found in Crossref")

	// ErrAPIError indicates a non-success response from the API.
	ErrAPIError = errors.New("Crossref API error")

	// ErrNetworkError indicates a transport-level failure.
	ErrNetworkError = errors.New("network error communicating with Crossref")
)
