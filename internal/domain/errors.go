package domain

import "errors"

// Sentinel errors shared by the data source and the search controller.
// Data source implementations wrap one of these so failures can be classified with errors.Is.
var (
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")
)

// ClassifyError maps a data source error onto an ErrorKind.
// Anything that is not a malformed payload is treated as a network failure.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrMalformedResponse):
		return ErrorKindMalformedResponse
	default:
		return ErrorKindNetwork
	}
}
