package market

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means the price request did not complete
	ErrNetwork = errors.New("price api request failed")
	// ErrBadResponse means the price API answered with a failure status or
	// a body that could not be decoded
	ErrBadResponse = errors.New("price api returned a bad response")
	// ErrUnknownRegion is returned for region keys outside Regions
	ErrUnknownRegion = errors.New("unknown region")
)

// BadResponseError carries the status of a non-success price API response
type BadResponseError struct {
	StatusCode int
	URL        string
	Body       string // truncated
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("price api returned status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Is reports ErrBadResponse as a match
func (e *BadResponseError) Is(target error) bool {
	return target == ErrBadResponse
}
