package fetchers

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the World Bank fetcher.
// Query validation failures use models.ErrInvalidQuery.
var (
	ErrNetwork     = errors.New("network error")
	ErrRemote      = errors.New("remote error")
	ErrDecode      = errors.New("decode error")
	ErrEmptyResult = errors.New("empty result")
)

// RemoteError reports a non-2xx response from the API
type RemoteError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %s returned status %d", ErrRemote, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s returned status %d: %s", ErrRemote, e.URL, e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrRemote) match any RemoteError
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
