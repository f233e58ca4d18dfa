package upstream

import (
	"errors"
	"fmt"
)

// ErrNetwork marks transport-level failures against the clinic API. Callers
// surface these with a retry affordance and must not keep stale availability
// on screen.
var ErrNetwork = errors.New("upstream unreachable")

// APIError is a response the clinic API answered with error=true.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.Status, e.Message)
}
