package availability

import "errors"

// ErrInvalidRange reports a slot window whose start does not precede its end,
// or a non-positive step. Upstream data like this is logged and contributes
// no intervals; it never fails the booking flow.
var ErrInvalidRange = errors.New("invalid slot range")
