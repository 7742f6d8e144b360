package contract

import "errors"

// ErrInvalidMessage rejects an append whose sender is outside the
// user/bot enum or whose content is empty, before anything is written.
var ErrInvalidMessage = errors.New("message requires a user or bot sender and non-empty content")
