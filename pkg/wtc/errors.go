package wtc

import "errors"

// ErrNoCommands indicates no queue row matched the read filter. Expected
// during polling; callers apply the configured poll delay and retry.
var ErrNoCommands = errors.New("no matching commands in queue")

// ErrResponseTimeout indicates a request/response round-trip through the
// queue did not see its end sentinel within the caller's budget.
var ErrResponseTimeout = errors.New("timed out waiting for queue response")
