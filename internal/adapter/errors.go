package adapter

import "errors"

var (
	// ErrUnauthorized covers 401 and 403: the badge token is missing,
	// expired, or lacks the right to the operation.
	ErrUnauthorized = errors.New("plant api unauthorized")

	// ErrValidation covers 400, 409 and 422: the plant rejected the
	// submission content. Still retried by the sync engine; surfaced
	// distinctly so supervisors can spot rejects in the queue.
	ErrValidation = errors.New("plant api rejected submission")

	// ErrRemote covers 5xx: the plant API itself is failing.
	ErrRemote = errors.New("plant api error")

	// ErrUnavailable covers transport-level failures: DNS, refused
	// connections, timeouts. The request never produced an HTTP status.
	ErrUnavailable = errors.New("plant api unreachable")
)
