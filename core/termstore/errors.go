package termstore

import "fmt"

// TransportError wraps a network-level failure: connection refused, timeout,
// DNS, or an aborted response body. The remote service never saw or never
// finished the request.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError means the service answered but the answer is unusable: a
// non-2xx status or a payload that does not match the expected schema.
type RemoteError struct {
	Op     string
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote rejected %s: status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("remote rejected %s: %s", e.Op, e.Detail)
}
