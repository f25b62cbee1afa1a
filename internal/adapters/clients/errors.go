// Package clients provides the instrumented outbound HTTP client.
package clients

import (
	"context"
	"errors"
	"net"
)

// ErrTransport wraps failures where no HTTP response was received
// (DNS, connect, TLS, timeout, cancellation). Callers translate it into
// domain errors.
var ErrTransport = errors.New("transport failure")

// IsTimeout reports whether err is a deadline or network timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
