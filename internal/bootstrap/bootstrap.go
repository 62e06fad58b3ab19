// Package bootstrap verifies the run's environment dependencies before any
// directory API call is attempted.
package bootstrap

import (
	"context"
	"net"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// Status is the tri-state outcome of an environment check.
type Status int

const (
	// StatusPresent means every dependency was usable on first contact.
	StatusPresent Status = iota
	// StatusPrepared means at least one dependency needed a second attempt
	// before it was usable.
	StatusPrepared
	// StatusFailed means a dependency stayed unusable.
	StatusFailed
)

// String returns a log-friendly name for the status.
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusPrepared:
		return "prepared"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result carries the check outcome and, for StatusFailed, the dependency
// error describing which endpoint stayed unreachable.
type Result struct {
	Status Status
	Err    error
}

// Dialer is the subset of net.Dialer the probe needs. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// DefaultEndpoints returns the hosts this report depends on: the token
// endpoint and the Graph API.
func DefaultEndpoints() []string {
	return []string{
		"login.microsoftonline.com:443",
		"graph.microsoft.com:443",
	}
}

// EnsureEndpoints probes TCP reachability of each endpoint. A dial that
// fails once is attempted a second time; success on the retry downgrades the
// overall outcome from present to prepared. Any endpoint failing both
// attempts yields StatusFailed with a DependencyError. The caller decides
// whether a failed result aborts the run.
func EnsureEndpoints(ctx context.Context, dialer Dialer, endpoints []string) Result {
	status := StatusPresent

	for _, endpoint := range endpoints {
		if conn, err := dialer.DialContext(ctx, "tcp", endpoint); err == nil {
			conn.Close()
			continue
		}

		conn, err := dialer.DialContext(ctx, "tcp", endpoint)
		if err != nil {
			return Result{
				Status: StatusFailed,
				Err:    &model.DependencyError{Name: endpoint, Reason: err.Error()},
			}
		}
		conn.Close()
		status = StatusPrepared
	}

	return Result{Status: status}
}
