package machine

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnresolved means the current host could not be mapped to a machine
// scope. Machine-scoped operations must fail fast on it; raw list operations
// stay available.
var ErrUnresolved = errors.New("cannot resolve current machine")

// hostname is patched in tests.
var hostname = os.Hostname

// Resolver determines which machine scope applies to the current host.
//
// Resolution order: the explicit Override wins; otherwise, when the
// Hostnames map is non-empty, the host name must appear in it; otherwise the
// bare host name is the scope.
type Resolver struct {
	Override  string
	Hostnames map[string]string
}

// Current returns the machine scope for this host.
func (r *Resolver) Current() (string, error) {
	if r.Override != "" {
		return r.Override, nil
	}
	host, err := hostname()
	if err != nil || host == "" {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}
	if len(r.Hostnames) > 0 {
		scope, ok := r.Hostnames[host]
		if !ok {
			return "", fmt.Errorf("%w: host %q not in machines map", ErrUnresolved, host)
		}
		return scope, nil
	}
	return host, nil
}
