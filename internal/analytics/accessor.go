package analytics

import "fmt"

// Accessor exposes a scalar measure family bound to one sample. Registered
// methods are reached through Call (or the typed helpers of each family);
// names the family does not define can be routed explicitly to the host
// dataset with Fallback.
type Accessor struct {
	*Dispatcher[float64]
	host StatHost
}

// NewAccessor binds registry to sample. host may be nil when the sample does
// not come from a dataset.
func NewAccessor(registry *Registry[float64], defaultMethod string, sample Sample, host StatHost) *Accessor {
	return &Accessor{
		Dispatcher: NewDispatcher(registry, defaultMethod, sample),
		host:       host,
	}
}

// Fallback evaluates name on the host dataset's own statistics surface
func (a *Accessor) Fallback(name string) (float64, error) {
	if a.host == nil {
		return 0, fmt.Errorf("%w: %s has no method %q and no host dataset", ErrUnknownMeasure, a.Family(), name)
	}
	return a.host.Stat(name)
}
