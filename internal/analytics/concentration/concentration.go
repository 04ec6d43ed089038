// Package concentration implements indices of how unevenly a total is
// shared among the units of a sample.
package concentration

import "github.com/apodego/apode/internal/analytics"

// Family is the name the concentration measures are registered under
const Family = "concentration"

// Method names
const (
	MethodHerfindahl         = "herfindahl"
	MethodRosenbluth         = "rosenbluth"
	MethodConcentrationRatio = "concentration_ratio"

	DefaultMethod = MethodHerfindahl
)

var registry = analytics.NewRegistry[float64](Family)

func init() {
	registry.Register(MethodHerfindahl, herfindahl, analytics.OptNormalized)
	registry.Register(MethodRosenbluth, rosenbluth)
	registry.Register(MethodConcentrationRatio, concentrationRatio, analytics.OptK)
}

// Registry returns the concentration registry
func Registry() *analytics.Registry[float64] {
	return registry
}

// List returns the registered concentration methods
func List() []string {
	return registry.Names()
}

// Accessor evaluates concentration measures on one sample
type Accessor struct {
	*analytics.Accessor
}

// New binds the concentration family to sample. host may be nil.
func New(sample analytics.Sample, host analytics.StatHost) *Accessor {
	return &Accessor{Accessor: analytics.NewAccessor(registry, DefaultMethod, sample, host)}
}

// Herfindahl evaluates the Herfindahl-Hirschman index, normalized unless
// WithNormalized(false) is passed
func (a *Accessor) Herfindahl(opts ...analytics.Option) (float64, error) {
	return a.Call(MethodHerfindahl, opts...)
}

// Rosenbluth evaluates the Rosenbluth index
func (a *Accessor) Rosenbluth() (float64, error) {
	return a.Call(MethodRosenbluth)
}

// ConcentrationRatio evaluates the share held by the k largest units
func (a *Accessor) ConcentrationRatio(k int) (float64, error) {
	return a.Call(MethodConcentrationRatio, analytics.WithK(k))
}
