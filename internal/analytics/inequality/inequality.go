// Package inequality implements dispersion indices that are invariant to
// the scale of the variable.
package inequality

import "github.com/apodego/apode/internal/analytics"

// Family is the name the inequality measures are registered under
const Family = "inequality"

// Method names
const (
	MethodGini     = "gini"
	MethodEntropy  = "entropy"
	MethodAtkinson = "atkinson"
	MethodCV       = "cv"
	MethodRRange   = "rrange"
	MethodRAD      = "rad"

	DefaultMethod = MethodGini
)

var registry = analytics.NewRegistry[float64](Family)

func init() {
	registry.Register(MethodGini, gini)
	registry.Register(MethodEntropy, entropy, analytics.OptAlpha)
	registry.Register(MethodAtkinson, atkinson, analytics.OptAlpha)
	registry.Register(MethodCV, cv)
	registry.Register(MethodRRange, rrange)
	registry.Register(MethodRAD, rad)
}

// Registry returns the inequality registry
func Registry() *analytics.Registry[float64] {
	return registry
}

// List returns the registered inequality methods
func List() []string {
	return registry.Names()
}

// Accessor evaluates inequality measures on one sample
type Accessor struct {
	*analytics.Accessor
}

// New binds the inequality family to sample. host may be nil.
func New(sample analytics.Sample, host analytics.StatHost) *Accessor {
	return &Accessor{Accessor: analytics.NewAccessor(registry, DefaultMethod, sample, host)}
}

func (a *Accessor) Gini() (float64, error) {
	return a.Call(MethodGini)
}

// Entropy evaluates the generalized entropy index, GE(0) unless an alpha
// option is passed
func (a *Accessor) Entropy(opts ...analytics.Option) (float64, error) {
	return a.Call(MethodEntropy, opts...)
}

// Atkinson evaluates the Atkinson index with inequality aversion alpha
func (a *Accessor) Atkinson(alpha analytics.Alpha) (float64, error) {
	return a.Call(MethodAtkinson, analytics.WithAlpha(alpha))
}

func (a *Accessor) CV() (float64, error) {
	return a.Call(MethodCV)
}

func (a *Accessor) RRange() (float64, error) {
	return a.Call(MethodRRange)
}

func (a *Accessor) RAD() (float64, error) {
	return a.Call(MethodRAD)
}
