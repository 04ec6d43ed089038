// Package welfare implements social welfare functions: scalar summaries of
// a distribution that reward higher levels and, for most of them, penalize
// dispersion.
package welfare

import "github.com/apodego/apode/internal/analytics"

// Family is the name the welfare measures are registered under
const Family = "welfare"

// Method names
const (
	MethodUtilitarian = "utilitarian"
	MethodRawlsian    = "rawlsian"
	MethodIsoelastic  = "isoelastic"
	MethodSen         = "sen"
	MethodTheilL      = "theill"
	MethodTheilT      = "theilt"

	DefaultMethod = MethodUtilitarian
)

var registry = analytics.NewRegistry[float64](Family)

func init() {
	registry.Register(MethodUtilitarian, utilitarian)
	registry.Register(MethodRawlsian, rawlsian)
	registry.Register(MethodIsoelastic, isoelastic, analytics.OptAlpha)
	registry.Register(MethodSen, sen)
	registry.Register(MethodTheilL, theilL)
	registry.Register(MethodTheilT, theilT)
}

// Registry returns the welfare registry
func Registry() *analytics.Registry[float64] {
	return registry
}

// List returns the registered welfare methods
func List() []string {
	return registry.Names()
}

// Accessor evaluates welfare measures on one sample
type Accessor struct {
	*analytics.Accessor
}

// New binds the welfare family to sample. host may be nil.
func New(sample analytics.Sample, host analytics.StatHost) *Accessor {
	return &Accessor{Accessor: analytics.NewAccessor(registry, DefaultMethod, sample, host)}
}

// Utilitarian evaluates the mean
func (a *Accessor) Utilitarian() (float64, error) {
	return a.Call(MethodUtilitarian)
}

// Rawlsian evaluates the welfare of the worst-off unit
func (a *Accessor) Rawlsian() (float64, error) {
	return a.Call(MethodRawlsian)
}

// Isoelastic evaluates the constant-elasticity welfare function with
// inequality aversion alpha
func (a *Accessor) Isoelastic(alpha analytics.Alpha) (float64, error) {
	return a.Call(MethodIsoelastic, analytics.WithAlpha(alpha))
}

// Sen evaluates the mean discounted by the Gini coefficient
func (a *Accessor) Sen() (float64, error) {
	return a.Call(MethodSen)
}

// TheilL evaluates the mean discounted by the Theil-L index
func (a *Accessor) TheilL() (float64, error) {
	return a.Call(MethodTheilL)
}

// TheilT evaluates the mean discounted by the Theil-T index
func (a *Accessor) TheilT() (float64, error) {
	return a.Call(MethodTheilT)
}
