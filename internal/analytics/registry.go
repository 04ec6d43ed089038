package analytics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Func computes a result of type R for a sample
type Func[R any] func(s Sample, opts Options) (R, error)

// MeasureFunc is the signature of every scalar measure
type MeasureFunc = Func[float64]

// Entry is a registered implementation and the option keys it accepts
type Entry[R any] struct {
	Name    string
	Accepts []string
	Fn      Func[R]
}

// Check rejects options the entry does not accept
func (e Entry[R]) Check(opts Options) error {
	for _, key := range opts.Keys() {
		if !e.accepts(key) {
			if len(e.Accepts) == 0 {
				return fmt.Errorf("%w: %s takes no options, got %q", ErrInvalidOption, e.Name, key)
			}
			return fmt.Errorf("%w: %s accepts [%s], got %q",
				ErrInvalidOption, e.Name, strings.Join(e.Accepts, ", "), key)
		}
	}
	return nil
}

func (e Entry[R]) accepts(key string) bool {
	for _, k := range e.Accepts {
		if k == key {
			return true
		}
	}
	return false
}

// Registry maps method names to implementations for one family.
// Families populate it from init and only read it afterwards.
type Registry[R any] struct {
	family  string
	mu      sync.RWMutex
	entries map[string]Entry[R]
	aliases map[string]string
}

// NewRegistry creates an empty registry for the named family
func NewRegistry[R any](family string) *Registry[R] {
	return &Registry[R]{
		family:  family,
		entries: make(map[string]Entry[R]),
		aliases: make(map[string]string),
	}
}

// Family returns the family name
func (r *Registry[R]) Family() string {
	return r.family
}

// Register adds an implementation. Registering a name again replaces the
// earlier entry, and aliases of that name follow the replacement.
func (r *Registry[R]) Register(name string, fn Func[R], accepts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.aliases, name)
	r.entries[name] = Entry[R]{Name: name, Accepts: accepts, Fn: fn}
}

// Alias makes alias resolve to the entry registered under name. Aliasing
// again repoints the alias; alias may not shadow a registered name.
func (r *Registry[R]) Alias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		panic(fmt.Sprintf("analytics: alias %q targets unknown %s measure %q", alias, r.family, name))
	}
	if _, ok := r.entries[alias]; ok {
		panic(fmt.Sprintf("analytics: alias %q shadows %s measure %q", alias, r.family, alias))
	}
	r.aliases[alias] = name
}

// Resolve returns the entry for name or one of its aliases
func (r *Registry[R]) Resolve(name string) (Entry[R], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	entry, ok := r.entries[name]
	if !ok {
		return Entry[R]{}, fmt.Errorf("%w: %s has no method %q (available: %s)",
			ErrUnknownMeasure, r.family, name, strings.Join(r.names(), ", "))
	}
	return entry, nil
}

// Names returns the canonical method names in sorted order. Aliases are
// not listed.
func (r *Registry[R]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry[R]) names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatcher binds a registry to one sample and routes method names,
// including the empty default name, to registered implementations
type Dispatcher[R any] struct {
	registry      *Registry[R]
	defaultMethod string
	sample        Sample
}

// NewDispatcher binds registry to sample with the given default method
func NewDispatcher[R any](registry *Registry[R], defaultMethod string, sample Sample) *Dispatcher[R] {
	return &Dispatcher[R]{
		registry:      registry,
		defaultMethod: defaultMethod,
		sample:        sample,
	}
}

// Call runs method with opts. An empty method selects the default.
func (d *Dispatcher[R]) Call(method string, opts ...Option) (R, error) {
	var zero R
	if method == "" {
		method = d.defaultMethod
	}
	entry, err := d.registry.Resolve(method)
	if err != nil {
		return zero, err
	}
	o := NewOptions(opts...)
	if err := entry.Check(o); err != nil {
		return zero, err
	}
	return entry.Fn(d.sample, o)
}

// Default returns the method selected by an empty name
func (d *Dispatcher[R]) Default() string {
	return d.defaultMethod
}

// Methods returns the registered method names
func (d *Dispatcher[R]) Methods() []string {
	return d.registry.Names()
}

// Family returns the family the dispatcher routes to
func (d *Dispatcher[R]) Family() string {
	return d.registry.Family()
}

// Sample returns the bound sample
func (d *Dispatcher[R]) Sample() Sample {
	return d.sample
}
