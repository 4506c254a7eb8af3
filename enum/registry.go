package enum

import (
	"reflect"
	"strings"
	"sync"

	"github.com/inconshreveable/log15"
	"github.com/patrickmn/go-cache"
	"go.uber.org/atomic"
)

// Registry holds canonical enumeration values keyed by their factory and hash
// code, and one factory per declaration type. Entries are added on first use and never
// removed. A Registry is safe for concurrent use.
type Registry struct {
	values *cache.Cache
	enums  sync.Map // reflect.Type -> *Enum[D]
	nextID atomic.Uint64
	log    log15.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report newly stored canonical values.
func WithLogger(l log15.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	l := log15.New("module", "enum/registry")
	l.SetHandler(log15.DiscardHandler())

	r := &Registry{
		values: cache.New(cache.NoExpiration, cache.NoExpiration),
		log:    l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by [Of] unless
// [WithRegistry] is given. It is created on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Len returns the number of canonical values stored in r.
func (r *Registry) Len() int {
	return r.values.ItemCount()
}

// canonical stores v under key unless a value is already stored there, and
// returns whichever value ends up stored. Concurrent callers with the same key
// all observe the same winner.
func (r *Registry) canonical(key string, v any) any {
	if stored, ok := r.values.Get(key); ok {
		return stored
	}

	if err := r.values.Add(key, v, cache.NoExpiration); err == nil {
		r.log.Debug("stored canonical value", "key", key, "value", v)
		return v
	}

	// Add only fails when another caller won the race; entries never expire.
	stored, _ := r.values.Get(key)
	return stored
}

// newEnumID returns an id no other factory of r has been given.
func (r *Registry) newEnumID() uint64 {
	return r.nextID.Inc()
}

// enum returns the factory stored for t, storing e if there is none yet.
func (r *Registry) enum(t reflect.Type, e any) any {
	stored, loaded := r.enums.LoadOrStore(t, e)
	if !loaded {
		r.log.Debug("registered enumeration", "type", typeIdentity(t))
	}
	return stored
}

// typeIdentity returns a process-stable name for t: its package path and
// name for named types, its type literal otherwise.
func typeIdentity(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// shortTypeName returns t's name without its package path.
func shortTypeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	s := t.String()
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}
