package enum

import (
	"maps"
	"reflect"
	"slices"
	"strconv"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
)

// Enum is the factory of the enumeration declared by D. It is obtained with
// [Of] and is safe for concurrent use.
type Enum[D Declaration] struct {
	decl      D
	id        uint64
	typeName  string
	shortName string
	registry  *Registry
}

// Option configures [Of].
type Option func(*options)

type options struct {
	registry *Registry
}

// WithRegistry makes [Of] use r instead of [DefaultRegistry].
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// Of returns the factory of D. Repeated calls with the same registry return
// the same factory.
func Of[D Declaration](opts ...Option) *Enum[D] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	t := reflect.TypeOf((*D)(nil)).Elem()
	e := &Enum[D]{
		id:        o.registry.newEnumID(),
		typeName:  typeIdentity(t),
		shortName: shortTypeName(t),
		registry:  o.registry,
	}
	return o.registry.enum(t, e).(*Enum[D])
}

// TypeName returns the package qualified name of D.
func (e *Enum[D]) TypeName() string {
	return e.typeName
}

// Registry returns the registry holding e's canonical values.
func (e *Enum[D]) Registry() *Registry {
	return e.registry
}

// Names returns a copy of the declared names in declaration order.
func (e *Enum[D]) Names() []string {
	return slices.Clone(e.decl.Names())
}

// ValueOf returns the canonical value declared as name. The name must match a
// declared name exactly.
func (e *Enum[D]) ValueOf(name string) (*Value[D], error) {
	ordinal, err := e.lookup(name)
	if err != nil {
		return nil, err
	}

	v := &Value[D]{enum: e, name: name, ordinal: ordinal}
	return e.registry.canonical(e.valueKey(v), v).(*Value[D]), nil
}

// valueKey returns the registry key of v. Distinct types may print the same
// name, so the key is scoped to the factory.
func (e *Enum[D]) valueKey(v *Value[D]) string {
	return strconv.FormatUint(e.id, 10) + "/" + v.HashCode()
}

// MustValueOf is like ValueOf but panics if name cannot be resolved.
// It backs generated accessors, whose names are known to be declared.
func (e *Enum[D]) MustValueOf(name string) *Value[D] {
	v, err := e.ValueOf(name)
	if err != nil {
		panic(err)
	}
	return v
}

// FromOrdinal returns the canonical value at position ordinal of the
// declaration.
func (e *Enum[D]) FromOrdinal(ordinal int) (*Value[D], error) {
	names := e.decl.Names()
	if ordinal < 0 || ordinal >= len(names) {
		return nil, errors.Wrapf(ErrUnknownOrdinal, "%s has no value with ordinal %d", e.typeName, ordinal)
	}
	return e.ValueOf(names[ordinal])
}

// ParseOrdinal is like FromOrdinal for an ordinal written in base 10.
func (e *Enum[D]) ParseOrdinal(s string) (*Value[D], error) {
	ordinal, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: ordinal %q is not an integer", e.typeName, s)
	}
	return e.FromOrdinal(ordinal)
}

// Has reports whether name is declared. A name declared more than once is a
// faulty declaration and yields ErrAmbiguousName.
func (e *Enum[D]) Has(name string) (bool, error) {
	_, err := e.lookup(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAmbiguousName):
		return false, err
	default:
		return false, nil
	}
}

// Ordinals maps each declared name to its ordinal.
func (e *Enum[D]) Ordinals() (map[string]int, error) {
	names := e.decl.Names()
	ret := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := ret[n]; dup {
			return nil, errors.Wrapf(ErrAmbiguousName, "%s declares %q more than once", e.typeName, n)
		}
		ret[n] = i
	}
	return ret, nil
}

// Translations returns a copy of the map from each declared name to its
// translation. Unless D implements [Translator], every name translates to
// itself.
func (e *Enum[D]) Translations() map[string]string {
	if t, ok := any(e.decl).(Translator); ok {
		return maps.Clone(t.Translations())
	}

	names := e.decl.Names()
	ret := make(map[string]string, len(names))
	for _, n := range names {
		ret[n] = n
	}
	return ret
}

// Enumerations returns one canonical value per declared name, in declaration
// order. If filter names are given, only declared names contained in filter
// are returned; undeclared filter names are ignored.
func (e *Enum[D]) Enumerations(filter ...string) ([]*Value[D], error) {
	var keep mapset.Set
	if len(filter) > 0 {
		keep = mapset.NewThreadUnsafeSet()
		for _, f := range filter {
			keep.Add(f)
		}
	}

	names := e.decl.Names()
	ret := make([]*Value[D], 0, len(names))
	for _, n := range names {
		if keep != nil && !keep.Contains(n) {
			continue
		}

		v, err := e.ValueOf(n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// lookup returns the ordinal of name, scanning the whole declaration so that
// duplicates are always reported.
func (e *Enum[D]) lookup(name string) (int, error) {
	if name == "" {
		return -1, errors.Wrapf(ErrInvalidArgument, "%s: empty name", e.typeName)
	}

	ordinal, matches := -1, 0
	for i, n := range e.decl.Names() {
		if n != name {
			continue
		}
		if matches == 0 {
			ordinal = i
		}
		matches++
	}

	switch {
	case matches == 0:
		return -1, errors.Wrapf(ErrUnknownName, "%s has no value named %q", e.typeName, name)
	case matches > 1:
		return -1, errors.Wrapf(ErrAmbiguousName, "%s declares %q %d times", e.typeName, name, matches)
	}
	return ordinal, nil
}

var _ Enumerable[Declaration] = (*Enum[Declaration])(nil)
