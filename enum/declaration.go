package enum

// Declaration is implemented by concrete enumeration types. Names returns the
// declared names in declaration order; the position of a name is its ordinal.
//
// Implementations should be value types (typically struct{}) whose zero value
// answers Names, since factories call it on the zero value of the type.
type Declaration interface {
	Names() []string
}

// Translator may be implemented by a [Declaration] to map each declared name to
// a human-readable string. Without it the translation of a name is the name
// itself.
type Translator interface {
	Translations() map[string]string
}

// Comparable is implemented by values that define their own equality.
// Two Comparables are equal if their CompareValue results are identical.
type Comparable interface {
	Equals(other Comparable) bool
	CompareValue() any
}

// Instantiatable is the per-instance surface of an enumeration value.
type Instantiatable[D Declaration] interface {
	Comparable

	Name() string
	Ordinal() int
	Translate() (string, error)
	HashCode() string
	Refresh() (*Value[D], error)
}

// Enumerable is the per-type surface of an enumeration: lookups by name or
// ordinal and views over the whole declaration.
type Enumerable[D Declaration] interface {
	Names() []string
	Ordinals() (map[string]int, error)
	Translations() map[string]string
	Enumerations(filter ...string) ([]*Value[D], error)
	ValueOf(name string) (*Value[D], error)
	FromOrdinal(ordinal int) (*Value[D], error)
	Has(name string) (bool, error)
}
