package enum

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Value is a value of the enumeration declared by D. Values returned by an
// [Enum] are canonical: every lookup of the same name yields the same pointer,
// and [Value.Equals] holds only between a canonical value and itself.
//
// Copies, including values filled by UnmarshalText, are not canonical. Use
// [Value.Refresh] to get the canonical value back.
type Value[D Declaration] struct {
	enum    *Enum[D]
	name    string
	ordinal int
}

// Name returns the declared name of v.
func (v *Value[D]) Name() string {
	return v.name
}

// Ordinal returns the position of v in the declaration.
func (v *Value[D]) Ordinal() int {
	return v.ordinal
}

// Enum returns the factory v belongs to.
func (v *Value[D]) Enum() *Enum[D] {
	if v.enum == nil {
		return Of[D]()
	}
	return v.enum
}

// Translate returns the translation of v's name. A declaration whose
// translations omit the name is faulty and yields ErrAmbiguousName.
func (v *Value[D]) Translate() (string, error) {
	e := v.Enum()
	s, ok := e.Translations()[v.name]
	if !ok {
		return "", errors.Wrapf(ErrAmbiguousName, "%s has no translation for %q", e.typeName, v.name)
	}
	return s, nil
}

// HashCode returns a key derived from v's type, name and ordinal. It is
// stable within a process only.
func (v *Value[D]) HashCode() string {
	return hashCode(v.Enum().typeName, v.name, v.ordinal)
}

// CompareValue returns v itself: values compare by identity.
func (v *Value[D]) CompareValue() any {
	return v
}

// Equals reports whether other is the very same value as v.
func (v *Value[D]) Equals(other Comparable) bool {
	if other == nil {
		return false
	}
	return v.CompareValue() == other.CompareValue()
}

// Refresh returns the canonical value with v's name.
func (v *Value[D]) Refresh() (*Value[D], error) {
	return v.Enum().ValueOf(v.name)
}

// String implements [fmt.Stringer]. It returns the translation of v, or
// Type(name) if the declaration has no translation for v.
func (v *Value[D]) String() string {
	s, err := v.Translate()
	if err != nil {
		return fmt.Sprintf("%s(%s)", v.Enum().shortName, v.name)
	}
	return s
}

// MarshalText implements [encoding.TextMarshaler]
func (v *Value[D]) MarshalText() ([]byte, error) {
	return []byte(v.name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. The receiver becomes a
// copy of the canonical value named by text. A zero receiver resolves text
// against Of[D]() on the [DefaultRegistry], so its Refresh returns the
// default registry's value even when other code uses [WithRegistry].
func (v *Value[D]) UnmarshalText(text []byte) error {
	c, err := v.Enum().ValueOf(string(text))
	if err != nil {
		return err
	}
	*v = *c
	return nil
}

func hashCode(typeName, name string, ordinal int) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(typeName))
	h.Write([]byte{0})
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(ordinal)))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	_ Instantiatable[Declaration] = (*Value[Declaration])(nil)
	_ fmt.Stringer                = (*Value[Declaration])(nil)
	_ encoding.TextMarshaler      = (*Value[Declaration])(nil)
	_ encoding.TextUnmarshaler    = (*Value[Declaration])(nil)
)
