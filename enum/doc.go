// Package enum emulates enumerations: closed, ordered sets of named constants
// with exactly one canonical instance per name.
//
// A concrete enumeration is any type implementing [Declaration]:
//
//	type TextAlign struct{}
//
//	func (TextAlign) Names() []string {
//		return []string{"LEFT", "CENTER", "RIGHT"}
//	}
//
// [Of] returns the factory for that type. Values are obtained by name or by
// ordinal (the zero-based position in Names) and are canonicalized through a
// [Registry], so two lookups of the same name return the same pointer:
//
//	aligns := enum.Of[TextAlign]()
//	left, err := aligns.ValueOf("LEFT")
//	same, _ := aligns.FromOrdinal(0) // same == left
//
// Named accessors such as LEFT() are not resolved at run time. They are
// generated by the go-enum command, see [github.com/a-jentleman/go-enum].
package enum
