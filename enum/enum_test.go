package enum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-jentleman/go-enum/enum"
)

type textAlign struct{}

func (textAlign) Names() []string {
	return []string{"LEFT", "CENTER", "RIGHT"}
}

type duplicated struct{}

func (duplicated) Names() []string {
	return []string{"A", "B", "A"}
}

type translated struct{}

func (translated) Names() []string {
	return []string{"get", "post"}
}

func (translated) Translations() map[string]string {
	return map[string]string{"get": "GET", "post": "POST"}
}

type untranslated struct{}

func (untranslated) Names() []string {
	return []string{"ONE", "TWO"}
}

func (untranslated) Translations() map[string]string {
	return map[string]string{"ONE": "1"}
}

func newAligns() *enum.Enum[textAlign] {
	return enum.Of[textAlign](enum.WithRegistry(enum.NewRegistry()))
}

func TestOf(t *testing.T) {
	r := enum.NewRegistry()
	a := enum.Of[textAlign](enum.WithRegistry(r))
	b := enum.Of[textAlign](enum.WithRegistry(r))
	assert.Same(t, a, b)
	assert.Same(t, r, a.Registry())
	assert.Equal(t, "github.com/a-jentleman/go-enum/enum_test.textAlign", a.TypeName())

	other := enum.Of[textAlign](enum.WithRegistry(enum.NewRegistry()))
	assert.NotSame(t, a, other)

	assert.Same(t, enum.Of[textAlign](), enum.Of[textAlign](enum.WithRegistry(enum.DefaultRegistry())))
}

func TestValueOf(t *testing.T) {
	aligns := newAligns()

	for i, name := range aligns.Names() {
		t.Run(name, func(t *testing.T) {
			v1, err := aligns.ValueOf(name)
			require.NoError(t, err)
			v2, err := aligns.ValueOf(name)
			require.NoError(t, err)

			assert.Same(t, v1, v2)
			assert.True(t, v1.Equals(v2))
			assert.Equal(t, name, v1.Name())
			assert.Equal(t, i, v1.Ordinal())
		})
	}

	assert.Equal(t, 3, aligns.Registry().Len())
}

func TestValueOf_Distinct(t *testing.T) {
	aligns := newAligns()
	names := aligns.Names()

	for _, n1 := range names {
		for _, n2 := range names {
			if n1 == n2 {
				continue
			}
			v1 := aligns.MustValueOf(n1)
			v2 := aligns.MustValueOf(n2)
			assert.False(t, v1.Equals(v2), "%s.Equals(%s)", n1, n2)
		}
	}
}

func TestValueOf_Errors(t *testing.T) {
	aligns := newAligns()

	tests := []struct {
		name string
		want error
	}{
		{"FOO", enum.ErrUnknownName},
		{"NOT_A_NAME", enum.ErrUnknownName},
		{"left", enum.ErrUnknownName},
		{" LEFT", enum.ErrUnknownName},
		{"", enum.ErrInvalidArgument},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%q", test.name), func(t *testing.T) {
			v, err := aligns.ValueOf(test.name)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, test.want), "ValueOf(%q) = %v, want %v", test.name, err, test.want)
		})
	}

	assert.Equal(t, 0, aligns.Registry().Len(), "failed lookups must not store values")
}

func TestValueOf_Ambiguous(t *testing.T) {
	dups := enum.Of[duplicated](enum.WithRegistry(enum.NewRegistry()))

	_, err := dups.ValueOf("A")
	assert.ErrorIs(t, err, enum.ErrAmbiguousName)

	b, err := dups.ValueOf("B")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Ordinal())

	_, err = dups.Ordinals()
	assert.ErrorIs(t, err, enum.ErrAmbiguousName)

	_, err = dups.Enumerations()
	assert.ErrorIs(t, err, enum.ErrAmbiguousName)

	vs, err := dups.Enumerations("B")
	require.NoError(t, err)
	assert.Equal(t, []*enum.Value[duplicated]{b}, vs)
}

func TestMustValueOf(t *testing.T) {
	aligns := newAligns()
	assert.Equal(t, "CENTER", aligns.MustValueOf("CENTER").Name())
	assert.Panics(t, func() { aligns.MustValueOf("FOO") })
}

func TestFromOrdinal(t *testing.T) {
	aligns := newAligns()

	for i, name := range aligns.Names() {
		v, err := aligns.FromOrdinal(i)
		require.NoError(t, err)
		assert.Same(t, aligns.MustValueOf(name), v)
	}

	for _, ordinal := range []int{-1, 3, 100} {
		v, err := aligns.FromOrdinal(ordinal)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, enum.ErrUnknownOrdinal, "FromOrdinal(%d)", ordinal)
	}
}

func TestParseOrdinal(t *testing.T) {
	aligns := newAligns()

	v, err := aligns.ParseOrdinal("2")
	require.NoError(t, err)
	assert.Same(t, aligns.MustValueOf("RIGHT"), v)

	_, err = aligns.ParseOrdinal("3")
	assert.ErrorIs(t, err, enum.ErrUnknownOrdinal)

	for _, s := range []string{"", "one", "1.0", " 1"} {
		_, err = aligns.ParseOrdinal(s)
		assert.ErrorIs(t, err, enum.ErrInvalidArgument, "ParseOrdinal(%q)", s)
	}
}

func TestHas(t *testing.T) {
	aligns := newAligns()

	for _, name := range aligns.Names() {
		ok, err := aligns.Has(name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	for _, name := range []string{"", "FOO", "Left"} {
		ok, err := aligns.Has(name)
		require.NoError(t, err)
		assert.False(t, ok, name)
	}

	dups := enum.Of[duplicated](enum.WithRegistry(enum.NewRegistry()))
	ok, err := dups.Has("A")
	assert.False(t, ok)
	assert.ErrorIs(t, err, enum.ErrAmbiguousName)
}

func TestOrdinals(t *testing.T) {
	aligns := newAligns()

	ordinals, err := aligns.Ordinals()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"LEFT": 0, "CENTER": 1, "RIGHT": 2}, ordinals)

	names := aligns.Names()
	require.Len(t, ordinals, len(names))
	for i, name := range names {
		assert.Equal(t, i, ordinals[name])
	}
}

func TestNames_Copy(t *testing.T) {
	aligns := newAligns()
	names := aligns.Names()
	names[0] = "CHANGED"
	assert.Equal(t, []string{"LEFT", "CENTER", "RIGHT"}, aligns.Names())
}

func TestTranslations(t *testing.T) {
	aligns := newAligns()
	assert.Equal(t, map[string]string{"LEFT": "LEFT", "CENTER": "CENTER", "RIGHT": "RIGHT"}, aligns.Translations())

	methods := enum.Of[translated](enum.WithRegistry(enum.NewRegistry()))
	assert.Equal(t, map[string]string{"get": "GET", "post": "POST"}, methods.Translations())

	got := methods.Translations()
	got["get"] = "FETCH"
	delete(got, "post")
	assert.Equal(t, map[string]string{"get": "GET", "post": "POST"}, methods.Translations())

	tr, err := methods.MustValueOf("get").Translate()
	require.NoError(t, err)
	assert.Equal(t, "GET", tr)
}

func TestEnumerations(t *testing.T) {
	aligns := newAligns()

	all, err := aligns.Enumerations()
	require.NoError(t, err)
	require.Len(t, all, 3)

	seen := make(map[*enum.Value[textAlign]]bool)
	for i, v := range all {
		assert.Equal(t, i, v.Ordinal())
		assert.Same(t, aligns.MustValueOf(v.Name()), v)
		assert.False(t, seen[v], "duplicate %s", v)
		seen[v] = true
	}

	tests := []struct {
		filter []string
		want   []string
	}{
		{[]string{"RIGHT", "LEFT"}, []string{"LEFT", "RIGHT"}},
		{[]string{"CENTER", "CENTER"}, []string{"CENTER"}},
		{[]string{"FOO", "RIGHT"}, []string{"RIGHT"}},
		{[]string{"FOO"}, []string{}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprint(test.filter), func(t *testing.T) {
			vs, err := aligns.Enumerations(test.filter...)
			require.NoError(t, err)

			got := make([]string, 0, len(vs))
			for _, v := range vs {
				got = append(got, v.Name())
			}
			assert.Equal(t, test.want, got)
		})
	}
}
