package example

// TextAlign demonstrates an enum using the default translations
//
//go:generate go-enum
type TextAlign struct{}

// Names implements [enum.Declaration].
func (TextAlign) Names() []string {
	return []string{"LEFT", "CENTER", "RIGHT"}
}

// HTTPMethod demonstrates translations and prefixed accessors
//
//go:generate go-enum --prefix Method --naming-strategy PascalCase
type HTTPMethod struct{}

// Names implements [enum.Declaration].
func (HTTPMethod) Names() []string {
	return []string{"get", "head", "post", "delete"}
}

// Translations implements [enum.Translator].
func (HTTPMethod) Translations() map[string]string {
	return map[string]string{
		"get":    "GET",
		"head":   "HEAD",
		"post":   "POST",
		"delete": "DELETE",
	}
}
