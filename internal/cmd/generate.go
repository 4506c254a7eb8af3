package cmd

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

const enumPkg = "github.com/a-jentleman/go-enum/enum"

type namingStrategyName string

const (
	none           namingStrategyName = "none"
	camelCase      namingStrategyName = "camelCase"
	pascalCase     namingStrategyName = "PascalCase"
	snakeCase      namingStrategyName = "snake_case"
	upperSnakeCase namingStrategyName = "UPPER_SNAKE_CASE"
)

var namingStrategies = []namingStrategyName{none, camelCase, pascalCase, snakeCase, upperSnakeCase}

// parseNamingStrategy returns the naming strategy s refers to, ignoring case,
// dashes and underscores.
func parseNamingStrategy(s string) (namingStrategyName, error) {
	for _, n := range namingStrategies {
		if normalizeArg(string(n)) == normalizeArg(s) {
			return n, nil
		}
	}
	return none, errors.Errorf("unknown naming strategy %q", s)
}

// apply transforms a declared name according to n.
func (n namingStrategyName) apply(name string) string {
	switch n {
	case camelCase:
		return strcase.LowerCamelCase(name)
	case pascalCase:
		return strcase.UpperCamelCase(name)
	case snakeCase:
		return strcase.SnakeCase(name)
	case upperSnakeCase:
		return strcase.UpperSnakeCase(name)
	default:
		return name
	}
}

// normalizeArg lower cases s and strips dashes and underscores.
func normalizeArg(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
}

// accessor pairs a declared name with the function generated for it.
type accessor struct {
	Name string
	Func string
}

// accessorNames builds one accessor per declared name. Accessor names must be
// valid, distinct identifiers that do not collide with the factory or with
// any identifier in taken, the package level names the generated file must
// coexist with.
func accessorNames(names []string, prefix string, strategy namingStrategyName, factory string, taken []string) ([]accessor, error) {
	ret := make([]accessor, 0, len(names))
	seen := mapset.NewThreadUnsafeSet()
	seen.Add(factory)

	declared := mapset.NewThreadUnsafeSet()
	for _, n := range taken {
		declared.Add(n)
	}
	if declared.Contains(factory) {
		return nil, errors.Errorf("factory %s collides with an identifier declared in the package", factory)
	}

	for _, name := range names {
		id := safeIndent(prefix + strategy.apply(name))
		if !token.IsIdentifier(id) || id == "_" {
			return nil, errors.Errorf("accessor for %q: %q is not a valid identifier", name, id)
		}

		if id == factory {
			return nil, errors.Errorf("accessor for %q collides with factory %s", name, factory)
		}

		if declared.Contains(id) {
			return nil, errors.Errorf("accessor for %q collides with %s declared in the package", name, id)
		}

		if !seen.Add(id) {
			return nil, errors.Errorf("accessor for %q collides with another accessor: %s", name, id)
		}

		ret = append(ret, accessor{Name: name, Func: id})
	}

	return ret, nil
}

// generateEnumCode generates the factory and accessors of tn
func generateEnumCode(pkgName string, tn *types.TypeName, accessors []accessor, factory string, reproCmd string) (f *jen.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = errors.Errorf("failed to generate code for %s: %v", tn.Name(), r)
		}
	}()

	xVarName := safeIndent("x", factory)

	f = jen.NewFile(pkgName)
	f.HeaderComment("Code generated by go-enum; DO NOT EDIT.")
	f.HeaderComment("Command: " + reproCmd)
	f.ImportName(enumPkg, "enum")

	f.Line()
	generateFactory(f, tn, factory)

	f.Line()
	generateAccessors(f, tn, accessors, factory)

	generateCompileCheckFunction(f, tn, xVarName)

	f.Line()

	return f, nil
}

// generateFactory generates the package level factory variable.
func generateFactory(f *jen.File, tn *types.TypeName, factory string) {
	f.Commentf("%s is the enum factory of %s.", factory, tn.Name())
	f.Var().Id(factory).Op("=").Qual(enumPkg, "Of").Types(jen.Id(tn.Name())).Call()
}

// generateAccessors generates one function per declared name returning its
// canonical value.
func generateAccessors(f *jen.File, tn *types.TypeName, accessors []accessor, factory string) {
	for _, a := range accessors {
		f.Commentf("%s returns the canonical %s value named %q.", a.Func, tn.Name(), a.Name)
		f.Func().Id(a.Func).Params().Op("*").Qual(enumPkg, "Value").Types(jen.Id(tn.Name())).Block(
			jen.Return(jen.Id(factory).Dot("MustValueOf").Call(jen.Lit(a.Name))),
		)
		f.Line()
	}
}

// generateCompileCheckFunction generates the _() function that will fail to compile if tn no longer declares names.
func generateCompileCheckFunction(f *jen.File, tn *types.TypeName, xVarName string) *jen.Statement {
	return f.Func().Id("_").Params().Block(
		jen.Comment(`A "does not implement" compiler error signifies that the declaration has changed.`),
		jen.Comment(`Re-run the go-enum command to generate the accessors again.`),
		jen.Var().Id(xVarName).Id(tn.Name()),
		jen.Var().Id("_").Qual(enumPkg, "Declaration").Op("=").Id(xVarName),
	)
}

// defaultFactoryName returns the default factory variable name for tn
func defaultFactoryName(tn *types.TypeName) string {
	return exportedName(tn.Name()) + "s"
}

// safeIndent returns an identifier that is safe to use (not a keyword,
// and not already used). want is the requested identifier; not is a
// list of identifiers that are already used.
func safeIndent(want string, not ...string) string {
	if token.IsKeyword(want) {
		return safeIndent("_"+want, not...)
	}

	for _, s := range not {
		if want == s {
			return safeIndent("_"+want, not...)
		}
	}

	return want
}

// exportedName returns s with the first character replaced
// with its upper case version if it is lower case.
func exportedName(s string) string {
	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		panic("s is empty")
	}

	start = unicode.ToUpper(start)
	return string(start) + s[size:]
}
