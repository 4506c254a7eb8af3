package cmd

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"os"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
)

// findDeclaredNames returns the names declared by tn's Names method.
// The method must consist of a single return of a []string composite literal
// whose elements are constant strings, so that the names are known at
// generation time.
func findDeclaredNames(info *types.Info, syntax []*ast.File, tn *types.TypeName) ([]string, error) {
	fn, err := findNamesMethod(tn)
	if err != nil {
		return nil, err
	}

	astFile := findAstFileForToken(fn.Pos(), syntax)
	if astFile == nil {
		return nil, errors.Errorf("%s.Names: source not found", tn.Name())
	}

	nodes, _ := astutil.PathEnclosingInterval(astFile, fn.Pos(), fn.Pos())
	var decl *ast.FuncDecl
	for _, node := range nodes {
		if fd, ok := node.(*ast.FuncDecl); ok {
			decl = fd
			break
		}
	}

	if decl == nil || decl.Body == nil {
		return nil, errors.Errorf("%s.Names: declaration not found", tn.Name())
	}

	lit, err := returnedCompositeLit(decl)
	if err != nil {
		return nil, errors.Wrapf(err, "%s.Names", tn.Name())
	}

	names := make([]string, 0, len(lit.Elts))
	seen := mapset.NewThreadUnsafeSet()
	for i, elt := range lit.Elts {
		if _, ok := elt.(*ast.KeyValueExpr); ok {
			return nil, errors.Errorf("%s.Names: element %d: indexed elements are not supported", tn.Name(), i)
		}

		tv, ok := info.Types[elt]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return nil, errors.Errorf("%s.Names: element %d is not a constant string", tn.Name(), i)
		}

		name := constant.StringVal(tv.Value)
		if name == "" {
			return nil, errors.Errorf("%s.Names: element %d is empty", tn.Name(), i)
		}

		if !seen.Add(name) {
			return nil, errors.Errorf("%s.Names: duplicate name found: %q", tn.Name(), name)
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, errors.Errorf("%s.Names: no names declared", tn.Name())
	}

	return names, nil
}

// findNamesMethod finds the Names() []string method of tn's value method set.
func findNamesMethod(tn *types.TypeName) (*types.Func, error) {
	obj, _, _ := types.LookupFieldOrMethod(tn.Type(), false, tn.Pkg(), "Names")
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, errors.Errorf("type %s has no Names method with a value receiver", tn.Name())
	}

	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return nil, errors.Errorf("%s.Names must have the signature func() []string", tn.Name())
	}

	s, ok := sig.Results().At(0).Type().Underlying().(*types.Slice)
	if !ok {
		return nil, errors.Errorf("%s.Names must have the signature func() []string", tn.Name())
	}

	if b, ok := s.Elem().Underlying().(*types.Basic); !ok || b.Info()&types.IsString == 0 {
		return nil, errors.Errorf("%s.Names must have the signature func() []string", tn.Name())
	}

	return fn, nil
}

// returnedCompositeLit returns the composite literal decl returns, if decl
// is a single return statement.
func returnedCompositeLit(decl *ast.FuncDecl) (*ast.CompositeLit, error) {
	if len(decl.Body.List) != 1 {
		return nil, errors.New("body must be a single return statement")
	}

	ret, ok := decl.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, errors.New("body must be a single return statement")
	}

	lit, ok := astutil.Unparen(ret.Results[0]).(*ast.CompositeLit)
	if !ok {
		return nil, errors.New("must return a composite literal")
	}

	return lit, nil
}

func findAstFileForToken(pos token.Pos, syntax []*ast.File) *ast.File {
	for _, file := range syntax {
		if pos < file.FileStart {
			continue
		}
		if pos > file.FileEnd {
			continue
		}
		return file
	}
	return nil
}

// packageIdents returns the package level identifiers of scope, leaving out
// those declared in outputFileName, the file about to be regenerated.
func packageIdents(fset *token.FileSet, scope *types.Scope, outputFileName string) []string {
	out, outErr := os.Stat(outputFileName)

	ret := make([]string, 0, scope.Len())
	for _, name := range scope.Names() {
		if outErr == nil {
			fi, err := os.Stat(fset.Position(scope.Lookup(name).Pos()).Filename)
			if err == nil && os.SameFile(out, fi) {
				continue
			}
		}
		ret = append(ret, name)
	}
	return ret
}
