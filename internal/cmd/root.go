package cmd

import (
	"fmt"
	"go/token"
	"go/types"
	"math"
	"os"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stoewer/go-strcase"
	"golang.org/x/tools/go/packages"
)

var log = log15.New("module", "go-enum")

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-enum",
	Short: "Generate named accessors for enum declarations",
	Long: `Generate named accessors for enum declarations.

An enum declaration is a type with a Names() []string method returning a
composite literal of constant strings. For each declared name, go-enum emits a
function returning the canonical enum value, plus the factory variable the
accessors share.

go-enum is designed to be called by go generate. See https://pkg.go.dev/github.com/a-jentleman/go-enum for usage examples.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lvl := log15.LvlInfo
		if flagVerbose {
			lvl = log15.LvlDebug
		}
		log.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.RegisterFlagCompletionFunc("naming-strategy", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var ret []string

			toComplete = normalizeArg(toComplete)
			for _, s := range namingStrategies {
				if strings.HasPrefix(normalizeArg(string(s)), toComplete) {
					ret = append(ret, string(s))
				}
			}

			return ret, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
		})

		strategy, err := parseNamingStrategy(flagNameFunc)
		if err != nil {
			return err
		}

		inputFileName, ok := resolveParameterValue(cmd.Flag("input"), "GOFILE")
		if !ok {
			return errors.New("failed to determine input file")
		}

		pkgName, ok := resolveParameterValue(cmd.Flag("pkg"), "GOPACKAGE")
		if !ok {
			return errors.New("failed to determine package name")
		}

		pkg, err := loadPackage(pkgName, inputFileName)
		if err != nil {
			return err
		}
		log.Debug("loaded package", "pkg", pkg.PkgPath, "files", len(pkg.Syntax))

		typeName, _ := resolveParameterValue(cmd.Flag("type"), "")

		var line int
		lineStr, _ := resolveParameterValue(cmd.Flag("line"), "GOLINE")
		if lineStr != "" {
			_, err = fmt.Sscan(lineStr, &line)
			if err != nil {
				return errors.Wrap(err, "failed to determine source line")
			}
		}

		tn, err := findTypeDecl(pkg.Fset, pkg.TypesInfo, typeName, inputFileName, line)
		if err != nil {
			return err
		}

		// update typeName if it was not specified by the caller, but we found it in the source code
		if typeName == "" && tn.Name() != "" {
			typeName = tn.Name()
		}
		log.Debug("found declaration", "type", typeName)

		names, err := findDeclaredNames(pkg.TypesInfo, pkg.Syntax, tn)
		if err != nil {
			return err
		}
		log.Debug("found declared names", "type", typeName, "names", strings.Join(names, ","))

		factory, _ := resolveParameterValue(cmd.Flag("factory"), "")
		if factory == "" {
			factory = defaultFactoryName(tn)
		}

		prefix, _ := resolveParameterValue(cmd.Flag("prefix"), "")

		reproCmd := os.Args[0]
		if inputFileName != "" {
			reproCmd = fmt.Sprintf("%s --input=%q", reproCmd, inputFileName)
		}

		if pkgName != "" {
			reproCmd = fmt.Sprintf("%s --pkg=%q", reproCmd, pkgName)
		}

		if line > 0 {
			reproCmd = fmt.Sprintf("%s --line=%d", reproCmd, line)
		}

		if cmd.Flag("factory").Changed {
			reproCmd = fmt.Sprintf("%s --factory=%q", reproCmd, factory)
		}

		if prefix != "" {
			reproCmd = fmt.Sprintf("%s --prefix=%q", reproCmd, prefix)
		}

		if strategy != none {
			reproCmd = fmt.Sprintf("%s --naming-strategy=%s", reproCmd, strategy)
		}

		outputFileName, ok := resolveParameterValue(cmd.Flag("output"), "")
		if !ok {
			outputFileName = fmt.Sprintf("%s_enum.go", strcase.SnakeCase(typeName))
		}

		taken := packageIdents(pkg.Fset, tn.Pkg().Scope(), outputFileName)
		accessors, err := accessorNames(names, prefix, strategy, factory, taken)
		if err != nil {
			return err
		}

		f, err := generateEnumCode(pkgName, tn, accessors, factory, reproCmd)
		if err != nil {
			return err
		}

		out, cleanup, err := openOutputFile(outputFileName)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := f.Render(out); err != nil {
			return errors.Wrapf(err, "failed to render %s", outputFileName)
		}
		log.Info("generated enum accessors", "type", typeName, "accessors", len(accessors), "output", outputFileName)
		return nil
	},
	Example: "go-enum --input example.go --output text_align_enum.go --pkg example --type TextAlign --prefix Align --naming-strategy PascalCase",
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVarP(&flagInput, "input", "i", "", "input file to scan. If not specified, input defaults to the value of $GOFILE, which is set by go generate")
	fs.StringVarP(&flagOutput, "output", "o", "", "output file to create. If not specified, output defaults to the value of <type>_enum.go. As special cases, you can specify <STDOUT> or <STDERR> to output to standard output or standard error")
	fs.StringVarP(&flagPkg, "pkg", "p", "", "package name for the generated file. If not specified, pkg defaults to the value of $GOPACKAGE which is set by go generate")
	fs.StringVarP(&flagType, "type", "t", "", "type name to generate accessors for. If not specified, it attempts to find the type using $GOLINE and $GOFILE")
	fs.StringVarP(&flagFactory, "factory", "f", "", "name of the generated factory variable. By default, the type name with an upper case first letter followed by an s is used")
	fs.StringVar(&flagPrefix, "prefix", "", "prefix prepended to every generated accessor name")
	fs.IntVarP(&flagLine, "line", "l", 0, "Specify the line to search for types from if a type name is not specified. If not specified, line defaults to the value of $GOLINE which is set by go generate.")
	fs.StringVarP(&flagNameFunc, "naming-strategy", "n", "none", "Specify a naming strategy to use. Valid choices are: none, camelCase, PascalCase, snake_case, and UPPER_SNAKE_CASE. The naming strategy is applied to each declared name to build its accessor name; the prefix is prepended afterwards.")
	_ = fs.MarkHidden("line")

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug output to standard error")
}

var (
	flagInput    string
	flagOutput   string
	flagPkg      string
	flagType     string
	flagFactory  string
	flagPrefix   string
	flagLine     int
	flagNameFunc string
	flagVerbose  bool
)

// resolveParameterValue returns the parameter value from f if it was specified
// by the user. Otherwise, if env is not empty, it looks up the value from the
// environment variable named env.
func resolveParameterValue(f *pflag.Flag, env string) (string, bool) {
	if f.Changed {
		return f.Value.String(), true
	}

	if env != "" {
		return os.LookupEnv(env)
	}

	return f.DefValue, false
}

// loadPackage loads the package of file inputFileName.
func loadPackage(pkgName, inputFileName string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedDeps |
			packages.NeedSyntax |
			packages.NeedImports},
		fmt.Sprintf("file=%s", inputFileName))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package of %s", inputFileName)
	}

	var ret *packages.Package
	for _, pkg := range pkgs {
		if pkg.Name != pkgName {
			continue
		}

		if ret != nil {
			return nil, errors.Errorf("multiple packages found with name %s", pkgName)
		}

		ret = pkg
	}

	if ret == nil {
		return nil, errors.Errorf("no packages found with name %s", pkgName)
	}

	return ret, nil
}

// findTypeDecl find the relevant *types.TypeName from fset & info.
// If name is passed, a type with that name is searched for.
// Otherwise, the first type after line in inputFileName is returned.
// If the next declaration after line in inputFileName is not a *types.TypeName,
// an error is returned.
func findTypeDecl(fset *token.FileSet, info *types.Info, name, inputFileName string, line int) (*types.TypeName, error) {
	if name != "" {
		return findTypeDeclByName(info, name)
	}

	return findTypeDeclByPosition(fset, info, inputFileName, line)
}

// findTypeDeclByPosition finds the next *type.TypeName in inputFileName after line
func findTypeDeclByPosition(fset *token.FileSet, info *types.Info, inputFileName string, line int) (*types.TypeName, error) {
	var ret *types.TypeName
	var closestObject types.Object
	closest := math.MaxInt32
	for _, object := range info.Defs {
		if object == nil {
			continue
		}

		p := fset.Position(object.Pos())
		if !sameFile(p.Filename, inputFileName) {
			continue
		}

		if p.Line < line || closest < p.Line {
			continue
		}

		ret = nil // we found something closer than our current closest thing
		closestObject = object

		c, ok := object.(*types.TypeName)
		if !ok {
			continue
		}

		ret = c
		closest = p.Line
	}

	if ret == nil {
		if closestObject != nil {
			return nil, errors.Errorf("failed to determine type: closest declaration is not a named type: %v", closestObject)
		}
		return nil, errors.New("failed to determine type")
	}

	return ret, nil
}

// findTypeDeclByName finds the the *types.TypeName in info named name.
func findTypeDeclByName(info *types.Info, name string) (*types.TypeName, error) {
	for _, object := range info.Defs {
		if object == nil {
			continue
		}

		c, ok := object.(*types.TypeName)
		if !ok {
			continue
		}

		if c.Name() != name {
			continue
		}

		return c, nil
	}

	return nil, errors.Errorf("type %q not found", name)
}

// sameFile determines if a and b point to the same file
func sameFile(a, b string) bool {
	as, err := os.Stat(a)
	if err != nil {
		panic(err)
	}

	bs, err := os.Stat(b)
	if err != nil {
		panic(err)
	}

	return os.SameFile(as, bs)
}

// openOutputFile opens/creates the file to write the output to.
// The returned func is the function to use to "close" the file.
func openOutputFile(name string) (*os.File, func(), error) {
	switch name {
	case "<STDOUT>":
		return os.Stdout, func() { _ = os.Stdout.Sync() }, nil
	case "<STDERR>":
		return os.Stderr, func() { _ = os.Stderr.Sync() }, nil
	default:
		ret, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return ret, func() { _ = ret.Close() }, nil
	}
}
