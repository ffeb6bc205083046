package analyze

import (
	"cmp"
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	dir    string
	graph  *TypeGraph
	logger *zap.Logger
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir,
// the current directory when empty.
func NewAnalyzer(dir string, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		dir:    dir,
		graph:  NewTypeGraph(),
		logger: logger.Named("analyze"),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./...", "legacy-bridge/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		types: pkg.Types,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		info := &TypeInfo{
			ID:      TypeID{PkgPath: pkg.PkgPath, Name: name},
			Package: pkgInfo,
			Pos:     pkg.Fset.Position(typeName.Pos()),
		}

		if st, ok := named.Underlying().(*types.Struct); ok {
			info.Struct = true

			for i := range st.NumFields() {
				field := st.Field(i)
				info.Fields = append(info.Fields, FieldInfo{
					Name:     field.Name(),
					Exported: field.Exported(),
					Tag:      reflect.StructTag(st.Tag(i)),
					Embedded: field.Embedded(),
					Index:    i,
					Pos:      pkg.Fset.Position(field.Pos()),
				})
			}
		}

		info.Methods = methods(named, pkg)

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	a.logger.Debug("loaded package",
		zap.String("package", pkg.PkgPath),
		zap.Int("types", len(pkgInfo.Types)))
}

// methods lists the exported methods reachable through *T, or T itself for
// interfaces.
func methods(named *types.Named, pkg *packages.Package) []MethodInfo {
	var recv types.Type = types.NewPointer(named)
	if types.IsInterface(named) {
		recv = named
	}

	set := types.NewMethodSet(recv)
	out := make([]MethodInfo, 0, set.Len())

	for sel := range set.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		out = append(out, MethodInfo{
			Name:   fn.Name(),
			Params: fn.Signature().Params().Len(),
			Pos:    pkg.Fset.Position(fn.Pos()),
		})
	}

	slices.SortFunc(out, func(x, y MethodInfo) int { return cmp.Compare(x.Name, y.Name) })

	return out
}

// SortedPackages returns the loaded packages ordered by import path.
func (g *TypeGraph) SortedPackages() []*PackageInfo {
	out := make([]*PackageInfo, 0, len(g.Packages))
	for _, p := range g.Packages {
		out = append(out, p)
	}

	slices.SortFunc(out, func(x, y *PackageInfo) int { return cmp.Compare(x.Path, y.Path) })

	return out
}
