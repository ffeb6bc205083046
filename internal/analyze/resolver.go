package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"legacy-bridge/structtag"
)

// declared stands in for a type that exists in source but not in this
// process.
type declared struct{}

var declaredType = reflect.TypeFor[declared]()

// scopeResolver resolves tag type names against a package scope. Names are
// either local ("Money") or qualified by an imported package name
// ("money.Cents"). The handler sentinels resolve everywhere.
type scopeResolver struct {
	pkg       *types.Package
	sentinels *structtag.Registry
}

var _ structtag.Resolver = (*scopeResolver)(nil)

func newResolver(pkg *types.Package) *scopeResolver {
	return &scopeResolver{pkg: pkg, sentinels: structtag.NewRegistry()}
}

func (r *scopeResolver) Lookup(name string) (reflect.Type, error) {
	if t, err := r.sentinels.Lookup(name); err == nil {
		return t, nil
	}

	if r.find(name) == nil {
		return nil, fmt.Errorf("%q: %w", name, structtag.ErrUnknownType)
	}

	return declaredType, nil
}

func (r *scopeResolver) find(name string) *types.TypeName {
	scope, local := r.pkg.Scope(), name

	if qualifier, rest, ok := strings.Cut(name, "."); ok {
		pkg := r.imported(qualifier)
		if pkg == nil {
			return nil
		}

		scope, local = pkg.Scope(), rest
	}

	tn, _ := scope.Lookup(local).(*types.TypeName)

	return tn
}

func (r *scopeResolver) imported(name string) *types.Package {
	if name == r.pkg.Name() {
		return r.pkg
	}

	for _, imp := range r.pkg.Imports() {
		if imp.Name() == name {
			return imp
		}
	}

	return nil
}
