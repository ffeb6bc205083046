package analyze

import (
	"go/token"
	"go/types"
	"reflect"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "legacy-bridge/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeInfo describes a named type in the type graph.
type TypeInfo struct {
	ID      TypeID
	Package *PackageInfo
	Pos     token.Position // Where the type is declared
	Struct  bool           // Whether the underlying type is a struct
	Fields  []FieldInfo    // For structs, every field including blank ones
	Methods []MethodInfo   // Exported methods of the pointer method set
}

// Qualified returns the name as written from other packages, "store.Order".
func (t *TypeInfo) Qualified() string {
	if t.Package == nil {
		return t.ID.Name
	}

	return t.Package.Name + "." + t.ID.Name
}

// Field returns the field with the given name, nil if none.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// Method returns the method with the given name, nil if none.
func (t *TypeInfo) Method(name string) *MethodInfo {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i]
		}
	}

	return nil
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name, "_" for class tag holders
	Exported bool              // Whether the field is exported
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Pos      token.Position    // Where the field is declared
}

// IsBlank reports whether the field is a "_" class tag holder.
func (f *FieldInfo) IsBlank() bool {
	return f.Name == "_"
}

// LookupTag returns the value of the tag with the given key.
func (f *FieldInfo) LookupTag(key string) (string, bool) {
	return f.Tag.Lookup(key)
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// MethodInfo describes a method.
type MethodInfo struct {
	Name   string
	Params int // Parameter count, receiver excluded
	Pos    token.Position
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup finds types by the name a registry would use: the bare name or
// the package-qualified one.
func (g *TypeGraph) Lookup(name string) []*TypeInfo {
	var found []*TypeInfo

	for _, pkg := range g.SortedPackages() {
		for _, id := range pkg.Types {
			t := g.Types[id]
			if t.ID.Name == name || t.Qualified() == name {
				found = append(found, t)
			}
		}
	}

	return found
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package, sorted by name

	types *types.Package
}
