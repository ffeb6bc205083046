package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"

	"go.uber.org/zap"

	"legacy-bridge/internal/diagnostic"
	"legacy-bridge/legacy"
	"legacy-bridge/structtag"
	"legacy-bridge/tag"
)

// Checker validates the legacy tags of a TypeGraph.
type Checker struct {
	tagKey string
	logger *zap.Logger
}

// NewChecker creates a Checker reading the given struct tag key,
// structtag.DefaultTagKey when empty.
func NewChecker(tagKey string, logger *zap.Logger) *Checker {
	if tagKey == "" {
		tagKey = structtag.DefaultTagKey
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checker{tagKey: tagKey, logger: logger.Named("check")}
}

// classTags only take effect on a type, through a "_" field.
var classTags = []struct {
	kind tag.Kind
	name string
}{
	{tag.KindIgnoreType, "ignoreType"},
	{tag.KindPropertyOrder, "propertyOrder"},
	{tag.KindTypeName, "typeName"},
	{tag.KindRootName, "rootName"},
	{tag.KindFilter, "filter"},
	{tag.KindAutoDetect, "autoDetect"},
}

// Check parses every legacy tag in g and reports what is wrong with it.
func (c *Checker) Check(g *TypeGraph) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, pkg := range g.SortedPackages() {
		res := newResolver(pkg.types)
		members := 0

		for _, id := range pkg.Types {
			members += c.checkType(&diags, g.Types[id], res)
		}

		diags.AddInfo(diagnostic.At(pkg.Path, "", token.Position{}), diagnostic.CodeSummary,
			fmt.Sprintf("checked %d types, %d tagged members", len(pkg.Types), members))
	}

	diags.Sort()

	return diags
}

func (c *Checker) checkType(diags *diagnostic.Diagnostics, t *TypeInfo, res structtag.Resolver) int {
	tagged := 0

	for i := range t.Fields {
		f := &t.Fields[i]

		text, ok := f.LookupTag(c.tagKey)
		if !ok {
			continue
		}

		tagged++

		if text == "-" {
			continue
		}

		member := f.Name
		if f.IsBlank() {
			member = ""
		}

		at := diagnostic.At(t.Qualified(), member, f.Pos)

		set, err := structtag.ParseSet(text, res)
		if err != nil {
			diags.AddError(at, code(err), err.Error())
			continue
		}

		if f.IsBlank() {
			continue
		}

		shadowed(diags, at, set)

		for _, ct := range classTags {
			if set.HasTag(ct.kind) {
				diags.AddWarning(at, diagnostic.CodeShadowedTag,
					fmt.Sprintf("%s only applies to a type, move it to a \"_\" field", ct.name))
			}
		}
	}

	c.logger.Debug("checked type", zap.Stringer("type", t.ID), zap.Int("tagged", tagged))

	return tagged
}

// shadowed warns about tags that can never win against another tag on the
// same member.
func shadowed(diags *diagnostic.Diagnostics, at diagnostic.Diagnostic, set tag.Set) {
	if set.HasTag(tag.KindManagedReference) && set.HasTag(tag.KindBackReference) {
		diags.AddWarning(at, diagnostic.CodeShadowedTag, "backReference is ignored, managedReference wins")
	}

	s, hasSerialize := tag.Find[tag.Serialize](set)

	if raw, ok := tag.Find[tag.RawValue](set); ok && raw.Value && s.Using != nil && s.Using != legacy.NoneSerializerType {
		diags.AddWarning(at, diagnostic.CodeShadowedTag, "rawValue is ignored, serialize.using wins")
	}

	if hasSerialize && set.HasTag(tag.KindWriteNullProperties) {
		diags.AddWarning(at, diagnostic.CodeShadowedTag, "writeNullProperties is ignored, serialize decides inclusion")
	}
}

// CheckMixins validates a mix-in file against the loaded types. Mix-in
// type names resolve like registry names: bare or package-qualified.
func (c *Checker) CheckMixins(g *TypeGraph, m *structtag.Mixins, file string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	at := func(typeName, member string) diagnostic.Diagnostic {
		return diagnostic.At(typeName, member, token.Position{Filename: file})
	}

	parse := func(d diagnostic.Diagnostic, text string, res structtag.Resolver) {
		if _, err := structtag.ParseSet(text, res); err != nil {
			diags.AddError(d, code(err), err.Error())
		}
	}

	for _, tm := range m.Types {
		found := g.Lookup(tm.Type)

		switch len(found) {
		case 0:
			diags.AddError(at(tm.Type, ""), diagnostic.CodeUnknownType, "no loaded type has this name")
			continue
		case 1:
		default:
			names := make([]string, 0, len(found))
			for _, t := range found {
				names = append(names, t.ID.String())
			}

			diags.AddError(at(tm.Type, ""), diagnostic.CodeInvalidValue,
				fmt.Sprintf("ambiguous, qualify it: %v", names))

			continue
		}

		t := found[0]
		res := newResolver(t.Package.types)
		name := t.Qualified()

		parse(at(name, ""), tm.Tags, res)

		for _, field := range slices.Sorted(maps.Keys(tm.Fields)) {
			if !t.Struct || t.Field(field) == nil {
				diags.AddError(at(name, field), diagnostic.CodeUnknownMember, "no such field")
				continue
			}

			parse(at(name, field), tm.Fields[field], res)
		}

		for _, method := range slices.Sorted(maps.Keys(tm.Methods)) {
			mm := tm.Methods[method]

			info := t.Method(method)
			if info == nil {
				diags.AddError(at(name, method), diagnostic.CodeUnknownMember, "no such method")
				continue
			}

			if len(mm.Params) > info.Params {
				diags.AddError(at(name, method), diagnostic.CodeInvalidValue,
					fmt.Sprintf("%d parameter mix-ins for %d parameters", len(mm.Params), info.Params))
			}

			parse(at(name, method), mm.Tags, res)

			for i, p := range mm.Params {
				parse(at(name, fmt.Sprintf("%s(%d)", method, i)), p.Tags, res)
			}
		}
	}

	c.logger.Debug("checked mix-ins", zap.String("file", file), zap.Int("types", len(m.Types)))

	return diags
}

// code maps a structtag error to its diagnostic code.
func code(err error) string {
	switch {
	case errors.Is(err, structtag.ErrUnknownTag):
		return diagnostic.CodeUnknownTag
	case errors.Is(err, structtag.ErrUnknownType):
		return diagnostic.CodeUnknownType
	case errors.Is(err, structtag.ErrUnknownMember):
		return diagnostic.CodeUnknownMember
	default:
		return diagnostic.CodeInvalidValue
	}
}
