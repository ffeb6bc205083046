package structtag

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"legacy-bridge/internal/common"
	"legacy-bridge/tag"
)

// builder turns the collected attributes of one tag into a tag value.
type builder func(a *attrs) (tag.Tag, error)

var builders = map[string]builder{
	"property": func(a *attrs) (tag.Tag, error) { return tag.Property{Value: a.str("value", "")}, nil },
	"getter":   func(a *attrs) (tag.Tag, error) { return tag.Getter{Value: a.str("value", "")}, nil },
	"setter":   func(a *attrs) (tag.Tag, error) { return tag.Setter{Value: a.str("value", "")}, nil },
	"typeName": func(a *attrs) (tag.Tag, error) { return tag.TypeName{Value: a.str("value", "")}, nil },
	"rootName": func(a *attrs) (tag.Tag, error) { return tag.RootName{Value: a.str("value", "")}, nil },
	"filter":   func(a *attrs) (tag.Tag, error) { return tag.Filter{Value: a.str("value", "")}, nil },
	"inject":   func(a *attrs) (tag.Tag, error) { return tag.Inject{Value: a.str("value", "")}, nil },

	"managedReference": func(a *attrs) (tag.Tag, error) {
		return tag.ManagedReference{Value: a.str("value", tag.DefaultReference)}, nil
	},
	"backReference": func(a *attrs) (tag.Tag, error) {
		return tag.BackReference{Value: a.str("value", tag.DefaultReference)}, nil
	},

	"ignore": func(a *attrs) (tag.Tag, error) {
		v, err := a.boolean("value", true)
		return tag.Ignore{Value: v}, err
	},
	"ignoreType": func(a *attrs) (tag.Tag, error) {
		v, err := a.boolean("value", true)
		return tag.IgnoreType{Value: v}, err
	},
	"rawValue": func(a *attrs) (tag.Tag, error) {
		v, err := a.boolean("value", true)
		return tag.RawValue{Value: v}, err
	},
	"value": func(a *attrs) (tag.Tag, error) {
		v, err := a.boolean("value", true)
		return tag.Value{Value: v}, err
	},
	"writeNullProperties": func(a *attrs) (tag.Tag, error) {
		v, err := a.boolean("value", true)
		return tag.WriteNullProperties{Value: v}, err
	},

	"ignoreProperties": func(a *attrs) (tag.Tag, error) {
		unknown, err := a.boolean("ignoreUnknown", false)
		return tag.IgnoreProperties{Value: a.list("value"), IgnoreUnknown: unknown}, err
	},
	"propertyOrder": func(a *attrs) (tag.Tag, error) {
		alpha, err := a.boolean("alphabetic", false)
		return tag.PropertyOrder{Value: a.list("value"), Alphabetic: alpha}, err
	},

	"anyGetter": func(*attrs) (tag.Tag, error) { return tag.AnyGetter{}, nil },
	"anySetter": func(*attrs) (tag.Tag, error) { return tag.AnySetter{}, nil },
	"creator":   func(*attrs) (tag.Tag, error) { return tag.Creator{}, nil },

	"view": func(a *attrs) (tag.Tag, error) {
		views, err := a.types("value")
		return tag.View{Value: views}, err
	},

	"serialize":   buildSerialize,
	"deserialize": buildDeserialize,
	"subTypes":    buildSubTypes,
	"autoDetect":  buildAutoDetect,
}

// TagNames returns the tag names understood in tag text, sorted.
func TagNames() []string {
	return slices.Sorted(maps.Keys(builders))
}

func buildSerialize(a *attrs) (tag.Tag, error) {
	var (
		s   tag.Serialize
		err error
	)

	if err = a.handlerTypes(&s.Using, &s.KeyUsing, &s.ContentUsing, &s.As, &s.KeyAs, &s.ContentAs); err != nil {
		return nil, err
	}

	if s.Include, err = enumAttr(a, "include", tag.ParseInclusion); err != nil {
		return nil, err
	}

	if s.Typing, err = enumAttr(a, "typing", tag.ParseTyping); err != nil {
		return nil, err
	}

	return s, nil
}

func buildDeserialize(a *attrs) (tag.Tag, error) {
	var d tag.Deserialize

	if err := a.handlerTypes(&d.Using, &d.KeyUsing, &d.ContentUsing, &d.As, &d.KeyAs, &d.ContentAs); err != nil {
		return nil, err
	}

	return d, nil
}

func buildSubTypes(a *attrs) (tag.Tag, error) {
	items := a.list("value")
	subtypes := make([]tag.SubType, 0, len(items))

	for _, item := range items {
		typeName, disc, _ := common.Cut(item, ":")

		t, err := a.lookup("value", typeName)
		if err != nil {
			return nil, err
		}

		subtypes = append(subtypes, tag.SubType{Value: t, Name: disc})
	}

	return tag.SubTypes{Value: subtypes}, nil
}

func buildAutoDetect(a *attrs) (tag.Tag, error) {
	var (
		ad  tag.AutoDetect
		err error
	)

	for _, name := range a.list("value") {
		m, err := tag.ParseMethod(strings.ToUpper(name))
		if err != nil {
			return nil, fmt.Errorf("%s.value: %w: %w", a.tag, ErrInvalidValue, err)
		}

		ad.Value = append(ad.Value, m)
	}

	for attr, dst := range map[string]*tag.Visibility{
		"getterVisibility":   &ad.GetterVisibility,
		"isGetterVisibility": &ad.IsGetterVisibility,
		"setterVisibility":   &ad.SetterVisibility,
		"creatorVisibility":  &ad.CreatorVisibility,
		"fieldVisibility":    &ad.FieldVisibility,
	} {
		if *dst, err = enumAttr(a, attr, tag.ParseVisibility); err != nil {
			return nil, err
		}
	}

	return ad, nil
}

// attrs collects the attributes given for one tag. A nil value records an
// attribute given without "=value".
type attrs struct {
	tag    string
	reg    Resolver
	values map[string]*string
	used   map[string]bool
}

func (a *attrs) get(attr string) (string, bool) {
	a.used[attr] = true

	v, ok := a.values[attr]
	if !ok || v == nil {
		return "", false
	}

	return *v, true
}

func (a *attrs) bare(attr string) bool {
	v, ok := a.values[attr]
	return ok && v == nil
}

func (a *attrs) str(attr, def string) string {
	if v, ok := a.get(attr); ok {
		return v
	}

	return def
}

// boolean returns the attribute value; absent yields def, bare yields true.
func (a *attrs) boolean(attr string, def bool) (bool, error) {
	v, ok := a.get(attr)
	if !ok {
		return def || a.bare(attr), nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s.%s=%q: %w", a.tag, attr, v, ErrInvalidValue)
	}

	return b, nil
}

func (a *attrs) list(attr string) []string {
	v, _ := a.get(attr)
	return common.SplitList(v)
}

func (a *attrs) lookup(attr, name string) (reflect.Type, error) {
	t, err := a.reg.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", a.tag, attr, err)
	}

	return t, nil
}

func (a *attrs) typ(attr string) (reflect.Type, error) {
	v, ok := a.get(attr)
	if !ok || v == "" {
		return nil, nil
	}

	return a.lookup(attr, v)
}

func (a *attrs) types(attr string) ([]reflect.Type, error) {
	names := a.list(attr)
	if names == nil {
		return nil, nil
	}

	out := make([]reflect.Type, 0, len(names))

	for _, n := range names {
		t, err := a.lookup(attr, n)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

// handlerTypes fills the using, keyUsing, contentUsing, as, keyAs and
// contentAs attributes, in that order.
func (a *attrs) handlerTypes(dst ...*reflect.Type) error {
	names := []string{"using", "keyUsing", "contentUsing", "as", "keyAs", "contentAs"}

	for i, d := range dst {
		t, err := a.typ(names[i])
		if err != nil {
			return err
		}

		*d = t
	}

	return nil
}

// unused reports attributes no builder asked for.
func (a *attrs) unused() error {
	for _, attr := range slices.Sorted(maps.Keys(a.values)) {
		if !a.used[attr] {
			return fmt.Errorf("%s.%s: %w", a.tag, attr, ErrUnknownTag)
		}
	}

	return nil
}

func enumAttr[T any](a *attrs, attr string, parse func(string) (T, error)) (T, error) {
	v, ok := a.get(attr)
	if !ok {
		var zero T
		return zero, nil
	}

	e, err := parse(strings.ToUpper(v))
	if err != nil {
		return e, fmt.Errorf("%s.%s: %w: %w", a.tag, attr, ErrInvalidValue, err)
	}

	return e, nil
}

// Parse parses legacy tag text into tags, in order of first appearance.
// A nil resolver resolves only the sentinel types.
func Parse(text string, reg Resolver) ([]tag.Tag, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	var order []*attrs

	groups := make(map[string]*attrs)

	for entry := range strings.SplitSeq(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, hasValue := common.Cut(entry, "=")
		name, attr, hasAttr := common.Cut(key, ".")

		if _, ok := builders[name]; !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownTag)
		}

		g, ok := groups[name]
		if !ok {
			g = &attrs{tag: name, reg: reg, values: map[string]*string{}, used: map[string]bool{}}
			groups[name] = g
			order = append(order, g)
		}

		if !hasAttr {
			if !hasValue {
				continue
			}

			attr = "value"
		}

		if attr == "" {
			return nil, fmt.Errorf("%q: empty attribute: %w", entry, ErrUnknownTag)
		}

		if _, dup := g.values[attr]; dup {
			return nil, fmt.Errorf("%s.%s: duplicate attribute: %w", name, attr, ErrInvalidValue)
		}

		if hasValue {
			g.values[attr] = &value
		} else {
			g.values[attr] = nil
		}
	}

	tags := make([]tag.Tag, 0, len(order))

	for _, g := range order {
		t, err := builders[g.tag](g)
		if err != nil {
			return nil, err
		}

		if err := g.unused(); err != nil {
			return nil, err
		}

		tags = append(tags, t)
	}

	return tags, nil
}

// ParseSet is Parse collected into a tag.Set.
func ParseSet(text string, reg Resolver) (tag.Set, error) {
	tags, err := Parse(text, reg)
	if err != nil {
		return tag.Set{}, err
	}

	return tag.NewSet(tags...)
}
