package structtag_test

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"legacy-bridge/databind"
	"legacy-bridge/introspect"
	"legacy-bridge/legacy"
	"legacy-bridge/structtag"
)

type Order struct {
	_      struct{} `legacy:"rootName=order;ignoreProperties.ignoreUnknown"`
	ID     string   `legacy:"property=id"`
	Status string   `legacy:"serialize.using=upperSerializer;serialize.include=NON_EMPTY"`
	Note   string   `legacy:"writeNullProperties=false"`
	Cache  string   `legacy:"-"`
}

type upperSerializer struct{}

func (upperSerializer) Serialize(value any, gen legacy.JSONGenerator, _ legacy.SerializerProvider) error {
	return gen.WriteString(strings.ToUpper(value.(string)))
}

func ExampleSource_Describe() {
	reg := structtag.NewRegistry()
	if err := reg.Add(reflect.TypeFor[Order](), reflect.TypeFor[upperSerializer]()); err != nil {
		panic(err)
	}

	typ, err := structtag.NewSource(reg, structtag.DefaultConfig()).Describe(reflect.TypeFor[Order]())
	if err != nil {
		panic(err)
	}

	li := introspect.New()

	fmt.Println(li.FindRootName(typ.Class), li.FindIgnoreUnknownProperties(typ.Class))
	fmt.Println(li.FindNameForSerialization(typ.Field("ID")))
	fmt.Println(li.FindSerializationInclusion(typ.Field("Note"), databind.IncludeAlways))
	fmt.Println(li.HasIgnoreMarker(typ.Field("Cache")))

	s, err := li.FindSerializer(typ.Field("Status"))
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer

	_ = s.Serialize("shipped", databind.NewGenerator(&buf), nil)
	fmt.Println(buf.String(), li.FindSerializationInclusion(typ.Field("Status"), databind.IncludeAlways))

	// Output:
	// order true
	// id
	// NON_NULL
	// true
	// "SHIPPED" NON_EMPTY
}
