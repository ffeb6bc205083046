// Package structtag builds introspection elements from Go types.
//
// Legacy tags are read from struct field tags under the "legacy" key and
// from YAML mix-in documents. A blank field named "_" carries class-level
// tags:
//
//	type Person struct {
//		_    struct{} `legacy:"rootName=person;ignoreProperties=secret"`
//		Name string   `legacy:"property=fullName"`
//		Age  int      `legacy:"serialize.include=NON_DEFAULT"`
//	}
//
// Tag text is a ';' separated list of entries. Each entry is
// "tagName[.attr][=value]"; an entry without attr sets the tag's value, and
// an entry without value uses the tag's default (true for boolean markers,
// "" for names, "defaultReference" for references). Lists are comma
// separated and subtype entries are written "TypeName:discriminator".
//
// Type names in tag text (handler types, type overrides, views, subtypes)
// are resolved through a Registry.
//
// Mix-ins attach tags to types whose source cannot carry them, and are the
// only way to tag methods and parameters:
//
//	types:
//	  - type: Person
//	    tags: typeName=P
//	    fields:
//	      Age: ignore
//	    methods:
//	      SetAge:
//	        tags: setter=age
//	        params:
//	          - name: age
//	            tags: property=age
//
// Mix-in tags replace struct tags of the same kind.
package structtag
