// Package analyze loads Go packages and checks the legacy struct tags they
// carry.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of named types, their tagged fields and their methods,
// then parses every tag with the structtag grammar. Type names inside tags
// resolve against the declaring package scope and its imports.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: fields, class tags and methods of one named type
//   - Checker: turns a TypeGraph into diagnostics
package analyze
