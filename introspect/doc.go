// Package introspect resolves serialization decisions from legacy tags.
//
// The engine calls one LegacyIntrospector method per decision per structural
// element. Each method walks a fixed chain of tags and returns either a
// definite answer or no opinion, leaving the default to the caller.
//
// Key types:
//   - Annotated / Member: the structural element abstraction (Class, Field,
//     Method, Parameter)
//   - Opinion: tri-state outcome, never conflated with a zero value
//   - AnnotationIntrospector: the full decision contract
//   - NopIntrospector: no opinion on everything
//   - LegacyIntrospector: precedence chains over the legacy vocabulary
//   - InstantiationError: a declared handler type could not be constructed
//
// Resolution holds no state between calls; a LegacyIntrospector is safe for
// concurrent use.
package introspect
