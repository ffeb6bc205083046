// Package databind models the contract of the current serialization engine.
//
// It defines the handler interfaces the engine invokes (Serializer,
// Deserializer, KeyDeserializer), the streaming Generator and Parser they
// operate on, and the value types returned by introspection (PropertyName,
// Include, Typing, ReferenceProperty, NamedType, VisibilityChecker).
//
// The Generator and Parser are backed by github.com/goccy/go-json.
package databind
