// Package tag defines the legacy declarative tag vocabulary.
//
// Every tag is an immutable value type identified by a Kind. A structural
// element carries at most one tag of each kind, collected in a Set.
//
// Key types:
//   - Kind: identifies a tag type (Property, Serialize, Ignore, ...)
//   - Tag: implemented by every tag value
//   - Set: the tags attached to one element, keyed by Kind
//   - Find: generic typed lookup over anything holding tags
//
// Zero values follow the legacy defaults wherever Go allows it: Inclusion,
// Typing and Visibility all default to their first constant. Boolean tags whose
// legacy default is true (Ignore, RawValue, Value, IgnoreType,
// WriteNullProperties) must be built with Value set explicitly; the structtag
// package does this for bare tag keys.
package tag
