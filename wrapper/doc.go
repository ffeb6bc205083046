// Package wrapper adapts legacy handlers and tags to the current engine.
//
// SerializerWrapper, DeserializerWrapper and KeyDeserializerWrapper hold a
// legacy handler and implement the corresponding databind interface by
// forwarding every call, bridging the generator, parser, provider and
// context arguments into their legacy shapes.
//
// Proxy exposes the attributes of a legacy tag by name, so a tag can be handed
// to current-style consumers without being decomposed; AutoDetect is the view
// used for visibility merging.
package wrapper
