package structtag

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultTagKey is the struct tag key holding legacy tags.
const DefaultTagKey = "legacy"

var (
	ErrUnknownTag    = errors.New("unknown tag")
	ErrUnknownType   = errors.New("unknown type")
	ErrUnknownMember = errors.New("unknown member")
	ErrInvalidValue  = errors.New("invalid value")
)

// Config holds configuration for a Source.
type Config struct {
	// TagKey is the struct tag key read for legacy tags.
	TagKey string
	// IncludeUnexported describes untagged unexported fields too. Tagged
	// unexported fields are always described.
	IncludeUnexported bool
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default source configuration.
func DefaultConfig() Config {
	return Config{
		TagKey:            DefaultTagKey,
		IncludeUnexported: false,
		Logger:            zap.NewNop(),
	}
}
