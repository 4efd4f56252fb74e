package exml

import (
	"fmt"
	"log/slog"
)

// DefaultRootName is the root element written by the encoder.
const DefaultRootName = "LauncherBackup"

const (
	defaultMaxDepth    = 64
	defaultDeclaration = `version="1.0" encoding="UTF-8"`
)

// Option configures a Decoder or an Encoder. Options that only apply to one
// direction are ignored by the other.
type Option func(*options) error

type options struct {
	// decoding
	maxDepth      int
	strictValues  bool
	disallowKinds bool
	logger        *slog.Logger

	// encoding
	indent          *int
	rootName        string
	omitDeclaration bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth: defaultMaxDepth,
		rootName: DefaultRootName,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that sets the maximum element nesting accepted
// by the decoder. The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("exml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// StrictValues makes the decoder fail on a malformed integer value instead of
// substituting the field's default and recording a warning.
func StrictValues() Option {
	return func(o *options) error {
		o.strictValues = true
		return nil
	}
}

// DisallowUnknownKinds makes the decoder fail on an item element whose tag is
// not a known kind instead of skipping it with a warning.
func DisallowUnknownKinds() Option {
	return func(o *options) error {
		o.disallowKinds = true
		return nil
	}
}

// Logger returns an Option that logs each decode warning to l.
func Logger(l *slog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// Indent returns an Option that sets the number of spaces per nesting level.
// Zero produces compact single-line output.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("exml: indent spaces cannot be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// RootName returns an Option that sets the root element name written by the
// encoder.
func RootName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("exml: root name cannot be empty")
		}
		o.rootName = name
		return nil
	}
}

// OmitDeclaration stops the encoder from writing the XML declaration.
func OmitDeclaration() Option {
	return func(o *options) error {
		o.omitDeclaration = true
		return nil
	}
}
