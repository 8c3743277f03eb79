// Package snap: functional configuration for Parse.
package snap

import "github.com/go-logr/logr"

// Option mutates parser options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective parser configuration. Fields are unexported;
// public entry points accept ...Option and resolve them internally.
type Options struct {
	mode Mode
	log  logr.Logger
}

// defaultOptions returns the zero-surprise defaults:
//   - ModeAuto (undirectedness inferred from the filename)
//   - logr.Discard() (no warnings emitted)
func defaultOptions() Options {
	return Options{
		mode: ModeAuto,
		log:  logr.Discard(),
	}
}

// WithUndirected forces or disables reverse-edge insertion.
// ModeAuto (the default) infers it from the filename.
func WithUndirected(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithLogger routes parser warnings to l. The default discards them.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		if l.GetSink() != nil {
			o.log = l
		}
	}
}
