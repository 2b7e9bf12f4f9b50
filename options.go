package ucf

import (
	"github.com/klauspost/compress/flate"
	"github.com/spf13/afero"
)

type config struct {
	fs     afero.Fs
	limits Limits
	level  int
}

func defaultConfig() config {
	return config{
		fs:     afero.NewOsFs(),
		limits: defaultLimits(),
		level:  flate.DefaultCompression,
	}
}

type Option func(*config)

// WithFS sets the filesystem used for path-based Open and Save. The default
// is the operating system filesystem; tests typically pass
// afero.NewMemMapFs().
func WithFS(fs afero.Fs) Option {
	return func(c *config) { c.fs = fs }
}

// WithLimits sets custom read limits. Zero fields keep their defaults.
func WithLimits(l Limits) Option {
	return func(c *config) { c.limits = l.withDefaults() }
}

// WithCompressionLevel sets the deflate level used for non-mimetype entries
// on save, in the range accepted by flate (flate.BestSpeed through
// flate.BestCompression).
func WithCompressionLevel(level int) Option {
	return func(c *config) { c.level = level }
}
