// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Scale is the default provider scale for render jobs: opta, statsbomb
	// or metric.
	Scale string `koanf:"scale"`

	// PitchLength and PitchWidth are the default field extents in field units.
	PitchLength float64 `koanf:"pitch_length"`
	PitchWidth  float64 `koanf:"pitch_width"`

	// Padding is the default margin drawn around the field, in field units.
	Padding float64 `koanf:"padding"`

	// Theme selects the render cosmetics: classic or dark.
	Theme string `koanf:"theme"`

	// PixelsPerUnit sets the raster density of rendered images.
	PixelsPerUnit float64 `koanf:"pixels_per_unit"`

	// MaxPixels caps the total image area per render.
	MaxPixels int `koanf:"max_pixels"`

	// CacheEntries bounds the render cache; zero disables caching.
	CacheEntries int `koanf:"cache_entries"`

	// SurfaceLevels is the default number of contour levels.
	SurfaceLevels int `koanf:"surface_levels"`
}

// New creates a Config with service defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		Scale:         "opta",
		PitchLength:   120,
		PitchWidth:    80,
		Padding:       5,
		Theme:         "classic",
		PixelsPerUnit: 10,
		MaxPixels:     16 << 20,
		CacheEntries:  256,
		SurfaceLevels: 25,
	}
}
