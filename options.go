package noise

import "log/slog"

// Option configures a Generator during creation.
// Use functional options to customize Generator behavior.
//
// Example:
//
//	// Default: GOMAXPROCS workers, 64 batches per tile
//	g := noise.NewGenerator()
//
//	// Two workers, small tiles, own logger
//	g := noise.NewGenerator(noise.WithWorkers(2), noise.WithTileSize(16), noise.WithLogger(l))
type Option func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	workers  int
	tileSize int
	logger   *slog.Logger
}

// defaultOptions returns the default generator options.
func defaultOptions() generatorOptions {
	return generatorOptions{
		workers:  0,   // GOMAXPROCS
		tileSize: 0,   // parallel.DefaultTileSize
		logger:   nil, // package logger
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *generatorOptions) {
		o.workers = n
	}
}

// WithTileSize sets the number of 4-sample batches per tile.
// Zero or negative uses the default of 64.
func WithTileSize(batches int) Option {
	return func(o *generatorOptions) {
		o.tileSize = batches
	}
}

// WithLogger sets a logger for this Generator only.
// Without it the Generator logs through [Logger] at call time.
func WithLogger(l *slog.Logger) Option {
	return func(o *generatorOptions) {
		o.logger = l
	}
}
