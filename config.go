package disjointset

import "github.com/cockroachdb/errors"

// UnknownPolicy selects how Union treats elements the forest does not manage.
type UnknownPolicy string

const (
	// UnknownReject makes Union return ErrNotFound without mutating the forest.
	UnknownReject UnknownPolicy = "reject"
	// UnknownAdd makes Union register unknown elements as singletons first.
	UnknownAdd UnknownPolicy = "add"
)

// Config controls Forest behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// UnknownElements decides what Union does with an argument that was never
	// registered. Find and Connected always reject unknown elements.
	// Empty means UnknownReject. Default: "reject".
	UnknownElements UnknownPolicy

	// Capacity pre-sizes internal storage for the expected number of
	// elements. It is a hint only; the forest grows past it as needed.
	// Must be >= 0. Default: 0.
	Capacity int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		UnknownElements: UnknownReject,
	}
}

// validateConfig checks that cfg fields are valid and fills in defaults for
// zero values.
func validateConfig(cfg *Config) error {
	switch cfg.UnknownElements {
	case "":
		cfg.UnknownElements = UnknownReject
	case UnknownReject, UnknownAdd:
	default:
		return errors.Newf("disjointset: UnknownElements must be %q or %q, got %q",
			UnknownReject, UnknownAdd, cfg.UnknownElements)
	}
	if cfg.Capacity < 0 {
		return errors.Newf("disjointset: Capacity must be >= 0, got %d", cfg.Capacity)
	}
	return nil
}
