package ptree

import "fmt"

// Config configures a parent-pointer tree.
//
// The zero value is a valid configuration for an unchecked tree.
type Config struct {
	// Capacity pre-sizes the backing storage for the expected number of nodes.
	Capacity int
	// Strict makes Adopt validate the new parent and reject cycles.
	Strict bool
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
