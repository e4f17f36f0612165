package config

import "time"

// RegistryConfig contains the name-registry daemon RPC configuration.
type RegistryConfig struct {
	// URL is the JSON-RPC endpoint of the registry daemon.
	URL string `env:"RPC_URL" envDefault:"http://localhost:8336"`

	// User and Password authenticate against the daemon's RPC interface.
	User     string `env:"RPC_USER"     envDefault:""`
	Password string `env:"RPC_PASSWORD" envDefault:""`

	// Timeout bounds a single lookup round trip.
	Timeout time.Duration `env:"RPC_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to registry configuration values.
func (r *RegistryConfig) Sanitize() {
	if r.Timeout <= 0 {
		r.Timeout = 10 * time.Second
	}
}
