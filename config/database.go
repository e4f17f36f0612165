package config

// RedisConfig contains Redis configuration for the session store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// DBConfig contains PostgreSQL configuration for the login audit trail.
// The audit trail is optional: with Enabled=false no database connection
// is made and login attempts are not recorded.
type DBConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"nameid"`
	Password string `env:"PASSWORD" envDefault:"nameid"`
	Name     string `env:"NAME"     envDefault:"nameid"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}
