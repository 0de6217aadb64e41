package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Environment is the deployment environment (development, staging, production).
	Environment string `mapstructure:"environment" default:"development"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// IsProduction reports whether the server runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// SeedingEnabled reports whether sample data should be seeded on startup.
// Sample users are only inserted outside production.
func (c Config) SeedingEnabled() bool {
	return !c.IsProduction()
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
