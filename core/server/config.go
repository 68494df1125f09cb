package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `mapstructure:"metrics" default:"true"`
	// Swagger serves the API documentation on /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
