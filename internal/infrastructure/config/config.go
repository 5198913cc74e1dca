package config

import "github.com/kelseyhightower/envconfig"

// Database holds libsql database configuration.
type Database struct {
	URL       string `envconfig:"CARDIOSIM_DATABASE_URL" required:"true"`
	AuthToken string `envconfig:"CARDIOSIM_AUTH_TOKEN"`
}

// Server holds configuration for the web API server.
type Server struct {
	Port           int `envconfig:"CARDIOSIM_PORT" default:"8080"`
	DefaultHorizon int `envconfig:"CARDIOSIM_DEFAULT_HORIZON_YEARS" default:"10"`
}

// LoadDatabase loads database configuration from environment variables.
func LoadDatabase() (*Database, error) {
	var cfg Database
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
