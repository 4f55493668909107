// Package config holds the process settings, read from the environment, and
// the league definition, read from YAML.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Tank01APIKey string `envconfig:"TANK01_API_KEY"`

	Port      int    `envconfig:"PORT" default:"3000"`
	StorePath string `envconfig:"STORE_PATH" default:"playoff_data.json"`
	// When set the scoreboard is kept in Postgres instead of StorePath.
	PostgresConnStr string `envconfig:"POSTGRES_CONN_STR"`
	// Empty means the league compiled into the binary.
	LeagueFile string `envconfig:"LEAGUE_FILE"`

	AdminUser     string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`
	// Cron expression for automatic refreshes, empty disables them.
	RefreshSchedule string `envconfig:"REFRESH_SCHEDULE"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AdminEnabled reports whether the refresh and reset endpoints should be
// served. They are never served without a password.
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}
