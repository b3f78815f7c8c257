package server

import (
	"strings"

	"game-datastore/core/utils"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Tables is a comma separated allow-list of tables exposed over HTTP.
	// Empty exposes every registered table.
	Tables string `mapstructure:"tables" default:""`
}

// ExposedTables returns the parsed allow-list, or nil when every table is exposed.
func (c Config) ExposedTables() []string {
	return utils.SplitList(c.Tables)
}

// IsExposed reports whether the table may be served over HTTP.
func (c Config) IsExposed(table string) bool {
	allowed := c.ExposedTables()
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if strings.EqualFold(t, table) {
			return true
		}
	}
	return false
}
