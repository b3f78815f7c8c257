package database

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidURL is returned when a connection string cannot be turned into a Config.
var ErrInvalidURL = errors.New("invalid database url")

// ParseURL converts a connection string into a Config.
// Supported schemes: mysql, postgres, postgresql, sqlite, sqlite3.
// Fields the URL does not carry keep their zero value; use Resolve to merge with defaults.
func ParseURL(raw string) (Config, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || rest == "" {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3":
		// sqlite paths are not valid URL authorities (":memory:", "./game.db").
		return Config{Driver: DriverSQLite, Name: rest}, nil
	case "mysql":
		return parseNetworkURL(raw, DriverMySQL, 3306)
	case "postgres", "postgresql":
		return parseNetworkURL(raw, DriverPostgres, 5432)
	default:
		return Config{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, scheme)
	}
}

func parseNetworkURL(raw, driver string, defaultPort int) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	cfg := Config{
		Driver: driver,
		Host:   u.Hostname(),
		Port:   defaultPort,
		Name:   strings.TrimPrefix(u.Path, "/"),
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("%w: bad port %q", ErrInvalidURL, p)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}
	if cfg.Host == "" || cfg.Name == "" {
		return Config{}, fmt.Errorf("%w: host and database name are required", ErrInvalidURL)
	}
	return cfg, nil
}

// Resolve returns the effective configuration.
// If URL is set, the connection fields come from it and pool settings are kept from cfg.
func Resolve(cfg Config) (Config, error) {
	if cfg.URL == "" {
		if !cfg.IsValidDriver() {
			return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
		}
		return cfg, nil
	}

	parsed, err := ParseURL(cfg.URL)
	if err != nil {
		return Config{}, err
	}
	parsed.URL = cfg.URL
	parsed.TimeoutSeconds = cfg.TimeoutSeconds
	parsed.MaxIdleConns = cfg.MaxIdleConns
	parsed.MaxOpenConns = cfg.MaxOpenConns
	parsed.Synchronize = cfg.Synchronize
	return parsed, nil
}
