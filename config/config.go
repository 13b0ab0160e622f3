package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the connection parameters and run options of a seeding run.
type Config struct {
	Host         string        // LEADS_DB_HOST, default "localhost"
	Port         int           // LEADS_DB_PORT, default 5433
	DBName       string        // LEADS_DB_NAME, default "demo"
	User         string        // LEADS_DB_USER, default "postgres"
	Password     string        // LEADS_DB_PASSWORD, default "postgres"
	SSLMode      string        // LEADS_DB_SSLMODE, default "disable"
	RawDSN       string        // DB_DSN, overrides the fields above when set
	Count        int           // LEADS_COUNT, default 10
	PingInterval time.Duration // LEADS_PING_INTERVAL, default 5s
}

// Load reads an optional .env file from the working directory and then the
// environment. A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "fail to load .env file")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	port, err := envInt("LEADS_DB_PORT", 5433)
	if err != nil {
		return Config{}, err
	}
	count, err := envInt("LEADS_COUNT", 10)
	if err != nil {
		return Config{}, err
	}
	if count < 0 {
		return Config{}, errors.Errorf("LEADS_COUNT shall not be negative, got %d", count)
	}
	interval := 5 * time.Second
	if v := os.Getenv("LEADS_PING_INTERVAL"); v != "" {
		interval, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "fail to parse LEADS_PING_INTERVAL %q", v)
		}
		if interval <= 0 {
			return Config{}, errors.Errorf("LEADS_PING_INTERVAL shall be positive, got %s", interval)
		}
	}
	return Config{
		Host:         envOr("LEADS_DB_HOST", "localhost"),
		Port:         port,
		DBName:       envOr("LEADS_DB_NAME", "demo"),
		User:         envOr("LEADS_DB_USER", "postgres"),
		Password:     envOr("LEADS_DB_PASSWORD", "postgres"),
		SSLMode:      envOr("LEADS_DB_SSLMODE", "disable"),
		RawDSN:       os.Getenv("DB_DSN"),
		Count:        count,
		PingInterval: interval,
	}, nil
}

// DSN returns the libpq key/value connection string. Every value is quoted so
// that spaces, quotes and backslashes survive.
func (c Config) DSN() string {
	if c.RawDSN != "" {
		return c.RawDSN
	}
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		quote(c.Host), c.Port, quote(c.DBName), quote(c.User), quote(c.Password), quote(c.SSLMode))
}

// URL returns the postgres:// form of the connection parameters, as expected
// by golang-migrate. A postgres:// DB_DSN is returned unchanged; a key/value
// DB_DSN cannot be migrated and is an error.
func (c Config) URL() (string, error) {
	if c.RawDSN != "" {
		if isURL(c.RawDSN) {
			return c.RawDSN, nil
		}
		return "", errors.New("DB_DSN shall be a postgres:// url to run migrations")
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String(), nil
}

func isURL(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// quote follows the libpq key/value syntax: single quotes around the value,
// with ' and \ escaped by a backslash.
func quote(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "fail to parse %s %q", key, v)
	}
	return n, nil
}
