package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

var ErrNoDatabase = errors.New("no records database configured")

// Database holds the connection settings read from the POSTGRES_* variables.
type Database struct {
	Username string
	Password string
	Host     string
	Port     uint16
	DBName   string
	SSLMode  string
}

func loadPassword() (string, error) {
	password, ok := os.LookupEnv("POSTGRES_PASSWORD")
	if ok {
		return password, nil
	}

	passwordFile, ok := os.LookupEnv("POSTGRES_PASSWORD_FILE")
	if !ok {
		return "", fmt.Errorf("no POSTGRES_PASSWORD or POSTGRES_PASSWORD_FILE env variable set")
	}

	data, err := os.ReadFile(passwordFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from password file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func lookupEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// DatabaseFromEnv requires POSTGRES_USER and a password; host, port, database
// name and SSL mode fall back to local defaults.
func DatabaseFromEnv() (*Database, error) {
	username, ok := os.LookupEnv("POSTGRES_USER")
	if !ok {
		return nil, fmt.Errorf("no POSTGRES_USER env variable set")
	}

	password, err := loadPassword()
	if err != nil {
		return nil, fmt.Errorf("unable to load password: %w", err)
	}

	port, err := strconv.ParseUint(lookupEnv("POSTGRES_PORT", "5432"), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("unable to parse POSTGRES_PORT: %w", err)
	}

	return &Database{
		Username: username,
		Password: password,
		Host:     lookupEnv("POSTGRES_HOST", "localhost"),
		Port:     uint16(port),
		DBName:   lookupEnv("POSTGRES_DB", "minesweeper"),
		SSLMode:  lookupEnv("POSTGRES_SSLMODE", "disable"),
	}, nil
}

func (c Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Username),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

// DbURL picks the records database: DATABASE_URL, then the POSTGRES_*
// variables, then fallback (the config file's records.url).
func DbURL(fallback string) (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}

	cfg, err := DatabaseFromEnv()
	if err == nil {
		return cfg.URL(), nil
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("%w: no DATABASE_URL set; %w", ErrNoDatabase, err)
}
