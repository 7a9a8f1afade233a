package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogclient/internal/client/session"
	"github.com/dmitrijs2005/blogclient/internal/common"
	"github.com/dmitrijs2005/blogclient/internal/filex"
)

// Credential store backends.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Config holds runtime settings for the blog CLI.
type Config struct {
	BaseURL            string
	RequestTimeout     time.Duration
	AuthHeaderName     string
	DatabasePath       string
	CredentialStore    string
	CredentialsFile    string
	LogLevel           string
	FetchFailurePolicy string
}

// LoadDefaults populates c with defaults. Local files live under the user
// config directory, falling back to the working directory.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/"
	c.RequestTimeout = 10 * time.Second
	c.AuthHeaderName = common.AuthHeaderName
	c.DatabasePath = userPath("client.db")
	c.CredentialStore = StoreSQLite
	c.CredentialsFile = userPath("credentials.json")
	c.LogLevel = "info"
	c.FetchFailurePolicy = session.KeepAuthenticated.String()
}

func userPath(name string) string {
	p, err := filex.UserConfigPath(name)
	if err != nil {
		return name
	}
	return p
}

// Validate rejects values the rest of the client cannot work with.
func (c *Config) Validate() error {
	switch c.CredentialStore {
	case StoreSQLite, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("unknown credential store %q", c.CredentialStore)
	}
	if _, err := session.ParseFailurePolicy(c.FetchFailurePolicy); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	return nil
}

// FailurePolicy returns the parsed fetch failure policy.
func (c *Config) FailurePolicy() session.FailurePolicy {
	p, err := session.ParseFailurePolicy(c.FetchFailurePolicy)
	if err != nil {
		return session.KeepAuthenticated
	}
	return p
}

// LoadConfig applies defaults, then the JSON file named by -c/-config (if
// any), then flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
