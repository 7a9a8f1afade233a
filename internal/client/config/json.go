package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogclient/internal/flagx"
	"github.com/dmitrijs2005/blogclient/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from "zero", so a partial file only overrides what it names.
type JsonConfig struct {
	BaseURL            *string         `json:"base_url"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	AuthHeaderName     *string         `json:"auth_header"`
	DatabasePath       *string         `json:"database_path"`
	CredentialStore    *string         `json:"credential_store"`
	CredentialsFile    *string         `json:"credentials_file"`
	LogLevel           *string         `json:"log_level"`
	FetchFailurePolicy *string         `json:"fetch_failure_policy"`
}

// parseJson overlays cfg with the file given via -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.AuthHeaderName, jc.AuthHeaderName)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.CredentialStore, jc.CredentialStore)
	setString(&cfg.CredentialsFile, jc.CredentialsFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.FetchFailurePolicy, jc.FetchFailurePolicy)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
