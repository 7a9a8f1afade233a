package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://blog.local/api/", "-t", "3", "-d", "/tmp/x.db", "-s", "file", "-f", "/tmp/c.json", "-l", "debug", "-p", "drop"},
			want: Config{
				BaseURL:            "http://blog.local/api/",
				RequestTimeout:     3 * time.Second,
				AuthHeaderName:     "KZ_AUTH",
				DatabasePath:       "/tmp/x.db",
				CredentialStore:    "file",
				CredentialsFile:    "/tmp/c.json",
				LogLevel:           "debug",
				FetchFailurePolicy: "drop",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"-c", "conf.json", "-a", "http://x/"},
			want: Config{BaseURL: "http://x/", RequestTimeout: 10 * time.Second, AuthHeaderName: "KZ_AUTH", LogLevel: "info", CredentialStore: "sqlite", FetchFailurePolicy: "keep"},
		},
		{
			name:    "bad timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()
			cfg.DatabasePath, cfg.CredentialsFile = "", ""

			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
