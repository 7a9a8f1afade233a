package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/blogclient/internal/flagx"
)

// parseFlags populates Config from command-line flags. Arguments it does
// not know (such as -c) are filtered out by flagx.Parse.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("blogcli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the blog API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.CredentialStore, "s", cfg.CredentialStore, "credential store: sqlite, file or memory")
	fs.StringVar(&cfg.CredentialsFile, "f", cfg.CredentialsFile, "path of the credentials file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.FetchFailurePolicy, "p", cfg.FetchFailurePolicy, "profile fetch failure policy: keep or drop")

	if err := flagx.Parse(fs, args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
