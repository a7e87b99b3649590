package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the send pipeline needs. It is loaded once up
// front so the composer and mailer stay testable in isolation.
type Config struct {
	Sender     string
	Password   string
	Recipients []string
	PostFile   string
	SiteURL    string
}

// LoadConfig reads the send configuration from the environment. A .env
// file in the working directory is loaded first if present. postFlag, if
// non-empty, wins over POST_FILE. All validation happens here, before
// any network activity.
func LoadConfig(postFlag string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Sender:   os.Getenv("GMAIL_USER"),
		Password: os.Getenv("GMAIL_APP_PASSWORD"),
		PostFile: postFlag,
		SiteURL:  os.Getenv("SITE_URL"),
	}
	if cfg.PostFile == "" {
		cfg.PostFile = os.Getenv("POST_FILE")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = defaultSiteURL
	}

	if cfg.Sender == "" || cfg.Password == "" {
		return nil, fmt.Errorf("GMAIL_USER and GMAIL_APP_PASSWORD must be set")
	}
	if cfg.PostFile == "" {
		return nil, fmt.Errorf("POST_FILE must be set")
	}

	cfg.Recipients = ParseRecipients(os.Getenv("EMAIL_SUBSCRIBERS"))
	if len(cfg.Recipients) == 0 {
		return nil, fmt.Errorf("EMAIL_SUBSCRIBERS must contain at least one address")
	}

	return cfg, nil
}

// ParseRecipients splits a comma-separated subscriber list, trimming
// whitespace and dropping empty entries. Order is preserved.
func ParseRecipients(s string) []string {
	var recipients []string
	for _, addr := range strings.Split(s, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
