package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseRecipients(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "trims and drops empties",
			input:    "a@x.com, ,b@y.com,",
			expected: []string{"a@x.com", "b@y.com"},
		},
		{
			name:     "single address",
			input:    "a@x.com",
			expected: []string{"a@x.com"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "only separators",
			input:    " , ,, ",
			expected: nil,
		},
		{
			name:     "order preserved",
			input:    "c@z.com,a@x.com,b@y.com",
			expected: []string{"c@z.com", "a@x.com", "b@y.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRecipients(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseRecipients(%q) = %#v, want %#v", tt.input, result, tt.expected)
			}
		})
	}
}

func setSendEnv(t *testing.T, user, password, subscribers, postFile, siteURL string) {
	t.Helper()
	t.Setenv("GMAIL_USER", user)
	t.Setenv("GMAIL_APP_PASSWORD", password)
	t.Setenv("EMAIL_SUBSCRIBERS", subscribers)
	t.Setenv("POST_FILE", postFile)
	t.Setenv("SITE_URL", siteURL)
}

func TestLoadConfig(t *testing.T) {
	setSendEnv(t, "me@gmail.com", "app-password", "a@x.com, b@y.com", "posts/today.mdx", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Sender != "me@gmail.com" {
		t.Errorf("Sender = %q", cfg.Sender)
	}
	if cfg.PostFile != "posts/today.mdx" {
		t.Errorf("PostFile = %q", cfg.PostFile)
	}
	if cfg.SiteURL != defaultSiteURL {
		t.Errorf("SiteURL = %q, want default %q", cfg.SiteURL, defaultSiteURL)
	}
	expected := []string{"a@x.com", "b@y.com"}
	if !reflect.DeepEqual(cfg.Recipients, expected) {
		t.Errorf("Recipients = %#v, want %#v", cfg.Recipients, expected)
	}
}

func TestLoadConfigFlagWinsOverEnv(t *testing.T) {
	setSendEnv(t, "me@gmail.com", "app-password", "a@x.com", "posts/env.mdx", "")

	cfg, err := LoadConfig("posts/flag.mdx")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PostFile != "posts/flag.mdx" {
		t.Errorf("PostFile = %q, want flag value", cfg.PostFile)
	}
}

func TestLoadConfigSiteURLOverride(t *testing.T) {
	setSendEnv(t, "me@gmail.com", "app-password", "a@x.com", "posts/today.mdx", "https://example.com")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SiteURL != "https://example.com" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name        string
		user        string
		password    string
		subscribers string
		postFile    string
		wantErr     string
	}{
		{
			name:     "missing credentials",
			user:     "",
			password: "",
			wantErr:  "GMAIL_USER",
		},
		{
			name:        "missing post file",
			user:        "me@gmail.com",
			password:    "app-password",
			subscribers: "a@x.com",
			postFile:    "",
			wantErr:     "POST_FILE",
		},
		{
			name:        "empty subscribers",
			user:        "me@gmail.com",
			password:    "app-password",
			subscribers: "",
			postFile:    "posts/today.mdx",
			wantErr:     "EMAIL_SUBSCRIBERS",
		},
		{
			name:        "subscribers all whitespace",
			user:        "me@gmail.com",
			password:    "app-password",
			subscribers: " , , ",
			postFile:    "posts/today.mdx",
			wantErr:     "EMAIL_SUBSCRIBERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setSendEnv(t, tt.user, tt.password, tt.subscribers, tt.postFile, "")

			_, err := LoadConfig("")
			if err == nil {
				t.Fatal("LoadConfig() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
