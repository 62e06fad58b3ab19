// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	// TopN is how many soonest-expiring credentials the report includes.
	TopN int

	// IncludeSecrets extends the report from certificate credentials to
	// client secrets as well. Off by default: the report covers only
	// certificates unless explicitly widened.
	IncludeSecrets bool

	// Strict makes bootstrap, auth, and fetch errors fatal. When false the
	// run logs failures and continues, which is the long-standing default
	// for this report.
	Strict bool

	GraphBaseURL string
	HTTPTimeout  time.Duration
}

// HasClientSecretCredentials returns true when tenant, client, and secret are
// all configured. Used by the composition root to decide between an explicit
// client-secret credential and the default credential chain.
func (c *Config) HasClientSecretCredentials() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != ""
}

// Load reads configuration from environment variables and returns a validated
// Config. Azure credentials (CERTPANEL_TENANT_ID, CERTPANEL_CLIENT_ID,
// CERTPANEL_CLIENT_SECRET) are optional; if absent, the default Azure
// credential chain is used instead. Optional variables with defaults:
// CERTPANEL_TOP_N (10), CERTPANEL_INCLUDE_SECRETS (false), CERTPANEL_STRICT
// (false), CERTPANEL_GRAPH_BASE_URL (https://graph.microsoft.com/v1.0),
// CERTPANEL_HTTP_TIMEOUT (30s).
func Load() (*Config, error) {
	tenantID := os.Getenv("CERTPANEL_TENANT_ID")
	clientID := os.Getenv("CERTPANEL_CLIENT_ID")
	clientSecret := os.Getenv("CERTPANEL_CLIENT_SECRET")

	topN := 10
	if v, ok := os.LookupEnv("CERTPANEL_TOP_N"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_TOP_N has invalid integer %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("CERTPANEL_TOP_N must be positive, got %d", parsed)
		}
		topN = parsed
	}

	includeSecrets := false
	if v, ok := os.LookupEnv("CERTPANEL_INCLUDE_SECRETS"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_INCLUDE_SECRETS has invalid boolean %q: %w", v, err)
		}
		includeSecrets = parsed
	}

	strict := false
	if v, ok := os.LookupEnv("CERTPANEL_STRICT"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_STRICT has invalid boolean %q: %w", v, err)
		}
		strict = parsed
	}

	graphBaseURL := "https://graph.microsoft.com/v1.0"
	if v, ok := os.LookupEnv("CERTPANEL_GRAPH_BASE_URL"); ok {
		graphBaseURL = v
	}

	httpTimeout := 30 * time.Second
	if v, ok := os.LookupEnv("CERTPANEL_HTTP_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CERTPANEL_HTTP_TIMEOUT has invalid duration %q: %w", v, err)
		}
		httpTimeout = parsed
	}

	return &Config{
		TenantID:       tenantID,
		ClientID:       clientID,
		ClientSecret:   clientSecret,
		TopN:           topN,
		IncludeSecrets: includeSecrets,
		Strict:         strict,
		GraphBaseURL:   graphBaseURL,
		HTTPTimeout:    httpTimeout,
	}, nil
}
