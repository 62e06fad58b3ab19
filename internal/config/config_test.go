package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every CERTPANEL_ env var that Load() reads.
var allConfigKeys = []string{
	"CERTPANEL_TENANT_ID",
	"CERTPANEL_CLIENT_ID",
	"CERTPANEL_CLIENT_SECRET",
	"CERTPANEL_TOP_N",
	"CERTPANEL_INCLUDE_SECRETS",
	"CERTPANEL_STRICT",
	"CERTPANEL_GRAPH_BASE_URL",
	"CERTPANEL_HTTP_TIMEOUT",
}

// isolateConfigEnv saves and unsets all CERTPANEL_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_TENANT_ID", "00000000-0000-0000-0000-000000000000")
	t.Setenv("CERTPANEL_CLIENT_ID", "11111111-1111-1111-1111-111111111111")
	t.Setenv("CERTPANEL_CLIENT_SECRET", "s3cret")
	t.Setenv("CERTPANEL_TOP_N", "25")
	t.Setenv("CERTPANEL_INCLUDE_SECRETS", "true")
	t.Setenv("CERTPANEL_STRICT", "true")
	t.Setenv("CERTPANEL_GRAPH_BASE_URL", "http://127.0.0.1:9999/v1.0")
	t.Setenv("CERTPANEL_HTTP_TIMEOUT", "5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", cfg.TenantID)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", cfg.ClientID)
	assert.Equal(t, "s3cret", cfg.ClientSecret)
	assert.Equal(t, 25, cfg.TopN)
	assert.True(t, cfg.IncludeSecrets)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "http://127.0.0.1:9999/v1.0", cfg.GraphBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.HasClientSecretCredentials())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopN)
	assert.False(t, cfg.IncludeSecrets)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "https://graph.microsoft.com/v1.0", cfg.GraphBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

// TestLoad_MissingCredentials verifies that absent Azure credentials do not
// cause an error — the default credential chain handles that case at runtime.
func TestLoad_MissingCredentials(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.HasClientSecretCredentials())
}

func TestHasClientSecretCredentials_RequiresAllThree(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_TENANT_ID", "tenant")
	t.Setenv("CERTPANEL_CLIENT_ID", "client")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.HasClientSecretCredentials())
}

func TestLoad_InvalidTopN(t *testing.T) {
	t.Run("non-integer", func(t *testing.T) {
		isolateConfigEnv(t)
		t.Setenv("CERTPANEL_TOP_N", "ten")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CERTPANEL_TOP_N")
	})

	t.Run("zero", func(t *testing.T) {
		isolateConfigEnv(t)
		t.Setenv("CERTPANEL_TOP_N", "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("negative", func(t *testing.T) {
		isolateConfigEnv(t)
		t.Setenv("CERTPANEL_TOP_N", "-3")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestLoad_InvalidBooleans(t *testing.T) {
	t.Run("include secrets", func(t *testing.T) {
		isolateConfigEnv(t)
		t.Setenv("CERTPANEL_INCLUDE_SECRETS", "yes please")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CERTPANEL_INCLUDE_SECRETS")
	})

	t.Run("strict", func(t *testing.T) {
		isolateConfigEnv(t)
		t.Setenv("CERTPANEL_STRICT", "2")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CERTPANEL_STRICT")
	})
}

func TestLoad_InvalidTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CERTPANEL_HTTP_TIMEOUT", "30")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CERTPANEL_HTTP_TIMEOUT")
}
