package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOAuthJSON = `{
  "installed": {
    "client_id": "roomies-client.apps.googleusercontent.com",
    "project_id": "roomies",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`

func validOAuthClient() *OAuthClientConfig {
	return &OAuthClientConfig{
		Installed: OAuthInstalled{
			ClientID:                "roomies-client.apps.googleusercontent.com",
			ProjectID:               "roomies",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "test-secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}
}

func TestValidateOAuthClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *OAuthClientConfig)
		wantErr bool
	}{
		{"valid", func(*OAuthClientConfig) {}, false},
		{"missing client id", func(cfg *OAuthClientConfig) { cfg.Installed.ClientID = "" }, true},
		{"invalid auth uri", func(cfg *OAuthClientConfig) { cfg.Installed.AuthURI = "not-a-valid-url" }, true},
		{"no redirect uris", func(cfg *OAuthClientConfig) { cfg.Installed.RedirectURIs = []string{} }, true},
		{"invalid redirect uri", func(cfg *OAuthClientConfig) { cfg.Installed.RedirectURIs = []string{"not a valid uri"} }, true},
		{"out of band redirect only", func(cfg *OAuthClientConfig) {
			cfg.Installed.RedirectURIs = []string{"urn:ietf:wg:oauth:2.0:oob"}
		}, true},
		{"hosted redirect only", func(cfg *OAuthClientConfig) {
			cfg.Installed.RedirectURIs = []string{"https://roomies.example.com/oauth/callback"}
		}, true},
		{"https loopback redirect", func(cfg *OAuthClientConfig) {
			cfg.Installed.RedirectURIs = []string{"https://localhost/oauth/callback"}
		}, true},
		{"loopback ip among others", func(cfg *OAuthClientConfig) {
			cfg.Installed.RedirectURIs = []string{"https://roomies.example.com/oauth/callback", "http://127.0.0.1:3000/oauth/callback"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validOAuthClient()
			tt.mutate(cfg)

			err := ValidateOAuthClient(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOAuthClient_NoLoopbackRedirect(t *testing.T) {
	cfg := validOAuthClient()
	cfg.Installed.RedirectURIs = []string{"https://roomies.example.com/oauth/callback"}

	err := ValidateOAuthClient(cfg)
	assert.ErrorIs(t, err, ErrNoLoopbackRedirect)
}

func TestLoadOAuthClientFromPath_ValidConfig(t *testing.T) {
	oauthPath := filepath.Join(t.TempDir(), "oauthClient.json")
	require.NoError(t, os.WriteFile(oauthPath, []byte(validOAuthJSON), 0644))

	cfg, err := LoadOAuthClientFromPath(oauthPath)
	require.NoError(t, err)

	assert.Equal(t, validOAuthClient(), cfg)
}

func TestLoadOAuthClientFromPath_InvalidJSON(t *testing.T) {
	oauthPath := filepath.Join(t.TempDir(), "invalid_oauth.json")
	require.NoError(t, os.WriteFile(oauthPath, []byte(`{"installed": {"client_id": "test" "project_id": "x"}}`), 0644))

	_, err := LoadOAuthClientFromPath(oauthPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")
}

func TestLoadOAuthClientFromPath_FileNotFound(t *testing.T) {
	_, err := LoadOAuthClientFromPath("/nonexistent/path/oauthClient.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read oauth client file")
}

func TestLoadOAuthClientWithEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "oauthClient.test.json"), []byte(validOAuthJSON), 0644))

	cfg, err := LoadOAuthClientWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, "roomies", cfg.Installed.ProjectID)

	// A different environment has no file in either location
	t.Setenv("HOME", t.TempDir())
	_, err = LoadOAuthClientWithEnv("staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find oauth client file")
}
