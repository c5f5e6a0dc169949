package sheets

import (
	"context"
	"encoding/json"
	"os"

	"github.com/acalderon/encuestas/internal/config"
	"github.com/acalderon/encuestas/internal/fault"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth scopes requested for the service account, matching what the
// spreadsheet is shared with.
var credentialScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
}

// ResolveCredentials returns the raw service-account JSON, preferring the
// GCP_CREDENTIALS_JSON environment blob over the credentials file.
func ResolveCredentials(cfg config.SheetsConfig) ([]byte, error) {
	if cfg.CredentialsJSON != "" {
		if !json.Valid([]byte(cfg.CredentialsJSON)) {
			return nil, fault.New(fault.KindCredential, "GCP_CREDENTIALS_JSON environment variable is not valid JSON")
		}
		return []byte(cfg.CredentialsJSON), nil
	}

	contents, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fault.New(fault.KindCredential, "credentials file not found at %s", cfg.CredentialsFile)
		}
		return nil, fault.Wrap(fault.KindCredential, err)
	}
	return contents, nil
}

// NewTokenSource builds an OAuth2 token source from service-account JSON.
func NewTokenSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, credentialScopes...)
	if err != nil {
		return nil, fault.Wrap(fault.KindCredential, err)
	}
	return jwtConfig.TokenSource(ctx), nil
}
