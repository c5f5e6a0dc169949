package sheets

import (
	"context"
	"fmt"

	"github.com/acalderon/encuestas/internal/config"
)

// FetchAndSave runs the whole fetch step: resolve a credential, download the
// first worksheet, and overwrite the local snapshot. Errors carry a fault
// kind; the CLI boundary maps any of them to exit code 1.
func FetchAndSave(ctx context.Context, cfg config.SheetsConfig) error {
	credentialsJSON, err := ResolveCredentials(cfg)
	if err != nil {
		return fmt.Errorf("ResolveCredentials() > %w", err)
	}

	tokens, err := NewTokenSource(ctx, credentialsJSON)
	if err != nil {
		return fmt.Errorf("NewTokenSource() > %w", err)
	}

	client := NewClient(cfg.BaseURL, cfg.SpreadsheetID, tokens)
	defer func() {
		_ = client.Close()
	}()

	rows, err := client.FetchAllValues(ctx)
	if err != nil {
		return fmt.Errorf("FetchAllValues() > %w", err)
	}

	if err := WriteSnapshot(cfg.SnapshotFile, rows); err != nil {
		return fmt.Errorf("WriteSnapshot() > %w", err)
	}
	return nil
}
