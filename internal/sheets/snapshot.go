package sheets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acalderon/encuestas/internal/fault"
)

// WriteSnapshot serializes rows as UTF-8 JSON to path, fully replacing any
// prior content. Non-ASCII cell text is written literally, matching the
// interchange format the dashboard and report readers expect. A nil rows
// value is written as an empty array.
func WriteSnapshot(path string, rows [][]string) error {
	if rows == nil {
		rows = [][]string{}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

// ReadSnapshot loads the interchange file back into rows. A decode failure is
// classified as malformed data; a missing file is returned as-is so callers
// can distinguish "never fetched" from "corrupt".
func ReadSnapshot(path string) ([][]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var rows [][]string
	if err := json.Unmarshal(contents, &rows); err != nil {
		return nil, fault.Wrap(fault.KindMalformedData, fmt.Errorf("json.Unmarshal > %w", err))
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}
