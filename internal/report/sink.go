package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteFile serializes the report as a record-oriented JSON array (one object
// per row, keyed by the report's field names) and persists it at path.
func WriteFile(ctx context.Context, r Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	records := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		records = append(records, map[string]any{
			r.KeyField:   row.Label,
			r.ValueField: row.Amount,
		})
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	slog.InfoContext(ctx, "Report saved",
		"path", path,
		"rows", len(r.Rows),
		"key_field", r.KeyField)
	return nil
}
