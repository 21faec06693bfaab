package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Danik911/dublin-accommodation-bot/models"
)

// JSONWriter persists the full run result as a dated JSON file under the
// data directory.
type JSONWriter struct {
	dataDir string
	// LastPath holds the file written by the most recent Write call.
	LastPath string
}

// NewJSONWriter creates the data directory if needed and returns a writer.
func NewJSONWriter(dataDir string) (*JSONWriter, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONWriter{dataDir: dataDir}, nil
}

// Write marshals the run result with indentation and writes it to
// accommodation_search_<date>.json.
func (w *JSONWriter) Write(result *models.RunResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run result: %w", err)
	}

	name := fmt.Sprintf("accommodation_search_%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(w.dataDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run result: %w", err)
	}

	w.LastPath = path
	return nil
}

// Close is a no-op; the writer holds no open resources between writes.
func (w *JSONWriter) Close() error { return nil }
