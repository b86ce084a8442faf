package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and decodes one JSON seed file from the data directory.
func Load[T any](dir, filename string) (T, error) {
	var out T

	path := filepath.Join(dir, filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read seed %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode seed %s: %w", filename, err)
	}
	return out, nil
}
