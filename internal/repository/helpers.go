package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/planboard/internal/domain"
)

const storeFileMode = 0o644

// readJSONFile decodes path into v. It reports false with a nil error when
// the file does not exist.
func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%s: %w: %v", path, ErrCorrupt, err)
	}
	return true, nil
}

// writeJSONFile replaces path with the indented JSON encoding of v. The new
// content is written to a temporary file in the same directory and renamed
// into place, so readers never observe a half-written file.
func writeJSONFile(path string, v any) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Chmod(storeFileMode); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// compactRecords drops null entries, which decode to nil maps.
func compactRecords(in []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(in))
	for _, r := range in {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// compactGoals strips the indentation a pretty-printed file gives each year.
func compactGoals(in domain.Goals) (domain.Goals, error) {
	out := make(domain.Goals, len(in))
	for year, raw := range in {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return domain.Goals{}, fmt.Errorf("goals for %s: %w: %v", year, ErrCorrupt, err)
		}
		out[year] = buf.Bytes()
	}
	return out, nil
}

func sortedYears(goals domain.Goals) []string {
	years := make([]string, 0, len(goals))
	for y := range goals {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
