// Package importer converts external word sources into scored word lists.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/wordlist"
)

// Write writes entries as `word;score` lines.
func Write(w io.Writer, entries []model.ScoredWord) error {
	writer := bufio.NewWriter(w)
	for _, entry := range entries {
		if _, err := fmt.Fprintf(writer, "%s;%d\n", wordlist.Normalize(entry.Word), entry.Score); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	return nil
}

// WriteFile replaces path with entries. The file is written to a temp file
// in the same directory and renamed into place.
func WriteFile(path string, entries []model.ScoredWord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := Write(tmpFile, entries); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}
