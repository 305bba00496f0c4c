// Package archive moves a transcription database out of the way so the
// next run starts from an empty one.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sidecars are the files SQLite keeps next to a database.
var sidecars = []string{"-journal", "-wal", "-shm"}

// ArchiveDatabase moves the database at dbPath, with its SQLite sidecar
// files, to <dir>/archive/<name>-YYYYMMDD-HHMMSS<ext> and returns the new
// path. The database must be closed.
func ArchiveDatabase(dbPath string) (string, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", dbPath)
	}

	archiveDir := filepath.Join(filepath.Dir(dbPath), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(dbPath)
	name := strings.TrimSuffix(filepath.Base(dbPath), ext)

	now := time.Now()
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, now.Format("20060102-150405"), ext))
	if _, err := os.Stat(archivePath); err == nil {
		// Two archives within a second
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, now.Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(dbPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive database: %w", err)
	}
	for _, suffix := range sidecars {
		if _, err := os.Stat(dbPath + suffix); err != nil {
			continue
		}
		if err := os.Rename(dbPath+suffix, archivePath+suffix); err != nil {
			return archivePath, fmt.Errorf("failed to archive %s: %w", dbPath+suffix, err)
		}
	}

	return archivePath, nil
}
