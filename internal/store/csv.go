package store

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ExportCSV writes all stored transcriptions to path as
// text,language,alphabet,transcription with a header row.
func (s *Store) ExportCSV(path string) (int, error) {
	entries, err := s.Entries()
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"text", "language", "alphabet", "transcription"}); err != nil {
		return 0, fmt.Errorf("failed to write headers: %w", err)
	}
	for _, e := range entries {
		if err := writer.Write([]string{e.Text, e.Language, e.Alphabet, e.Transcription}); err != nil {
			return 0, fmt.Errorf("failed to write entry: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return len(entries), nil
}
