package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/stevens/internal/languages/es"
	"codeberg.org/snonux/stevens/internal/phonetic"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "stevens.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func analyze(t *testing.T, text string, opts ...transcriber.Option) *transcriber.Transcription {
	t.Helper()
	e, err := es.New()
	if err != nil {
		t.Fatalf("es.New failed: %v", err)
	}
	tr, err := e.Analyze(text, opts...)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return tr
}

func TestKey(t *testing.T) {
	cfg := transcriber.DefaultConfig()
	base := Key("es_ES", cfg, "casa")

	if len(base) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(base))
	}
	if Key("es_ES", cfg, "casa") != base {
		t.Error("Key is not deterministic")
	}

	xsampa := cfg
	xsampa.Alphabet = phonetic.XSAMPA
	keep := cfg
	keep.Punctuation = transcriber.PunctuationKeep
	sep := cfg
	sep.WordSeparator = " "

	for name, other := range map[string]string{
		"text":        Key("es_ES", cfg, "cosa"),
		"language":    Key("es_MX", cfg, "casa"),
		"alphabet":    Key("es_ES", xsampa, "casa"),
		"punctuation": Key("es_ES", keep, "casa"),
		"separator":   Key("es_ES", sep, "casa"),
	} {
		if other == base {
			t.Errorf("Changing the %s should change the key", name)
		}
	}
}

func TestSaveAndLookup(t *testing.T) {
	s := openTestStore(t)

	runID, err := s.BeginRun("test")
	if err != nil {
		t.Fatalf("BeginRun failed: %v", err)
	}

	entry := NewEntry("La casa", analyze(t, "La casa"))
	if err := s.Save(runID, entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := s.Lookup(entry.Key)
	if err != nil || !ok {
		t.Fatalf("Lookup failed: %v, found=%v", err, ok)
	}
	if got.Transcription != "'la|'ka.sa" {
		t.Errorf("Expected 'la|'ka.sa, got %q", got.Transcription)
	}
	if got.RunID != runID || got.Language != "es_ES" || got.Alphabet != "ipa" || got.Text != "La casa" {
		t.Errorf("Unexpected entry: %+v", got)
	}
	if len(got.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(got.Words))
	}
	if !reflect.DeepEqual(got.Words[1].Syllables, []string{"ca", "sa"}) || got.Words[1].Rendered != "'ka.sa" {
		t.Errorf("Unexpected word: %+v", got.Words[1])
	}

	if _, ok, err := s.Lookup("missing"); ok || err != nil {
		t.Errorf("Expected missing key to be absent, got ok=%v err=%v", ok, err)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	runID, _ := s.BeginRun("test")

	entry := NewEntry("casa", analyze(t, "casa"))
	for i := 0; i < 2; i++ {
		if err := s.Save(runID, entry); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestSave_UnknownRun(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save("no-such-run", NewEntry("casa", analyze(t, "casa"))); err == nil {
		t.Error("Expected foreign key error for unknown run")
	}
}

func TestRuns(t *testing.T) {
	s := openTestStore(t)

	first, _ := s.BeginRun("batch.txt")
	second, _ := s.BeginRun("stdin")
	if first == second {
		t.Fatal("Run ids should be unique")
	}
	if err := s.FinishRun(first, 3, 1); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}
	if err := s.FinishRun("missing", 0, 0); err == nil {
		t.Error("Expected error for unknown run")
	}

	runs, err := s.Runs()
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[0].Source != "batch.txt" || runs[0].Succeeded != 3 || runs[0].Failed != 1 {
		t.Errorf("Unexpected first run: %+v", runs[0])
	}
	if runs[0].FinishedAt.IsZero() {
		t.Error("Finished run should have a finish time")
	}
	if !runs[1].FinishedAt.IsZero() {
		t.Error("Unfinished run should not have a finish time")
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stevens.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	runID, _ := s.BeginRun("test")
	entry := NewEntry("casa", analyze(t, "casa"))
	if err := s.Save(runID, entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s.Close()
	if _, ok, _ := s.Lookup(entry.Key); !ok {
		t.Error("Entry lost after reopening")
	}
}

func TestExportCSV(t *testing.T) {
	s := openTestStore(t)
	runID, _ := s.BeginRun("test")
	for _, text := range []string{"casa", "Hola, mundo"} {
		if err := s.Save(runID, NewEntry(text, analyze(t, text))); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	n, err := s.ExportCSV(path)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 exported entries, got %d", n)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"text", "language", "alphabet", "transcription"},
		{"casa", "es_ES", "ipa", "'ka.sa"},
		{"Hola, mundo", "es_ES", "ipa", "'o.la|'mun.do"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Expected %v, got %v", want, records)
	}
}

func TestExportCSV_InvalidPath(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ExportCSV("/nonexistent/dir/out.csv"); err == nil {
		t.Error("Expected error for invalid path")
	}
}
