package cli

import "runtime"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	BatchFile     string
	Jobs          int
	DBPath        string
	ExportCSV     string
	Archive       bool
	ListModels    bool
	ListLanguages bool
	ListRuns      bool
	Verbose       bool

	// Transcription flags
	Language          string
	Alphabet          string
	SyllabicSeparator string
	StressMark        string
	WordSeparator     string
	KeepPunctuation   bool

	// Language identification flags
	AutoLang    bool
	Identifier  string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Jobs:              runtime.NumCPU(),
		Language:          "es_ES",
		Alphabet:          "ipa",
		SyllabicSeparator: ".",
		StressMark:        "'",
		WordSeparator:     "|",
		Identifier:        "openai",
		OpenAIModel:       "gpt-4o-mini",
		GeminiModel:       "gemini-2.0-flash",
	}
}
