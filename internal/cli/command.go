package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/stevens/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stevens [text...]",
		Short: "Rule-based phonetic transcription",
		Long: `stevens transcribes written text into IPA or X-SAMPA with syllable
boundaries and stress marks.

Text is taken from the arguments, from a batch file or from standard input.

Examples:
  stevens El perro come.                # 'el|'pe.ro|'ko.me
  stevens -a x-sampa cena               # 'Te.na
  stevens --batch texts.txt --db t.db   # Transcribe a file and keep the results
  echo hola | stevens --auto-lang       # Detect the language first`,
		Args:          cobra.ArbitraryArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.stevens.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Transcription flags
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language, "Language of the text (es, es_ES, spa, ...)")
	cmd.Flags().StringVarP(&flags.Alphabet, "alphabet", "a", flags.Alphabet, "Phonetic alphabet: ipa or x-sampa")
	cmd.Flags().StringVar(&flags.SyllabicSeparator, "syllabic-separator", flags.SyllabicSeparator, "Separator between syllables (empty means '.')")
	cmd.Flags().StringVar(&flags.StressMark, "stress-mark", flags.StressMark, "Mark placed before the stressed syllable")
	cmd.Flags().StringVar(&flags.WordSeparator, "word-separator", flags.WordSeparator, "Separator between words")
	cmd.Flags().BoolVar(&flags.KeepPunctuation, "keep-punctuation", false, "Keep punctuation attached to the neighbouring words")

	// Language identification flags
	cmd.Flags().BoolVar(&flags.AutoLang, "auto-lang", false, "Identify the language of each text instead of using --lang")
	cmd.Flags().StringVar(&flags.Identifier, "identifier", flags.Identifier, "Language identifier: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for language identification")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for language identification")

	// Batch and storage flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Transcribe texts from file (one per line, optionally 'tag = text')")
	cmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", flags.Jobs, "Number of texts transcribed in parallel")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "SQLite database storing transcriptions")
	cmd.Flags().StringVar(&flags.ExportCSV, "export-csv", "", "Export all stored transcriptions to a CSV file")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the database to an archive directory and exit")

	// Informational flags
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models usable for language identification")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported languages")
	cmd.Flags().BoolVar(&flags.ListRuns, "list-runs", false, "List the runs recorded in the database")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("transcription.language", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("transcription.alphabet", cmd.Flags().Lookup("alphabet"))
	viper.BindPFlag("transcription.syllabic_separator", cmd.Flags().Lookup("syllabic-separator"))
	viper.BindPFlag("transcription.stress_mark", cmd.Flags().Lookup("stress-mark"))
	viper.BindPFlag("transcription.word_separator", cmd.Flags().Lookup("word-separator"))
	viper.BindPFlag("transcription.keep_punctuation", cmd.Flags().Lookup("keep-punctuation"))
	viper.BindPFlag("identifier.auto", cmd.Flags().Lookup("auto-lang"))
	viper.BindPFlag("identifier.provider", cmd.Flags().Lookup("identifier"))
	viper.BindPFlag("identifier.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("identifier.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("batch.jobs", cmd.Flags().Lookup("jobs"))
	viper.BindPFlag("store.path", cmd.Flags().Lookup("db"))
}

// ApplyConfig copies values from the config file and environment into
// flags that were not set on the command line.
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	str := func(name, key string, dst *string) {
		if !cmd.Flags().Changed(name) && viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	str("lang", "transcription.language", &flags.Language)
	str("alphabet", "transcription.alphabet", &flags.Alphabet)
	str("syllabic-separator", "transcription.syllabic_separator", &flags.SyllabicSeparator)
	str("stress-mark", "transcription.stress_mark", &flags.StressMark)
	str("word-separator", "transcription.word_separator", &flags.WordSeparator)
	str("identifier", "identifier.provider", &flags.Identifier)
	str("openai-model", "identifier.openai_model", &flags.OpenAIModel)
	str("gemini-model", "identifier.gemini_model", &flags.GeminiModel)
	str("db", "store.path", &flags.DBPath)

	if !cmd.Flags().Changed("keep-punctuation") && viper.IsSet("transcription.keep_punctuation") {
		flags.KeepPunctuation = viper.GetBool("transcription.keep_punctuation")
	}
	if !cmd.Flags().Changed("auto-lang") && viper.IsSet("identifier.auto") {
		flags.AutoLang = viper.GetBool("identifier.auto")
	}
	if !cmd.Flags().Changed("jobs") && viper.IsSet("batch.jobs") {
		flags.Jobs = viper.GetInt("batch.jobs")
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error getting home directory", "err", err)
			return
		}

		// Search config in home directory with name ".stevens" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stevens")
	}

	// Environment variables, e.g. STEVENS_TRANSCRIPTION_ALPHABET
	viper.SetEnvPrefix("STEVENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		log.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}
