package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/stevens"
	"codeberg.org/snonux/stevens/internal/archive"
	"codeberg.org/snonux/stevens/internal/batch"
	"codeberg.org/snonux/stevens/internal/cli"
	"codeberg.org/snonux/stevens/internal/langid"
	"codeberg.org/snonux/stevens/internal/store"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

// ErrFailed is returned when at least one text could not be transcribed.
var ErrFailed = errors.New("transcription failed")

// Result is the outcome of one text.
type Result struct {
	Entry         batch.Entry
	Language      string
	Transcription string
	Cached        bool
	Err           error
}

// Summary counts the results of a run.
type Summary struct {
	Total    int
	Failed   int
	Cached   int
	Duration time.Duration
}

func (s Summary) String() string {
	msg := fmt.Sprintf("Transcribed %s %s in %s",
		humanize.Comma(int64(s.Total-s.Failed)), plural(s.Total-s.Failed, "text", "texts"), s.Duration.Round(time.Millisecond))
	if s.Cached > 0 {
		msg += fmt.Sprintf(", %s from the store", humanize.Comma(int64(s.Cached)))
	}
	if s.Failed > 0 {
		msg += fmt.Sprintf(", %s failed", humanize.Comma(int64(s.Failed)))
	}
	return msg
}

// Processor handles the main transcription logic
type Processor struct {
	flags      *cli.Flags
	identifier langid.Identifier
	langCache  *langid.Cache
	dispatcher *stevens.Dispatcher
	engineOpts []transcriber.Option
	store      *store.Store
	logger     *log.Logger
	out        io.Writer
}

// Option configures a Processor.
type Option func(*Processor)

// WithIdentifier overrides the language identifier built from the flags.
func WithIdentifier(id langid.Identifier) Option {
	return func(p *Processor) {
		p.identifier = id
	}
}

// WithOutput sets where transcriptions are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Processor) {
		p.out = w
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// NewProcessor creates a processor for flags. The store is opened when
// flags.DBPath is set and must be released with Close.
func NewProcessor(flags *cli.Flags, opts ...Option) (*Processor, error) {
	p := &Processor{
		flags:  flags,
		logger: log.Default(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.engineOpts = engineOptions(flags)
	if _, err := transcriber.DefaultConfig().With(p.engineOpts...); err != nil {
		return nil, err
	}

	if p.identifier == nil && p.detects() {
		cache, err := newIdentifier(flags, p.logger)
		switch {
		case err == nil:
			p.identifier = cache
			p.langCache = cache
		case flags.AutoLang:
			return nil, fmt.Errorf("failed to create language identifier: %w", err)
		default:
			// Lines with a "tag = text" prefix still work without one
			p.logger.Warn("No language given and no language identifier available", "err", err)
		}
	}
	dopts := []stevens.DispatcherOption{stevens.WithLogger(p.logger)}
	if p.identifier != nil {
		dopts = append(dopts, stevens.WithIdentifier(p.identifier))
	}
	p.dispatcher = stevens.NewDispatcher(dopts...)

	if flags.DBPath != "" {
		s, err := store.Open(flags.DBPath)
		if err != nil {
			return nil, err
		}
		p.store = s
	}
	return p, nil
}

// Close releases the store.
func (p *Processor) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

func engineOptions(flags *cli.Flags) []transcriber.Option {
	punct := transcriber.PunctuationDrop
	if flags.KeepPunctuation {
		punct = transcriber.PunctuationKeep
	}
	return []transcriber.Option{
		transcriber.WithAlphabetName(flags.Alphabet),
		transcriber.WithSyllabicSeparator(flags.SyllabicSeparator),
		transcriber.WithStressMark(flags.StressMark),
		transcriber.WithWordSeparator(flags.WordSeparator),
		transcriber.WithPunctuation(punct),
	}
}

// detects reports whether texts without a language prefix go to the
// language identifier.
func (p *Processor) detects() bool {
	return p.flags.AutoLang || p.flags.Language == ""
}

// newIdentifier builds the configured identifier. When keys for both
// providers are present the other one serves as fallback.
func newIdentifier(flags *cli.Flags, logger *log.Logger) (*langid.Cache, error) {
	creds, err := cli.LoadCredentials()
	if err != nil {
		return nil, err
	}

	config := langid.DefaultConfig()
	config.Provider = flags.Identifier
	config.OpenAIKey = creds.OpenAIKey
	config.OpenAIModel = flags.OpenAIModel
	config.OpenAIBaseURL = creds.OpenAIBaseURL
	config.GeminiKey = creds.GeminiKey
	config.GeminiModel = flags.GeminiModel
	config.GeminiBaseURL = creds.GeminiBaseURL

	primary, err := langid.NewIdentifier(config)
	if err != nil {
		return nil, err
	}

	other := *config
	switch config.Provider {
	case "openai":
		other.Provider = "gemini"
	case "gemini":
		other.Provider = "openai"
	}
	if fallback, err := langid.NewIdentifier(&other); err == nil {
		logger.Debug("Using fallback language identifier", "primary", primary.Name(), "fallback", fallback.Name())
		primary = langid.NewIdentifierWithFallback(primary, fallback, logger)
	}
	return langid.NewCache(primary), nil
}

// ProcessText transcribes a single text given on the command line.
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	entry := batch.Entry{Line: 1, Text: text}
	return p.run(ctx, "args", []batch.Entry{entry}, false)
}

// ProcessReader transcribes every line read from r.
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader) error {
	entries, err := batch.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return p.run(ctx, "stdin", entries, false)
}

// ProcessBatch transcribes the entries of the batch file and reports a
// summary.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	return p.run(ctx, p.flags.BatchFile, entries, true)
}

func (p *Processor) run(ctx context.Context, source string, entries []batch.Entry, summary bool) error {
	var runID string
	if p.store != nil {
		id, err := p.store.BeginRun(source)
		if err != nil {
			return err
		}
		runID = id
	}

	start := time.Now()
	results, err := p.ProcessEntries(ctx, runID, entries)
	if err != nil {
		return err
	}

	s := Summary{Total: len(results), Duration: time.Since(start)}
	for _, res := range results {
		switch {
		case res.Err != nil:
			s.Failed++
			p.logger.Error("Failed to transcribe", "line", res.Entry.Line, "text", res.Entry.Text, "err", res.Err)
		default:
			if res.Cached {
				s.Cached++
			}
			if summary {
				fmt.Fprintf(p.out, "%s\t%s\n", res.Entry.Text, res.Transcription)
			} else {
				fmt.Fprintln(p.out, res.Transcription)
			}
		}
	}

	if p.store != nil {
		if err := p.store.FinishRun(runID, s.Total-s.Failed, s.Failed); err != nil {
			p.logger.Warn("Failed to record run", "err", err)
		}
	}
	if summary {
		p.logger.Info(s.String())
	}
	p.logIdentified()

	if s.Failed > 0 {
		return fmt.Errorf("%w: %d of %d texts", ErrFailed, s.Failed, s.Total)
	}
	return nil
}

// ProcessEntries transcribes entries with at most flags.Jobs in parallel.
// Results keep the order of entries; per-entry errors are reported in the
// results, not returned. runID is the store run the results belong to.
func (p *Processor) ProcessEntries(ctx context.Context, runID string, entries []batch.Entry) ([]Result, error) {
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.flags.Jobs, 1))
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.transcribe(ctx, runID, entry)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Processor) transcribe(ctx context.Context, runID string, entry batch.Entry) Result {
	res := Result{Entry: entry}

	lang := entry.Language
	detect := lang == "" && p.detects()
	if lang == "" {
		lang = p.flags.Language
	}

	var key string
	if p.store != nil && !detect {
		k, err := p.key(lang, entry.Text)
		if err != nil {
			res.Err = err
			return res
		}
		key = k
		cached, ok, err := p.store.Lookup(key)
		if err != nil {
			p.logger.Warn("Store lookup failed", "err", err)
		} else if ok {
			p.logger.Debug("Using stored transcription", "line", entry.Line, "key", key[:12])
			res.Language = cached.Language
			res.Transcription = cached.Transcription
			res.Cached = true
			return res
		}
	}

	ropts := []stevens.RequestOption{
		stevens.WithLanguage(lang),
		stevens.WithEngineOptions(p.engineOpts...),
	}
	if detect {
		ropts = append(ropts, stevens.WithAutoDetect())
	}
	tr, err := p.dispatcher.Analyze(ctx, entry.Text, ropts...)
	if err != nil {
		res.Err = err
		return res
	}
	res.Language = tr.Language
	res.Transcription = tr.String()

	if p.store != nil {
		if err := p.store.Save(runID, store.NewEntry(entry.Text, tr)); err != nil {
			p.logger.Warn("Failed to store transcription", "line", entry.Line, "err", err)
		}
	}
	return res
}

// key returns the store key of text in lang with the processor's options.
func (p *Processor) key(lang, text string) (string, error) {
	engine, err := p.dispatcher.Resolve(lang)
	if err != nil {
		return "", err
	}
	cfg, err := engine.Config().With(p.engineOpts...)
	if err != nil {
		return "", err
	}
	return store.Key(engine.Language(), cfg, text), nil
}

// logIdentified logs how many texts the identifier assigned to each
// language so far.
func (p *Processor) logIdentified() {
	if p.langCache == nil {
		return
	}
	counts := make(map[string]int)
	for _, tag := range p.langCache.GetAll() {
		counts[tag]++
	}
	for tag, n := range counts {
		p.logger.Debug("Texts per identified language", "tag", tag, "texts", n)
	}
}

// ListRuns writes the runs recorded in the store to w, oldest first.
func (p *Processor) ListRuns(w io.Writer) error {
	if p.store == nil {
		return fmt.Errorf("--list-runs requires --db")
	}
	runs, err := p.store.Runs()
	if err != nil {
		return err
	}
	for _, r := range runs {
		status := "unfinished"
		if !r.FinishedAt.IsZero() {
			status = fmt.Sprintf("%d ok, %d failed", r.Succeeded, r.Failed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, humanize.Time(r.StartedAt), r.Source, status)
	}
	return nil
}

// ExportCSV writes every stored transcription to path.
func (p *Processor) ExportCSV(path string) error {
	if p.store == nil {
		return fmt.Errorf("--export-csv requires --db")
	}
	n, err := p.store.ExportCSV(path)
	if err != nil {
		return err
	}
	p.logger.Info("Exported transcriptions", "count", humanize.Comma(int64(n)), "path", path)
	return nil
}

// ArchiveDatabase moves the database at dbPath into its archive directory.
func ArchiveDatabase(dbPath string, logger *log.Logger) error {
	if dbPath == "" {
		return fmt.Errorf("--archive requires --db")
	}
	var size uint64
	if fi, err := os.Stat(dbPath); err == nil {
		size = uint64(fi.Size())
	}
	archived, err := archive.ArchiveDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("failed to archive database: %w", err)
	}
	logger.Info("Archived database", "path", archived, "size", humanize.Bytes(size))
	return nil
}

// ListLanguages writes the supported language tags to w.
func ListLanguages(w io.Writer) {
	fmt.Fprintln(w, strings.Join(stevens.SupportedLanguages(), "\n"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
