// Package transcriber is the language-independent transcription engine. It
// segments text into words, asks a language's hyphenator for syllables,
// resolves the stressed syllable, maps graphemes to phonemes with the
// language's rule table and renders the result in the requested phonetic
// alphabet with configurable separators and stress mark.
//
// A Transcriber is immutable after construction; a single instance may be
// used from many goroutines at once.
package transcriber
