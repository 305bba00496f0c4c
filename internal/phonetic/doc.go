// Package phonetic holds the phoneme inventory, the phonetic alphabets used
// to render it, and the context-sensitive grapheme rule table that maps
// written letters to phonemes. Tables are built once and are read-only
// afterwards, so they can be shared between goroutines.
package phonetic
