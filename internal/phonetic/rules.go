package phonetic

import (
	"errors"
	"fmt"
	"sort"
)

// Boundary in a Context matches the edge of the word, or the edge of the
// syllable for rules restricted to it.
const Boundary = "#"

// Context lists alternative letter sequences, one of which must sit right
// next to the grapheme for a rule to apply. An empty Context matches anything.
type Context []string

// Rule maps a grapheme, optionally constrained by its neighbours, to phonemes.
type Rule struct {
	Grapheme string
	Left     Context
	Right    Context
	// InSyllable limits both contexts to the syllable being mapped.
	InSyllable bool
	Phonemes   []Phoneme
}

func (r Rule) specificity() int {
	n := 0
	if len(r.Left) > 0 {
		n++
	}
	if len(r.Right) > 0 {
		n++
	}
	return n
}

func (r Rule) matches(word []rune, gs, ge, ss, se int) bool {
	lo, hi := 0, len(word)
	if r.InSyllable {
		lo, hi = ss, se
	}
	return r.Left.matchLeft(word[lo:gs]) && r.Right.matchRight(word[ge:hi])
}

func (c Context) matchLeft(before []rune) bool {
	if len(c) == 0 {
		return true
	}
	for _, alt := range c {
		if alt == Boundary {
			if len(before) == 0 {
				return true
			}
			continue
		}
		want := []rune(alt)
		if len(want) <= len(before) && equalRunes(before[len(before)-len(want):], want) {
			return true
		}
	}
	return false
}

func (c Context) matchRight(after []rune) bool {
	if len(c) == 0 {
		return true
	}
	for _, alt := range c {
		if alt == Boundary {
			if len(after) == 0 {
				return true
			}
			continue
		}
		want := []rune(alt)
		if len(want) <= len(after) && equalRunes(after[:len(want)], want) {
			return true
		}
	}
	return false
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ErrEmptyGrapheme is returned by NewTable for a rule without a grapheme.
var ErrEmptyGrapheme = errors.New("rule has an empty grapheme")

// UnmatchedError reports a letter no rule could consume.
type UnmatchedError struct {
	Grapheme string
	Offset   int // rune offset into the word
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("no rule for grapheme %q at offset %d", e.Grapheme, e.Offset)
}

// Table is an immutable grapheme rule set indexed for longest-match lookup.
type Table struct {
	rules  map[string][]Rule
	maxLen int
}

// NewTable indexes rules by grapheme. Within a grapheme, rules constrained
// on both sides are tried before one-sided rules, which are tried before
// unconstrained ones; ties keep declaration order.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{rules: make(map[string][]Rule)}
	for i, r := range rules {
		if r.Grapheme == "" {
			return nil, fmt.Errorf("rule %d: %w", i, ErrEmptyGrapheme)
		}
		t.rules[r.Grapheme] = append(t.rules[r.Grapheme], r)
		if n := len([]rune(r.Grapheme)); n > t.maxLen {
			t.maxLen = n
		}
	}
	for g := range t.rules {
		bucket := t.rules[g]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].specificity() > bucket[j].specificity()
		})
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error. It is meant for
// package-level rule tables.
func MustNewTable(rules []Rule) *Table {
	t, err := NewTable(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Map converts the syllable word[start:end] into phonemes. Letters outside
// the syllable stay visible to rule contexts unless a rule is InSyllable.
// Longer graphemes are tried first; when none of a grapheme's rules fit the
// context, shorter graphemes are tried.
func (t *Table) Map(word []rune, start, end int) ([]Phoneme, error) {
	out := make([]Phoneme, 0, end-start)
	for i := start; i < end; {
		n, ps, ok := t.match(word, i, start, end)
		if !ok {
			return nil, &UnmatchedError{Grapheme: string(word[i]), Offset: i}
		}
		out = append(out, ps...)
		i += n
	}
	return out, nil
}

func (t *Table) match(word []rune, i, start, end int) (int, []Phoneme, bool) {
	for n := min(t.maxLen, end-i); n >= 1; n-- {
		for _, r := range t.rules[string(word[i:i+n])] {
			if r.matches(word, i, i+n, start, end) {
				return n, r.Phonemes, true
			}
		}
	}
	return 0, nil, false
}

// Phonemes returns every phoneme some rule can produce, sorted.
func (t *Table) Phonemes() []Phoneme {
	seen := make(map[Phoneme]bool)
	for _, bucket := range t.rules {
		for _, r := range bucket {
			for _, ph := range r.Phonemes {
				seen[ph] = true
			}
		}
	}
	out := make([]Phoneme, 0, len(seen))
	for ph := range seen {
		out = append(out, ph)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Graphemes returns the graphemes the table has rules for, sorted.
func (t *Table) Graphemes() []string {
	out := make([]string, 0, len(t.rules))
	for g := range t.rules {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
