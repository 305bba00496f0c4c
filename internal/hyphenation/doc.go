// Package hyphenation splits words into syllables. It ships a rule-based
// syllabifier for Spanish and a lookup that returns the hyphenator for a
// language tag.
package hyphenation
