package es

import "codeberg.org/snonux/stevens/internal/phonetic"

const wb = phonetic.Boundary

type cx = phonetic.Context

var (
	vowels       = cx{"a", "e", "i", "o", "u", "á", "é", "í", "ó", "ú"}
	strongVowels = cx{"a", "e", "o", "á", "é", "ó"}
	frontVowels  = cx{"e", "i", "é", "í"}
	nonIVowels   = cx{"a", "e", "o", "u", "á", "é", "ó", "ú"}
	nonUVowels   = cx{"a", "e", "i", "o", "á", "é", "í", "ó"}

	// consonants after which s is voiced
	voiced = cx{"b", "d", "g", "l", "m", "n", "v", "r"}
	// sounds n assimilates to
	labials = cx{"p", "b", "v", "m"}
	velars  = cx{"k", "q", "g", "j", "ca", "co", "cu", "cá", "có", "cú", "cl", "cr"}
)

func seq(ps ...phonetic.Phoneme) []phonetic.Phoneme { return ps }

const (
	a, e, i, o, u = phonetic.PhonA, phonetic.PhonE, phonetic.PhonI, phonetic.PhonO, phonetic.PhonU
	j, w          = phonetic.PhonJ, phonetic.PhonW
)

var rules = []phonetic.Rule{
	// Vowels. Accents only matter for stress.
	{Grapheme: "a", Phonemes: seq(a)},
	{Grapheme: "á", Phonemes: seq(a)},
	{Grapheme: "e", Phonemes: seq(e)},
	{Grapheme: "é", Phonemes: seq(e)},
	{Grapheme: "o", Phonemes: seq(o)},
	{Grapheme: "ó", Phonemes: seq(o)},
	{Grapheme: "í", Phonemes: seq(i)},
	{Grapheme: "ú", Phonemes: seq(u)},

	// Unaccented i and u glide next to another vowel of their syllable.
	{Grapheme: "i", Right: nonIVowels, InSyllable: true, Phonemes: seq(j)},
	{Grapheme: "i", Left: strongVowels, InSyllable: true, Phonemes: seq(j)},
	{Grapheme: "i", Phonemes: seq(i)},
	{Grapheme: "u", Right: nonUVowels, InSyllable: true, Phonemes: seq(w)},
	{Grapheme: "u", Left: strongVowels, InSyllable: true, Phonemes: seq(w)},
	{Grapheme: "u", Phonemes: seq(u)},
	{Grapheme: "ü", Phonemes: seq(w)},
	// Final uy is a rising diphthong: muy, cuy.
	{Grapheme: "uy", Right: cx{wb}, Phonemes: seq(w, i)},

	// y is a vowel alone, a glide closing a word and a fricative before a vowel.
	{Grapheme: "y", Left: cx{wb}, Right: cx{wb}, Phonemes: seq(i)},
	{Grapheme: "y", Left: vowels, Right: cx{wb}, Phonemes: seq(j)},
	{Grapheme: "y", Right: vowels, Phonemes: seq(phonetic.PhonJj)},
	{Grapheme: "y", Phonemes: seq(i)},

	// Stops and their approximant allophones.
	{Grapheme: "p", Phonemes: seq(phonetic.PhonP)},
	{Grapheme: "t", Phonemes: seq(phonetic.PhonT)},
	{Grapheme: "k", Phonemes: seq(phonetic.PhonK)},
	{Grapheme: "b", Left: cx{wb, "m", "n"}, Phonemes: seq(phonetic.PhonB)},
	{Grapheme: "b", Phonemes: seq(phonetic.PhonBeta)},
	{Grapheme: "v", Left: cx{wb, "m", "n"}, Phonemes: seq(phonetic.PhonB)},
	{Grapheme: "v", Phonemes: seq(phonetic.PhonBeta)},
	{Grapheme: "d", Left: cx{wb, "n", "l"}, Phonemes: seq(phonetic.PhonD)},
	{Grapheme: "d", Phonemes: seq(phonetic.PhonEth)},

	// c, q and z
	{Grapheme: "c", Right: frontVowels, Phonemes: seq(phonetic.PhonTheta)},
	{Grapheme: "c", Phonemes: seq(phonetic.PhonK)},
	{Grapheme: "ch", Phonemes: seq(phonetic.PhonCh)},
	{Grapheme: "qu", Right: frontVowels, Phonemes: seq(phonetic.PhonK)},
	{Grapheme: "qu", Phonemes: seq(phonetic.PhonK, w)},
	{Grapheme: "q", Phonemes: seq(phonetic.PhonK)},
	{Grapheme: "z", Phonemes: seq(phonetic.PhonTheta)},

	// g: velar fricative before e and i, stop after a pause or a nasal.
	{Grapheme: "gu", Left: cx{wb, "n"}, Right: frontVowels, Phonemes: seq(phonetic.PhonG)},
	{Grapheme: "gu", Right: frontVowels, Phonemes: seq(phonetic.PhonGamma)},
	{Grapheme: "g", Right: frontVowels, Phonemes: seq(phonetic.PhonX)},
	{Grapheme: "g", Left: cx{wb, "n"}, Phonemes: seq(phonetic.PhonG)},
	{Grapheme: "g", Phonemes: seq(phonetic.PhonGamma)},
	{Grapheme: "j", Phonemes: seq(phonetic.PhonX)},

	// Fricatives
	{Grapheme: "f", Phonemes: seq(phonetic.PhonF)},
	{Grapheme: "s", Right: voiced, Phonemes: seq(phonetic.PhonZ)},
	{Grapheme: "s", Phonemes: seq(phonetic.PhonS)},
	{Grapheme: "x", Left: cx{wb}, Phonemes: seq(phonetic.PhonS)},
	{Grapheme: "x", Phonemes: seq(phonetic.PhonK, phonetic.PhonS)},
	{Grapheme: "h", Phonemes: seq()},

	// Nasals
	{Grapheme: "m", Phonemes: seq(phonetic.PhonM)},
	{Grapheme: "n", Right: labials, Phonemes: seq(phonetic.PhonM)},
	{Grapheme: "n", Right: velars, Phonemes: seq(phonetic.PhonNg)},
	{Grapheme: "n", Phonemes: seq(phonetic.PhonN)},
	{Grapheme: "ñ", Phonemes: seq(phonetic.PhonNy)},

	// Liquids
	{Grapheme: "l", Phonemes: seq(phonetic.PhonL)},
	{Grapheme: "ll", Phonemes: seq(phonetic.PhonLl)},
	{Grapheme: "r", Left: cx{wb, "n", "l", "s"}, Phonemes: seq(phonetic.PhonTrill)},
	{Grapheme: "r", Phonemes: seq(phonetic.PhonTap)},
	{Grapheme: "rr", Phonemes: seq(phonetic.PhonTrill)},

	// Loan letter
	{Grapheme: "w", Phonemes: seq(w)},
}
