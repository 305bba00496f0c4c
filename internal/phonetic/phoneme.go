package phonetic

// Phoneme is an alphabet-independent phoneme identifier.
type Phoneme string

const (
	// Vowels
	PhonA Phoneme = "a"
	PhonE Phoneme = "e"
	PhonI Phoneme = "i"
	PhonO Phoneme = "o"
	PhonU Phoneme = "u"

	// Glides (non-syllabic i and u)
	PhonJ Phoneme = "j"
	PhonW Phoneme = "w"

	// Stops
	PhonP Phoneme = "p"
	PhonB Phoneme = "b"
	PhonT Phoneme = "t"
	PhonD Phoneme = "d"
	PhonK Phoneme = "k"
	PhonG Phoneme = "g"

	// Approximant allophones of b, d, g
	PhonBeta  Phoneme = "beta"
	PhonEth   Phoneme = "eth"
	PhonGamma Phoneme = "gamma"

	// Fricatives
	PhonF     Phoneme = "f"
	PhonTheta Phoneme = "theta"
	PhonS     Phoneme = "s"
	PhonZ     Phoneme = "z"
	PhonX     Phoneme = "x"
	PhonJj    Phoneme = "jj" // voiced palatal fricative, "y" in "yo"

	// Affricate
	PhonCh Phoneme = "ch"

	// Nasals
	PhonM  Phoneme = "m"
	PhonN  Phoneme = "n"
	PhonNy Phoneme = "ny" // palatal, "ñ"
	PhonNg Phoneme = "ng" // velar allophone of n

	// Liquids
	PhonL     Phoneme = "l"
	PhonLl    Phoneme = "ll" // palatal lateral
	PhonTap   Phoneme = "tap"
	PhonTrill Phoneme = "trill"
)

// AllPhonemes returns the complete phoneme inventory.
func AllPhonemes() []Phoneme {
	return []Phoneme{
		PhonA, PhonE, PhonI, PhonO, PhonU,
		PhonJ, PhonW,
		PhonP, PhonB, PhonT, PhonD, PhonK, PhonG,
		PhonBeta, PhonEth, PhonGamma,
		PhonF, PhonTheta, PhonS, PhonZ, PhonX, PhonJj,
		PhonCh,
		PhonM, PhonN, PhonNy, PhonNg,
		PhonL, PhonLl, PhonTap, PhonTrill,
	}
}

// Seq is a shorthand to build a phoneme slice. An empty call describes a
// silent grapheme.
func Seq(ps ...Phoneme) []Phoneme { return ps }
