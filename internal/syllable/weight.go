package syllable

// Weight is the metrical weight of one syllable.
type Weight int

const (
	Laghu Weight = iota // light, one mora
	Guru                // heavy, two morae
)

// String returns the pattern symbol for the weight: "L" or "G".
func (w Weight) String() string {
	if w == Guru {
		return "G"
	}
	return "L"
}

// Classify returns the weight of one assembled syllable. A syllable is
// guru if its vowel is long or a diphthong, if it carries a yogavāha
// mark, or if it is closed by a dead-consonant coda; laghu otherwise.
// Total and deterministic for any input.
func Classify(syl string) Weight {
	rs := []rune(syl)
	for _, r := range rs {
		if isLongIndependentVowel(r) || isLongDependentVowel(r) || isYogavaha(r) {
			return Guru
		}
	}
	if n := len(rs); n > 0 && rs[n-1] == virama {
		return Guru
	}
	return Laghu
}
