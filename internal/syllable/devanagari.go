package syllable

// Devanagari codepoint classes used by the cleaner, the scanner, and the
// weight classifier. The classes cover the character set the prosody
// rules understand: independent vowels, consonants, dependent vowel
// signs, nukta, yogavāha marks, and Vedic accents. Everything else is
// stripped before scanning.

const (
	virama      = '्' // ्
	nukta       = '़' // ़
	om          = 'ॐ' // ॐ
	candrabindu = 'ँ' // ँ
)

// omExpansion is the phonetic form the OM ligature is replaced with
// before segmentation: ओ + म + virama.
const omExpansion = "ओम्"

func isIndependentVowel(r rune) bool {
	return (r >= 'ऄ' && r <= 'औ') || // ऄ-औ
		r == 'ॠ' || r == 'ॡ' || // ॠ ॡ
		(r >= 'ॲ' && r <= 'ॷ') // ॲ-ॷ
}

// isLongIndependentVowel reports the long vowels and diphthongs
// ā ī ū ṝ ḹ e ai o au in their independent forms.
func isLongIndependentVowel(r rune) bool {
	switch r {
	case 'आ', 'ई', 'ऊ', // आ ई ऊ
		'ए', 'ऐ', 'ओ', 'औ', // ए ऐ ओ औ
		'ॠ', 'ॡ': // ॠ ॡ
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return (r >= 'क' && r <= 'ह') || // क-ह
		(r >= 'क़' && r <= 'य़') // क़-य़
}

func isDependentVowel(r rune) bool {
	return (r >= 'ा' && r <= 'ौ') || // ा-ौ
		r == 'ऺ' || r == 'ऻ' || // ऺ ऻ
		r == 'ॎ' || r == 'ॏ' || // ॎ ॏ
		(r >= 'ॕ' && r <= 'ॗ') || // ॕ ॖ ॗ
		r == 'ॢ' || r == 'ॣ' // ॢ ॣ
}

// isLongDependentVowel reports the vowel signs for ā ī ū ṝ ḹ e ai o au.
func isLongDependentVowel(r rune) bool {
	switch r {
	case 'ा', 'ी', 'ू', 'ॄ', // ा ी ू ॄ
		'े', 'ै', 'ो', 'ौ', // े ै ो ौ
		'ॣ': // ॣ
		return true
	}
	return false
}

// isYogavaha covers candrabindu, anusvāra and visarga (plus the inverted
// candrabindu used in Vedic texts).
func isYogavaha(r rune) bool {
	return r >= 'ऀ' && r <= 'ः'
}

// isAccent covers the Devanagari stress signs and the Vedic extension
// blocks of svara and tone marks.
func isAccent(r rune) bool {
	return (r >= '॑' && r <= '॔') ||
		(r >= '᳐' && r <= '᳿') ||
		(r >= '꣠' && r <= '꣱')
}
