// Package syllable assembles Devanagari text into prosodic syllables and
// classifies their metrical weight.
//
// A syllable is zero or more dead consonants (consonant + virama, no
// vowel of their own), one vowel-bearing unit (an independent vowel, or
// a consonant with its inherent or a dependent vowel) together with its
// trailing yogavāha and accent marks, and a provisional coda of further
// dead consonants. Concatenating the syllables of a line reproduces the
// cleaned line exactly.
//
// All functions are pure and safe for concurrent use.
package syllable

import (
	"fmt"
	"strings"

	"chandas/internal/grapheme"
)

// SegmentationError reports input that the syllable grammar could not
// consume. Remainder holds the unconsumed tail of the cleaned line.
type SegmentationError struct {
	Line      string
	Remainder string
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("syllable segmentation stuck at %q in line %q", e.Remainder, e.Line)
}

// Clean strips s down to the character set the scanner understands,
// removing whitespace, punctuation, daṇḍas and digits, and expands the
// OM ligature to its phonetic form.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == om:
			b.WriteString(omExpansion)
		case isIndependentVowel(r), isConsonant(r), isDependentVowel(r),
			r == virama, r == nukta, isYogavaha(r), isAccent(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Assemble splits a Devanagari line into prosodic syllables. The line is
// cleaned, segmented into grapheme clusters, and the clusters grouped by
// the syllable grammar; concatenating the returned syllables reproduces
// the cleaned line exactly. Identical input always yields an identical
// syllable list.
func Assemble(line string) ([]string, error) {
	cs := grapheme.Split(Clean(line))
	var out []string
	i := 0
	for i < len(cs) {
		end, ok := scanOne(cs, i)
		if !ok {
			return nil, &SegmentationError{Line: line, Remainder: strings.Join(cs[i:], "")}
		}
		out = append(out, strings.Join(cs[i:end], ""))
		i = end
	}
	return out, nil
}

// scanOne consumes one syllable's worth of grapheme clusters starting at
// i and returns the end index.
func scanOne(cs []string, i int) (int, bool) {
	j := i

	// 1. Onset: dead consonants attach to the vowel-bearing unit that
	// follows them.
	for j < len(cs) && isDeadCluster(cs[j]) {
		j++
	}

	// 2. Exactly one vowel-bearing unit. Its dependent vowel signs,
	// yogavāha and accent marks arrive inside the same cluster.
	if j >= len(cs) || !isVowelBearingCluster(cs[j]) {
		return 0, false
	}
	j++

	// 3. Provisional coda: trailing dead consonants, consumed greedily.
	codaStart := j
	for j < len(cs) && isDeadCluster(cs[j]) {
		j++
	}

	// 4. Sandhi reattachment: a dead-consonant coda directly before a
	// vowel-initial unit belongs to that unit's onset, not to this
	// syllable.
	if j > codaStart && j < len(cs) && startsWithIndependentVowel(cs[j]) {
		j = codaStart
	}
	return j, true
}

// isDeadCluster reports a consonant killed by a virama: no vowel sign of
// its own, optionally nasalized or accented.
func isDeadCluster(c string) bool {
	rs := []rune(c)
	if len(rs) == 0 || !isConsonant(rs[0]) {
		return false
	}
	dead := false
	for _, r := range rs[1:] {
		switch {
		case r == virama:
			dead = true
		case r == nukta, r == candrabindu, isAccent(r):
		default:
			return false
		}
	}
	return dead
}

// isVowelBearingCluster reports an independent vowel, or a consonant
// carrying its inherent or a dependent vowel, in either case possibly
// followed by yogavāha and accent marks within the cluster.
func isVowelBearingCluster(c string) bool {
	rs := []rune(c)
	if len(rs) == 0 {
		return false
	}
	if isIndependentVowel(rs[0]) {
		for _, r := range rs[1:] {
			if !isYogavaha(r) && !isAccent(r) {
				return false
			}
		}
		return true
	}
	if !isConsonant(rs[0]) {
		return false
	}
	for _, r := range rs[1:] {
		switch {
		case r == nukta, isDependentVowel(r), isYogavaha(r), isAccent(r):
		default:
			return false
		}
	}
	return true
}

func startsWithIndependentVowel(c string) bool {
	rs := []rune(c)
	return len(rs) > 0 && isIndependentVowel(rs[0])
}
