// Package grapheme splits text into Unicode extended grapheme clusters
// (UAX #29). It is the first stage of the prosody pipeline: clusters keep
// Devanagari dependent vowel signs attached to their base consonant, but
// a virama does not pull the following consonant into the same cluster.
// Conjunct grouping is the syllable layer's job.
package grapheme

import "github.com/rivo/uniseg"

// Split partitions s into extended grapheme clusters. Concatenating the
// result reproduces s exactly. Empty input yields nil.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s)/2)
	state := -1
	var c string
	for len(s) > 0 {
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, c)
	}
	return clusters
}

// Count returns the number of extended grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
