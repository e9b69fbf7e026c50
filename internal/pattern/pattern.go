// Package pattern turns Devanagari verse lines into metrical weight
// patterns: strings over the alphabet {L, G}, one symbol per syllable.
package pattern

import (
	"strings"

	"go.uber.org/multierr"

	"chandas/internal/syllable"
)

// Line converts one line into its weight pattern. A line that cleans
// down to nothing yields the empty pattern.
func Line(line string) (string, error) {
	syls, err := syllable.Assemble(line)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(syls))
	for _, s := range syls {
		b.WriteString(syllable.Classify(s).String())
	}
	return b.String(), nil
}

// Lines converts each input line into a weight pattern. Blank lines and
// lines that clean down to nothing are dropped, not represented as empty
// patterns. Lines that cannot be segmented are skipped and their errors
// combined into the returned error; the returned patterns are still
// usable alongside a non-nil error.
func Lines(lines []string) ([]string, error) {
	var patterns []string
	var errs error
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		p, err := Line(l)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns, errs
}
