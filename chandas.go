// Package chandas recognises the metre of Sanskrit verse given in
// Devanāgarī. It wraps the syllable scanner, the weight classifier, and
// the metre database behind a small facade: feed it the lines of a
// verse and it reports which metres match and how confidently.
package chandas

import (
	"sort"

	"go.uber.org/zap"

	"chandas/internal/identify"
	"chandas/internal/metredb"
	"chandas/internal/pattern"
	"chandas/internal/syllable"
)

// Chandas is the assembled engine. It is immutable after Load and safe
// for concurrent use.
type Chandas struct {
	db *metredb.Database
	id *identify.Identifier
}

// Syllable is one metrical unit of a line together with its weight,
// "L" (laghu) or "G" (guru).
type Syllable struct {
	Text   string
	Weight string
}

// Result lists matched metre names by confidence. Exact means the whole
// input matched a metre's schema; Partial means a half or corroborated
// pada evidence; Accidental means an isolated pada coincidence. The
// three lists are disjoint and sorted.
type Result struct {
	Exact      []string
	Partial    []string
	Accidental []string
}

// Load builds an engine from the bundled metre catalogs plus any extra
// catalog files. A nil logger silences catalog diagnostics.
func Load(logger *zap.Logger, extraCatalogs ...string) (*Chandas, error) {
	db, err := metredb.Load(logger, extraCatalogs...)
	if err != nil {
		return nil, err
	}
	return &Chandas{db: db, id: identify.New(db)}, nil
}

// ExtractSyllables splits one line into syllables with their weights.
func (c *Chandas) ExtractSyllables(line string) ([]Syllable, error) {
	parts, err := syllable.Assemble(line)
	if err != nil {
		return nil, err
	}
	out := make([]Syllable, len(parts))
	for i, p := range parts {
		out[i] = Syllable{Text: p, Weight: syllable.Classify(p).String()}
	}
	return out, nil
}

// ExtractPatterns converts verse lines into weight patterns, one per
// non-blank line. Lines that cannot be scanned are skipped; the error
// aggregates their failures while the returned patterns stay usable.
func (c *Chandas) ExtractPatterns(lines []string) ([]string, error) {
	return pattern.Lines(lines)
}

// Identify matches the given pada patterns against the catalog.
func (c *Chandas) Identify(patterns []string) Result {
	return toResult(c.id.IdentifyFromPatternLines(patterns))
}

// IdentifyVerse runs the full pipeline on raw Devanāgarī lines. A
// non-nil error reports lines that could not be scanned; the result
// still covers the lines that could.
func (c *Chandas) IdentifyVerse(lines []string) (Result, error) {
	patterns, err := c.ExtractPatterns(lines)
	return toResult(c.id.IdentifyFromPatternLines(patterns)), err
}

// Patterns returns the canonical pada patterns recorded for a metre, or
// nil if the name is unknown.
func (c *Chandas) Patterns(name string) []string {
	return c.db.Patterns(name)
}

// Describe returns the descriptive data recorded for a metre.
func (c *Chandas) Describe(name string) (metredb.Info, bool) {
	return c.db.Describe(name)
}

// Metres returns the number of distinct metre names in the catalog.
func (c *Chandas) Metres() int {
	return c.db.Len()
}

func toResult(r identify.Result) Result {
	return Result{
		Exact:      names(r.Exact),
		Partial:    names(r.Partial),
		Accidental: names(r.Accidental),
	}
}

func names(m map[string]metredb.RoleSet) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
