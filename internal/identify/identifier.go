// Package identify classifies weight patterns against the metre
// database and grades the matches by confidence.
//
// Evidence is gathered at every granularity the input allows and merged
// per metre name: a metre lands in exactly one bucket, its strongest.
package identify

import (
	"math/bits"
	"strings"

	"chandas/internal/metredb"
)

// Identifier runs read-only queries against one shared database. It is
// stateless between calls and safe for concurrent use.
type Identifier struct {
	db *metredb.Database
}

func New(db *metredb.Database) *Identifier {
	return &Identifier{db: db}
}

// Result holds matched metres bucketed by confidence. The buckets are
// disjoint; the value records which pada positions the metre matched.
type Result struct {
	Exact      map[string]metredb.RoleSet
	Partial    map[string]metredb.RoleSet
	Accidental map[string]metredb.RoleSet
}

func newResult() Result {
	return Result{
		Exact:      make(map[string]metredb.RoleSet),
		Partial:    make(map[string]metredb.RoleSet),
		Accidental: make(map[string]metredb.RoleSet),
	}
}

// Empty reports whether no metre matched at any confidence.
func (r Result) Empty() bool {
	return len(r.Exact) == 0 && len(r.Partial) == 0 && len(r.Accidental) == 0
}

// evidence accumulates per-metre match facts while querying.
type evidence struct {
	full     bool
	halves   metredb.RoleSet // half-verse roles matched (1 and/or 2)
	padas    metredb.RoleSet // pada roles matched
	lineMask uint8           // which input lines matched at pada level
}

// matchedLines counts distinct input lines with pada-level evidence.
func (e *evidence) matchedLines() int {
	return bits.OnesCount8(e.lineMask)
}

// padaCoverage folds half evidence into the matched-pada set.
func (e *evidence) padaCoverage() metredb.RoleSet {
	cover := e.padas
	if e.halves.Has(1) {
		cover = cover.Union(metredb.NewRoleSet(1, 2))
	}
	if e.halves.Has(2) {
		cover = cover.Union(metredb.NewRoleSet(3, 4))
	}
	return cover
}

// IdentifyFromPatternLines matches 1-4 pada patterns, given in reading
// order, against the catalog. Empty input yields an empty result, never
// an error; so does input that matches nothing.
func (id *Identifier) IdentifyFromPatternLines(patterns []string) Result {
	res := newResult()
	if len(patterns) == 0 {
		return res
	}

	ev := make(map[string]*evidence)
	get := func(name string) *evidence {
		e, ok := ev[name]
		if !ok {
			e = &evidence{}
			ev[name] = e
		}
		return e
	}

	switch len(patterns) {
	case 4:
		// Full verse: the full-verse index decides exactness; half and
		// pada queries supply lower-confidence evidence.
		for _, name := range id.db.LookupFull(strings.Join(patterns, "")) {
			get(name).full = true
		}
		for half, p := range map[int]string{
			1: patterns[0] + patterns[1],
			2: patterns[2] + patterns[3],
		} {
			for _, name := range id.db.LookupHalf(p, half) {
				e := get(name)
				e.halves = e.halves.With(half)
			}
		}
		id.gatherPadas(patterns, ev, get, false)

		for name, e := range ev {
			switch {
			case e.full:
				res.Exact[name] = metredb.NewRoleSet(1, 2, 3, 4)
			case e.halves != 0 || e.matchedLines() >= 2:
				res.Partial[name] = e.padaCoverage()
			default:
				res.Accidental[name] = e.padas
			}
		}

	case 2:
		// The input is one half-verse; a half match is the strongest
		// evidence obtainable. Which half is unknown, so both roles are
		// tried (for sama and ardha-sama metres they index alike).
		h := patterns[0] + patterns[1]
		for _, half := range []int{1, 2} {
			for _, name := range id.db.LookupHalf(h, half) {
				e := get(name)
				e.halves = e.halves.With(half)
			}
		}
		id.gatherPadas(patterns, ev, get, true)

		for name, e := range ev {
			switch {
			case e.halves != 0:
				res.Exact[name] = e.padaCoverage()
			case e.matchedLines() == 2:
				res.Partial[name] = e.padas
			default:
				res.Accidental[name] = e.padas
			}
		}

	case 1:
		// A lone pada can at best corroborate a metre partially.
		for role := 1; role <= 4; role++ {
			for _, name := range id.db.LookupPada(patterns[0], role) {
				e := get(name)
				e.padas = e.padas.With(role)
				e.lineMask |= 1
			}
		}
		for name, e := range ev {
			res.Partial[name] = e.padas
		}

	default:
		// Odd shapes (three lines, or more than four): pada evidence
		// only, corroborated when at least two lines agree.
		id.gatherPadas(patterns, ev, get, false)
		for name, e := range ev {
			if e.matchedLines() >= 2 {
				res.Partial[name] = e.padas
			} else {
				res.Accidental[name] = e.padas
			}
		}
	}
	return res
}

// gatherPadas queries each input line at its pada role. When asHalf is
// set the two lines are additionally tried as padas 3 and 4, since a
// half-verse input may be either half.
func (id *Identifier) gatherPadas(patterns []string, ev map[string]*evidence, get func(string) *evidence, asHalf bool) {
	for i, p := range patterns {
		roles := []int{i%4 + 1}
		if asHalf {
			roles = append(roles, i+3)
		}
		for _, role := range roles {
			for _, name := range id.db.LookupPada(p, role) {
				e := get(name)
				e.padas = e.padas.With(role)
				e.lineMask |= 1 << uint(i)
			}
		}
	}
}
