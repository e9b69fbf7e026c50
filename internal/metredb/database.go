package metredb

import (
	"fmt"
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// Database is the immutable metre catalog, indexed at full-verse,
// half-verse, and pada granularity. All lookups are read-only and
// reentrant.
type Database struct {
	full map[string]map[string]struct{}
	half map[string]map[string]RoleSet
	pada map[string]map[string]RoleSet

	fullRules []Rule
	halfRules []Rule
	padaRules []Rule

	canonical map[string][]string
	info      map[string]Info
}

// Rule is a compiled metre schema matched by language membership over
// {L, G} rather than by hash lookup.
type Rule struct {
	re    *regexp.Regexp
	name  string
	roles RoleSet
}

// Info is the descriptive side channel for one metre name. It never
// participates in matching.
type Info struct {
	Samatva     Samatva
	Description string
	Video       string
}

// Load builds the database from the bundled catalog sources, merged in
// fixed order, plus any extra catalog files given by path. Conflicting
// or malformed entries are logged on the given logger and skipped; only
// unreadable sources are fatal. Meant to be called once at startup.
func Load(logger *zap.Logger, extra ...string) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := newBuilder(logger)
	b.addAnustup()
	b.addAryaFamily()

	for _, src := range bundledSources {
		data, err := bundled.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("bundled catalog %s: %w", src, err)
		}
		entries, err := readCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("bundled catalog %s: %w", src, err)
		}
		b.addSource(src, entries)
	}
	for _, path := range extra {
		entries, err := ReadCatalogFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		b.addSource(path, entries)
	}
	db := b.freeze()
	logger.Info("metre database built",
		zap.Int("metres", db.Len()),
		zap.Int("full_keys", len(db.full)),
		zap.Int("half_keys", len(db.half)),
		zap.Int("pada_keys", len(db.pada)))
	return db, nil
}

// LookupFull returns every metre whose expanded full-verse pattern or
// compiled rule matches p. Names are sorted.
func (d *Database) LookupFull(p string) []string {
	seen := make(map[string]struct{})
	for name := range d.full[p] {
		seen[name] = struct{}{}
	}
	for _, r := range d.fullRules {
		if r.re.MatchString(p) {
			seen[r.name] = struct{}{}
		}
	}
	return sortedNames(seen)
}

// LookupHalf returns every metre matching p as the given half of a
// verse: half 1 covers padas {1,2}, half 2 covers padas {3,4}.
func (d *Database) LookupHalf(p string, half int) []string {
	seen := make(map[string]struct{})
	for name, roles := range d.half[p] {
		if roles.Has(half) {
			seen[name] = struct{}{}
		}
	}
	for _, r := range d.halfRules {
		if r.roles.Has(half) && r.re.MatchString(p) {
			seen[r.name] = struct{}{}
		}
	}
	return sortedNames(seen)
}

// LookupPada returns every metre matching p as the pada in the given
// 1-based position.
func (d *Database) LookupPada(p string, pada int) []string {
	seen := make(map[string]struct{})
	for name, roles := range d.pada[p] {
		if roles.Has(pada) {
			seen[name] = struct{}{}
		}
	}
	for _, r := range d.padaRules {
		if r.roles.Has(pada) && r.re.MatchString(p) {
			seen[r.name] = struct{}{}
		}
	}
	return sortedNames(seen)
}

// Patterns returns the canonical (four) pada patterns recorded for the
// metre, or nil if the name is unknown.
func (d *Database) Patterns(name string) []string {
	padas, ok := d.canonical[name]
	if !ok {
		return nil
	}
	out := make([]string, len(padas))
	copy(out, padas)
	return out
}

// Describe returns the descriptive data recorded for the metre.
func (d *Database) Describe(name string) (Info, bool) {
	info, ok := d.info[name]
	return info, ok
}

// Len returns the number of distinct metre names in the catalog,
// counting both pattern-indexed and rule-matched metres.
func (d *Database) Len() int {
	return len(d.info)
}

func sortedNames(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
