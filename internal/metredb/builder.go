package metredb

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// builder accumulates (pattern, metre, role) triples and compiled rules
// from all catalog sources, then freezes them into the read-only
// database. Two-phase construction keeps the finished indexes free of
// incremental mutation.
type builder struct {
	log *zap.Logger

	canonical map[string][]string
	info      map[string]Info

	fullKeys []fullKey
	halfKeys []roleKey
	padaKeys []roleKey

	fullRules []Rule
	halfRules []Rule
	padaRules []Rule
}

type fullKey struct {
	pattern string
	name    string
}

type roleKey struct {
	pattern string
	name    string
	roles   RoleSet
}

func newBuilder(log *zap.Logger) *builder {
	return &builder{
		log:       log,
		canonical: make(map[string][]string),
		info:      make(map[string]Info),
	}
}

// cleanPattern strips the spaces and dashes catalog sources use for
// readability and validates the remaining alphabet.
func cleanPattern(p string) (string, error) {
	p = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '—', '–': // space, em dash, en dash
			return -1
		}
		return r
	}, p)
	for _, r := range p {
		if r != 'L' && r != 'G' && r != '.' {
			return "", fmt.Errorf("pattern contains %q, want only L, G or '.'", r)
		}
	}
	return p, nil
}

// endVariants returns the pattern with its final syllable forced guru
// and forced laghu: a pada-final syllable's weight is contextually
// ambiguous, so both spellings index the same metre.
func endVariants(p string) []string {
	if p == "" {
		return []string{p}
	}
	return []string{p[:len(p)-1] + "G", p[:len(p)-1] + "L"}
}

// product returns every concatenation choosing one variant per slot.
func product(slots ...[]string) []string {
	out := []string{""}
	for _, slot := range slots {
		next := make([]string, 0, len(out)*len(slot))
		for _, prefix := range out {
			for _, v := range slot {
				next = append(next, prefix+v)
			}
		}
		out = next
	}
	return out
}

// addSource merges one catalog source into the builder.
func (b *builder) addSource(source string, entries []CatalogEntry) {
	for _, e := range entries {
		b.addEntry(source, e)
	}
}

func (b *builder) addEntry(source string, e CatalogEntry) {
	switch e.Kind() {
	case KindSkip:
		if e.Name != "" {
			b.log.Debug("skipping catalog placeholder",
				zap.String("source", source), zap.String("metre", e.Name))
		}
		return

	case KindSinglePattern:
		clean, err := cleanPattern(e.Pattern)
		if err != nil {
			b.malformed(source, e.Name, err)
			return
		}
		if strings.Contains(clean, ".") {
			// wildcard positions make this a rule, not a hash pattern
			b.addSamaRule(e, clean)
			return
		}
		b.addSama(e, clean)

	case KindPatternPair:
		odd, err := cleanPattern(e.Odd)
		if err != nil {
			b.malformed(source, e.Name, err)
			return
		}
		even, err := cleanPattern(e.Even)
		if err != nil {
			b.malformed(source, e.Name, err)
			return
		}
		if strings.Contains(odd+even, ".") {
			b.malformed(source, e.Name, fmt.Errorf("wildcards are not supported in pattern pairs"))
			return
		}
		b.addArdhasama(e, odd, even)

	case KindPatternQuad:
		padas := make([]string, 4)
		for i, p := range e.Padas {
			clean, err := cleanPattern(p)
			if err != nil {
				b.malformed(source, e.Name, err)
				return
			}
			padas[i] = clean
		}
		b.addVishama(e, padas)

	case KindRule:
		clean, err := cleanSimpleRegex(e.Regex)
		if err != nil {
			b.malformed(source, e.Name, err)
			return
		}
		b.addSamaRule(e, clean)
	}
}

func (b *builder) malformed(source, name string, err error) {
	b.log.Warn("skipping malformed catalog entry",
		zap.String("source", source), zap.String("metre", name), zap.Error(err))
}

// setCanonical records the metre's pada patterns and descriptive data.
// The first definition of a name wins; later conflicting definitions are
// logged and ignored, never fatal.
func (b *builder) setCanonical(e CatalogEntry, samatva Samatva, padas []string) bool {
	if prev, ok := b.canonical[e.Name]; ok {
		if !slices.Equal(prev, padas) {
			b.log.Warn("conflicting catalog definition ignored",
				zap.String("metre", e.Name),
				zap.Strings("kept", prev),
				zap.Strings("ignored", padas))
		}
		return false
	}
	b.canonical[e.Name] = padas
	b.info[e.Name] = Info{
		Samatva:     samatva,
		Description: e.Description,
		Video:       e.Video,
	}
	return true
}

// addSama indexes a sama-vṛtta: one pattern shared by all four padas,
// expanded over the two end-weight variants at every granularity.
func (b *builder) addSama(e CatalogEntry, pada string) {
	if !b.setCanonical(e, Sama, []string{pada, pada, pada, pada}) {
		return
	}
	v := endVariants(pada)
	for _, full := range product(v, v, v, v) {
		b.fullKeys = append(b.fullKeys, fullKey{full, e.Name})
	}
	for _, half := range product(v, v) {
		b.halfKeys = append(b.halfKeys, roleKey{half, e.Name, NewRoleSet(1, 2)})
	}
	for _, p := range v {
		b.padaKeys = append(b.padaKeys, roleKey{p, e.Name, NewRoleSet(1, 2, 3, 4)})
	}
}

// addArdhasama indexes an ardha-sama-vṛtta. Odd-pada variants serve
// roles 1 and 3, even-pada variants roles 2 and 4; the roles are not
// interchangeable.
func (b *builder) addArdhasama(e CatalogEntry, odd, even string) {
	if !b.setCanonical(e, Ardhasama, []string{odd, even, odd, even}) {
		return
	}
	vo := endVariants(odd)
	ve := endVariants(even)
	for _, full := range product(vo, ve, vo, ve) {
		b.fullKeys = append(b.fullKeys, fullKey{full, e.Name})
	}
	for _, half := range product(vo, ve) {
		b.halfKeys = append(b.halfKeys, roleKey{half, e.Name, NewRoleSet(1, 2)})
	}
	for _, p := range vo {
		b.padaKeys = append(b.padaKeys, roleKey{p, e.Name, NewRoleSet(1, 3)})
	}
	for _, p := range ve {
		b.padaKeys = append(b.padaKeys, roleKey{p, e.Name, NewRoleSet(2, 4)})
	}
}

// addVishama indexes a viṣama-vṛtta: four independent patterns, each
// pada bound strictly to its own role. Only padas 2 and 4, the
// half-verse ends, receive end-variant expansion.
func (b *builder) addVishama(e CatalogEntry, padas []string) {
	if !b.setCanonical(e, Vishama, padas) {
		return
	}
	va := []string{padas[0]}
	vb := endVariants(padas[1])
	vc := []string{padas[2]}
	vd := endVariants(padas[3])
	for _, full := range product(va, vb, vc, vd) {
		b.fullKeys = append(b.fullKeys, fullKey{full, e.Name})
	}
	for _, half := range product(va, vb) {
		b.halfKeys = append(b.halfKeys, roleKey{half, e.Name, NewRoleSet(1)})
	}
	for _, half := range product(vc, vd) {
		b.halfKeys = append(b.halfKeys, roleKey{half, e.Name, NewRoleSet(2)})
	}
	for role, variants := range map[int][]string{1: va, 2: vb, 3: vc, 4: vd} {
		for _, p := range variants {
			b.padaKeys = append(b.padaKeys, roleKey{p, e.Name, NewRoleSet(role)})
		}
	}
}

// freeze constructs the finalized read-only database.
func (b *builder) freeze() *Database {
	db := &Database{
		full:      make(map[string]map[string]struct{}),
		half:      make(map[string]map[string]RoleSet),
		pada:      make(map[string]map[string]RoleSet),
		fullRules: b.fullRules,
		halfRules: b.halfRules,
		padaRules: b.padaRules,
		canonical: b.canonical,
		info:      b.info,
	}
	for _, k := range b.fullKeys {
		names, ok := db.full[k.pattern]
		if !ok {
			names = make(map[string]struct{})
			db.full[k.pattern] = names
		}
		names[k.name] = struct{}{}
	}
	for _, k := range b.halfKeys {
		addRoleKey(db.half, k)
	}
	for _, k := range b.padaKeys {
		addRoleKey(db.pada, k)
	}
	return db
}

func addRoleKey(index map[string]map[string]RoleSet, k roleKey) {
	names, ok := index[k.pattern]
	if !ok {
		names = make(map[string]RoleSet)
		index[k.pattern] = names
	}
	names[k.name] = names[k.name].Union(k.roles)
}

// mustRule compiles a trusted rule expression, anchored at both ends.
func mustRule(expr, name string, roles RoleSet) Rule {
	return Rule{
		re:    regexp.MustCompile("^(?:" + expr + ")$"),
		name:  name,
		roles: roles,
	}
}
