package metredb

import (
	"fmt"
	"slices"
	"strings"
)

// Compiled rules cover the metres that cannot be enumerated as hash
// keys: wildcard vṛtta schemas and the mātrā-counted jāti metres
// (Anuṣṭup and the Āryā family). A rule matches by language membership
// over {L, G}; '.' accepts either weight.

// cleanSimpleRegex normalizes a catalog rule expression. Only the plain
// wildcard alphabet is accepted; no grouping or lookaround.
func cleanSimpleRegex(expr string) (string, error) {
	expr = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '—', '–', '4':
			return -1
		}
		return r
	}, expr)
	for _, r := range expr {
		if r != 'L' && r != 'G' && r != '.' {
			return "", fmt.Errorf("rule contains %q, want only L, G or '.'", r)
		}
	}
	return expr, nil
}

// addSamaRule registers a sama-vṛtta given as a wildcard schema at all
// three granularities. No end-variant expansion: the schema is matched
// as written.
func (b *builder) addSamaRule(e CatalogEntry, pada string) {
	if !b.setCanonical(e, Sama, []string{pada, pada, pada, pada}) {
		return
	}
	b.fullRules = append(b.fullRules, mustRule(strings.Repeat(pada, 4), e.Name, 0))
	b.halfRules = append(b.halfRules, mustRule(strings.Repeat(pada, 2), e.Name, NewRoleSet(1, 2)))
	b.padaRules = append(b.padaRules, mustRule(pada, e.Name, NewRoleSet(1, 2, 3, 4)))
}

// setRuleInfo records descriptive data for a built-in rule metre.
func (b *builder) setRuleInfo(name, description string) {
	if _, ok := b.info[name]; ok {
		return
	}
	b.info[name] = Info{Samatva: Jati, Description: description}
}

// addAnustup registers the Anuṣṭup (Śloka) schema and its attested
// variants. The even padas require the iambic cadence; the odd padas
// allow the standard form plus the relaxations found in classical usage.
func (b *builder) addAnustup() {
	const name = "Anuṣṭup (Śloka)"
	const ac = "....LGG."
	const bd = "....LGL."
	half := ac + bd

	b.fullRules = append(b.fullRules, mustRule(half+half, name, 0))
	b.halfRules = append(b.halfRules, mustRule(half, name, NewRoleSet(1, 2)))
	b.padaRules = append(b.padaRules, mustRule(ac, name, NewRoleSet(1, 3)))
	b.padaRules = append(b.padaRules, mustRule(bd, name, NewRoleSet(2, 4)))

	// Verse schemas seen in practice that relax one or both odd padas.
	variants := [][4]string{
		{"LGLGLLLG", bd, ac, bd},
		{"LGLGGGGG", bd, ac, bd},
		{ac, bd, "LGLGGGGG", bd},
		{"GLGGLLLG", bd, ac, bd},
		{"........", bd, ac, bd},
		{ac, bd, "........", bd},
		{"........", bd, "........", bd},
	}
	for _, v := range variants {
		b.fullRules = append(b.fullRules, mustRule(v[0]+v[1]+v[2]+v[3], name, 0))
	}
	b.setRuleInfo(name, "The śloka: four padas of eight syllables with a fixed cadence in padas 2 and 4.")
}

// addAryaFamily registers the gaṇa-alternation schemas for the Āryā
// family of mātrā metres, plus a loose fixed-morae schema that accepts
// any syllable sequence with the right mātrā counts.
func (b *builder) addAryaFamily() {
	oddGanas := []string{"GG", "LLG", "GLL", "LLLL"}
	evenGanas := append(slices.Clone(oddGanas), "LGL")

	odd := alt(oddGanas...)
	even := alt(evenGanas...)
	pada12 := odd + even + odd
	pada15 := even + odd + "L" + odd + "[LG]"
	pada18 := even + odd + alt("LLLL", "LGL") + odd + "[LG]"
	pada20 := even + odd + alt("LLLL", "LGL") + odd +
		alt(append(slices.Clone(evenGanas), "GL", "LLL")...)

	b.addMetreRule("Āryā", [4]string{pada12, pada18, pada12, pada15})
	b.addMetreRule("Gīti", [4]string{pada12, pada18, pada12, pada18})
	b.addMetreRule("Upagīti", [4]string{pada12, pada15, pada12, pada15})
	b.addMetreRule("Udgīti", [4]string{pada12, pada15, pada12, pada18})
	b.addMetreRule("Āryāgīti", [4]string{pada12, pada20, pada12, pada20})

	memo := map[int][]string{0: {""}, 1: {"L"}}
	b.addMetreRule("Āryā (loose schema)", [4]string{
		alt(loosePatternsOfLength(12, memo)...),
		alt(loosePatternsOfLength(18, memo)...),
		alt(loosePatternsOfLength(12, memo)...),
		alt(loosePatternsOfLength(15, memo)...),
	})

	b.setRuleInfo("Āryā", "A mātrā metre: padas of 12, 18, 12 and 15 morae built from two-mora gaṇa groups.")
	b.setRuleInfo("Gīti", "A mātrā metre: both halves follow the 12 + 18 morae scheme of the Āryā's first half.")
	b.setRuleInfo("Upagīti", "A mātrā metre: both halves follow the 12 + 15 morae scheme of the Āryā's second half.")
	b.setRuleInfo("Udgīti", "A mātrā metre: the Āryā's two halves in reverse order, 12 + 15 then 12 + 18 morae.")
	b.setRuleInfo("Āryāgīti", "A mātrā metre: the Āryā with both even padas extended to 20 morae.")
	b.setRuleInfo("Āryā (loose schema)", "The Āryā mātrā counts alone, with a pada-final laghu standing in for the closing guru.")
}

// addMetreRule compiles a full-verse rule from four per-pada regexes.
func (b *builder) addMetreRule(name string, padas [4]string) {
	var sb strings.Builder
	for _, p := range padas {
		sb.WriteString("(?:")
		sb.WriteString(p)
		sb.WriteString(")")
	}
	b.fullRules = append(b.fullRules, mustRule(sb.String(), name, 0))
}

// patternsOfLength enumerates every L/G sequence worth exactly n mātrās
// (laghu one, guru two).
func patternsOfLength(n int, memo map[int][]string) []string {
	if v, ok := memo[n]; ok {
		return v
	}
	var out []string
	for _, p := range patternsOfLength(n-1, memo) {
		out = append(out, p+"L")
	}
	for _, p := range patternsOfLength(n-2, memo) {
		out = append(out, p+"G")
	}
	memo[n] = out
	return out
}

// loosePatternsOfLength additionally accepts sequences one mora short
// that end laghu: a pada-final laghu may stand for the required guru.
func loosePatternsOfLength(n int, memo map[int][]string) []string {
	out := slices.Clone(patternsOfLength(n, memo))
	for _, p := range patternsOfLength(n-1, memo) {
		if strings.HasSuffix(p, "L") {
			out = append(out, p)
		}
	}
	return out
}

func alt(parts ...string) string {
	return "(?:" + strings.Join(parts, "|") + ")"
}
