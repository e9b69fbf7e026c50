package identify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chandas/internal/metredb"
)

var slokaPadas = []string{
	"LGLGLGGL",
	"GGLLLGLL",
	"GGGLLGGL",
	"LGGGLGLG",
}

func newTestIdentifier(t *testing.T) *Identifier {
	t.Helper()
	db, err := metredb.Load(nil)
	require.NoError(t, err)
	return New(db)
}

func TestIdentify_FullVerseExact(t *testing.T) {
	id := newTestIdentifier(t)

	res := id.IdentifyFromPatternLines(slokaPadas)
	roles, ok := res.Exact["Anuṣṭup (Śloka)"]
	require.True(t, ok, "expected an exact match, got %+v", res)
	assert.Equal(t, metredb.NewRoleSet(1, 2, 3, 4), roles)
	assert.NotContains(t, res.Partial, "Anuṣṭup (Śloka)")
	assert.NotContains(t, res.Accidental, "Anuṣṭup (Śloka)")
}

func TestIdentify_SamaVrttaExact(t *testing.T) {
	id := newTestIdentifier(t)

	pada := "GGLGGLLGLGG"
	res := id.IdentifyFromPatternLines([]string{pada, pada, pada, pada})
	assert.Contains(t, res.Exact, "Indravajrā")
	assert.Contains(t, res.Exact, "Upajāti")
}

func TestIdentify_BrokenPadaDemotesToPartial(t *testing.T) {
	id := newTestIdentifier(t)

	// Pada 4 is one syllable short: no full or half match survives, but
	// three lines still corroborate at pada level.
	padas := []string{
		"GGLGGLLGLGG",
		"GGLGGLLGLGG",
		"GGLGGLLGLGG",
		"GGLGGLLGLG",
	}
	res := id.IdentifyFromPatternLines(padas)
	assert.NotContains(t, res.Exact, "Indravajrā")
	roles, ok := res.Partial["Indravajrā"]
	require.True(t, ok)
	assert.Equal(t, metredb.NewRoleSet(1, 2, 3), roles)
}

func TestIdentify_LengthMismatchNoFalsePositive(t *testing.T) {
	id := newTestIdentifier(t)

	// An Indravajrā pada with the last syllable dropped matches nothing
	// for that metre at any granularity.
	short := "GGLGGLLGLG"
	for _, patterns := range [][]string{
		{short},
		{short, short},
		{short, short, short, short},
	} {
		res := id.IdentifyFromPatternLines(patterns)
		assert.NotContains(t, res.Exact, "Indravajrā", "%d lines", len(patterns))
		assert.NotContains(t, res.Partial, "Indravajrā", "%d lines", len(patterns))
		assert.NotContains(t, res.Accidental, "Indravajrā", "%d lines", len(patterns))
	}
}

func TestIdentify_LonePadaCoincidenceIsAccidental(t *testing.T) {
	id := newTestIdentifier(t)

	padas := []string{
		"GGLGGLLGLGG",
		"L",
		"L",
		"L",
	}
	res := id.IdentifyFromPatternLines(padas)
	roles, ok := res.Accidental["Indravajrā"]
	require.True(t, ok)
	assert.Equal(t, metredb.NewRoleSet(1), roles)
	assert.NotContains(t, res.Exact, "Indravajrā")
	assert.NotContains(t, res.Partial, "Indravajrā")
}

func TestIdentify_HalfVerse(t *testing.T) {
	id := newTestIdentifier(t)

	res := id.IdentifyFromPatternLines(slokaPadas[:2])
	assert.Contains(t, res.Exact, "Anuṣṭup (Śloka)")
}

func TestIdentify_SinglePadaIsPartial(t *testing.T) {
	id := newTestIdentifier(t)

	res := id.IdentifyFromPatternLines(slokaPadas[:1])
	roles, ok := res.Partial["Anuṣṭup (Śloka)"]
	require.True(t, ok)
	// the odd-pada schema serves positions 1 and 3
	assert.Equal(t, metredb.NewRoleSet(1, 3), roles)
	assert.Empty(t, res.Exact)
}

func TestIdentify_ThreeLines(t *testing.T) {
	id := newTestIdentifier(t)

	pada := "GGLGGLLGLGG"
	res := id.IdentifyFromPatternLines([]string{pada, pada, pada})
	assert.Contains(t, res.Partial, "Indravajrā")
	assert.Empty(t, res.Exact)
}

func TestIdentify_Empty(t *testing.T) {
	id := newTestIdentifier(t)

	res := id.IdentifyFromPatternLines(nil)
	assert.True(t, res.Empty())

	res = id.IdentifyFromPatternLines([]string{"LLLLLLLLLLLLLLLLLLLLLLL"})
	assert.True(t, res.Empty())
}

func TestIdentify_Deterministic(t *testing.T) {
	id := newTestIdentifier(t)

	a := id.IdentifyFromPatternLines(slokaPadas)
	b := id.IdentifyFromPatternLines(slokaPadas)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("identification is not deterministic (-first +second):\n%s", diff)
	}
}
