package metredb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestDB(t *testing.T, extra ...string) *Database {
	t.Helper()
	db, err := Load(nil, extra...)
	require.NoError(t, err)
	return db
}

func TestLoad_CatalogSize(t *testing.T) {
	db := loadTestDB(t)
	if db.Len() < 100 {
		t.Fatalf("catalog holds %d metres, expected the full bundled set", db.Len())
	}
}

func TestLookup_GaneshSource(t *testing.T) {
	db := loadTestDB(t)

	// a spread of the collection, shortest to longest pada
	cases := map[string]string{
		"Śrī":               "G",
		"Madalekhā":         "GGGLLGG",
		"Mayūrasāriṇī":      "GLGLGLGLGG",
		"Candravartma":      "GLGLLLGLLLLG",
		"Vaṁśapatrapatitam": "GLLGLGLLLGLLLLLLG",
		"Madirā":            "GLLGLLGLLGLLGLLGLLGLLG",
	}
	for name, pada := range cases {
		assert.Contains(t, db.LookupPada(pada, 1), name)
	}

	// distinct names sharing one classical scheme all resolve
	rukmavati := "GLLGGGLLGG"
	got := db.LookupPada(rukmavati, 1)
	assert.Contains(t, got, "Rukmavatī")
	assert.Contains(t, got, "Campakamālā")

	// ardha-sama roles from the same source
	vegavatiOdd := "LLGLLGLLGG"
	assert.Contains(t, db.LookupPada(vegavatiOdd, 1), "Vegavatī")
	assert.NotContains(t, db.LookupPada(vegavatiOdd, 2), "Vegavatī")
}

func TestLookupPada_Sama(t *testing.T) {
	db := loadTestDB(t)

	indravajra := "GGLGGLLGLGG"
	for role := 1; role <= 4; role++ {
		assert.Contains(t, db.LookupPada(indravajra, role), "Indravajrā", "role %d", role)
	}
	// the Upajāti schema admits either weight in the first position
	assert.Contains(t, db.LookupPada(indravajra, 1), "Upajāti")
	assert.Contains(t, db.LookupPada("LGLGGLLGLGG", 1), "Upajāti")
}

func TestLookupPada_EndVariant(t *testing.T) {
	db := loadTestDB(t)
	// The pada-final syllable may surface laghu; the index carries both
	// spellings for hash-keyed metres.
	assert.Contains(t, db.LookupPada("GGLGGLLGLGL", 2), "Indravajrā")
}

func TestLookupFull_Sama(t *testing.T) {
	db := loadTestDB(t)
	pada := "GGLGLLLGLLGLGG"
	assert.Contains(t, db.LookupFull(strings.Repeat(pada, 4)), "Vasantatilakā")
}

func TestLookupPada_ArdhasamaRoles(t *testing.T) {
	db := loadTestDB(t)
	odd := "LLGLLGLGLG"
	even := "LLGGLLGLGLG"

	assert.Contains(t, db.LookupPada(odd, 1), "Viyoginī")
	assert.Contains(t, db.LookupPada(odd, 3), "Viyoginī")
	assert.NotContains(t, db.LookupPada(odd, 2), "Viyoginī")

	assert.Contains(t, db.LookupPada(even, 2), "Viyoginī")
	assert.Contains(t, db.LookupPada(even, 4), "Viyoginī")
	assert.NotContains(t, db.LookupPada(even, 1), "Viyoginī")
}

func TestLookupHalf_Anustup(t *testing.T) {
	db := loadTestDB(t)
	half := "LGLGLGGL" + "GGLLLGLL"
	assert.Contains(t, db.LookupHalf(half, 1), "Anuṣṭup (Śloka)")
	assert.Contains(t, db.LookupHalf(half, 2), "Anuṣṭup (Śloka)")
}

func TestLookupPada_AnustupCadence(t *testing.T) {
	db := loadTestDB(t)
	// The even-pada cadence (LGL) is not accepted in odd position and
	// vice versa.
	even := "GGLLLGLL"
	assert.Contains(t, db.LookupPada(even, 2), "Anuṣṭup (Śloka)")
	assert.Contains(t, db.LookupPada(even, 4), "Anuṣṭup (Śloka)")
	assert.NotContains(t, db.LookupPada(even, 1), "Anuṣṭup (Śloka)")
}

func TestLookupFull_Arya(t *testing.T) {
	db := loadTestDB(t)
	// 12 + 18 + 12 + 15 mātrās assembled from four-mora gaṇas.
	full := "GGGGGG" + "GGGGLGLGGG" + "GGGGGG" + "GGGGLGGG"
	got := db.LookupFull(full)
	assert.Contains(t, got, "Āryā")
	assert.NotContains(t, got, "Gīti")
}

func TestLoad_FirstDefinitionWins(t *testing.T) {
	db := loadTestDB(t)
	// curated.yaml and vrttaratnakara.yaml disagree on Svāgatā; the
	// curated definition is merged first and wins.
	assert.Equal(t,
		[]string{"GLGLLLGLLGG", "GLGLLLGLLGG", "GLGLLLGLLGG", "GLGLLLGLLGG"},
		db.Patterns("Svāgatā"))
}

func TestLoad_ExtraCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	src := `metres:
  - name: Indravajrā
    pattern: LLL LLL LLL LL
  - name: Parīkṣā
    pattern: GGG LLL GG
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	db := loadTestDB(t, path)

	// the conflicting redefinition is ignored
	assert.Equal(t, "GGLGGLLGLGG", db.Patterns("Indravajrā")[0])
	// the new metre is merged
	assert.Contains(t, db.LookupPada("GGGLLLGG", 1), "Parīkṣā")
}

func TestLoad_SkipsPlaceholders(t *testing.T) {
	db := loadTestDB(t)
	assert.Nil(t, db.Patterns("Daṇḍaka"))
	assert.Nil(t, db.Patterns("Aupacchandasikam"))
}

func TestDescribe(t *testing.T) {
	db := loadTestDB(t)

	info, ok := db.Describe("Śālinī")
	require.True(t, ok)
	assert.Equal(t, Sama, info.Samatva)
	assert.NotEmpty(t, info.Description)
	assert.NotEmpty(t, info.Video)

	info, ok = db.Describe("Āryā")
	require.True(t, ok)
	assert.Equal(t, Jati, info.Samatva)

	_, ok = db.Describe("no such metre")
	assert.False(t, ok)
}

func TestPatterns_Copy(t *testing.T) {
	db := loadTestDB(t)
	a := db.Patterns("Indravajrā")
	a[0] = "mutated"
	assert.Equal(t, "GGLGGLLGLGG", db.Patterns("Indravajrā")[0])
}

func TestCleanPattern(t *testing.T) {
	got, err := cleanPattern("GGL GGL — LGL GG")
	require.NoError(t, err)
	assert.Equal(t, "GGLGGLLGLGG", got)

	_, err = cleanPattern("GGX")
	assert.Error(t, err)
}

func TestEntryKind(t *testing.T) {
	cases := []struct {
		entry CatalogEntry
		want  EntryKind
	}{
		{CatalogEntry{Name: "a", Pattern: "GGL"}, KindSinglePattern},
		{CatalogEntry{Name: "a", Odd: "GGL", Even: "LLG"}, KindPatternPair},
		{CatalogEntry{Name: "a", Padas: []string{"G", "G", "G", "G"}}, KindPatternQuad},
		{CatalogEntry{Name: "a", Regex: ".GL"}, KindRule},
		{CatalogEntry{Name: "a", Pattern: "TODO later"}, KindSkip},
		{CatalogEntry{Name: "a", Note: "unverified"}, KindSkip},
		{CatalogEntry{}, KindSkip},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.entry.Kind(), "%+v", c.entry)
	}
}
