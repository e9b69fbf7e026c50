// Package metredb holds the static catalog of named Sanskrit metres.
//
// The database is built exactly once at startup from the bundled catalog
// sources (plus optional extra files), merged in a fixed order with the
// first definition of a metre name winning. After construction it is
// immutable and safe for unsynchronized concurrent reads.
package metredb

import (
	"embed"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Samatva classifies how a metre's four padas relate to each other.
type Samatva int

const (
	Sama      Samatva = iota // one pattern shared by all four padas
	Ardhasama                // odd/even pattern pair
	Vishama                  // four independent patterns
	Jati                     // mātrā-counted, matched by compiled rule
)

func (s Samatva) String() string {
	switch s {
	case Sama:
		return "sama"
	case Ardhasama:
		return "ardhasama"
	case Vishama:
		return "viṣama"
	case Jati:
		return "jāti"
	default:
		return "unknown"
	}
}

// CatalogEntry is one record from a catalog source. Record shape varies:
// a single pada pattern, an odd/even pair, a quad of padas, a regex-like
// rule, or an incomplete placeholder. Kind resolves the shape once at
// load time.
type CatalogEntry struct {
	Name        string   `yaml:"name"`
	Pattern     string   `yaml:"pattern,omitempty"`
	Odd         string   `yaml:"odd,omitempty"`
	Even        string   `yaml:"even,omitempty"`
	Padas       []string `yaml:"padas,omitempty"`
	Regex       string   `yaml:"regex,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Video       string   `yaml:"video,omitempty"`
	Note        string   `yaml:"note,omitempty"`
}

// EntryKind is the resolved record shape of a catalog entry.
type EntryKind int

const (
	KindSkip EntryKind = iota
	KindSinglePattern
	KindPatternPair
	KindPatternQuad
	KindRule
)

// Kind classifies the entry. Placeholders, meaning entries with no
// usable shape or a TODO pattern, classify as KindSkip.
func (e CatalogEntry) Kind() EntryKind {
	switch {
	case e.Name == "":
		return KindSkip
	case strings.HasPrefix(e.Pattern, "TODO"):
		return KindSkip
	case e.Pattern != "":
		return KindSinglePattern
	case e.Odd != "" && e.Even != "":
		return KindPatternPair
	case len(e.Padas) == 4:
		return KindPatternQuad
	case e.Regex != "":
		return KindRule
	default:
		return KindSkip
	}
}

type catalogFile struct {
	Comment string         `yaml:"comment"`
	Metres  []CatalogEntry `yaml:"metres"`
}

//go:embed data/*.yaml
var bundled embed.FS

// bundledSources lists the catalog files in merge order. The first
// definition of a metre name across the whole sequence wins.
var bundledSources = []string{
	"data/curated.yaml",
	"data/ganesh.yaml",
	"data/vrttaratnakara.yaml",
	"data/mishra.yaml",
}

// readCatalog parses one catalog document.
func readCatalog(data []byte) ([]CatalogEntry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Metres, nil
}

// ReadCatalogFile loads a catalog source from disk. Extra sources are
// merged after the bundled ones under the same first-wins rule.
func ReadCatalogFile(path string) ([]CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return readCatalog(data)
}
