package grapheme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Devanagari(t *testing.T) {
	// Conjuncts like क्र split at the virama; dependent vowels stay
	// attached to their consonant.
	got := Split("बिक्रममेरोनामहो")
	want := []string{"बि", "क्", "र", "म", "मे", "रो", "ना", "म", "हो"}
	assert.Equal(t, want, got)
}

func TestSplit_RoundTrip(t *testing.T) {
	in := "धर्मक्षेत्रे कुरुक्षेत्रे"
	if got := strings.Join(Split(in), ""); got != in {
		t.Fatalf("joined clusters differ from input: %q != %q", got, in)
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Nil(t, Split(""))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 9, Count("बिक्रममेरोनामहो"))
	assert.Equal(t, 0, Count(""))
}
