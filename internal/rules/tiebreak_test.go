package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clydinite/SortScript/internal/snap"
)

func fileNode(name string) *snap.File {
	return &snap.File{Name: name, Path: "/x/" + name}
}

func TestParseTiebreaker(t *testing.T) {
	for name := range tiebreakerNames {
		_, ok := ParseTiebreaker(name)
		assert.True(t, ok, name)
	}
	_, ok := ParseTiebreaker("chronological")
	assert.False(t, ok)
}

func TestCompare_Alphabetical(t *testing.T) {
	keys := []Tiebreaker{TiebreakAlphabetical}
	assert.Negative(t, Compare(keys, nil, fileNode("a.txt"), fileNode("b.txt")))
	assert.Positive(t, Compare(keys, nil, fileNode("b.txt"), fileNode("a.txt")))
	assert.Zero(t, Compare(keys, nil, fileNode("a.txt"), fileNode("a.txt")))
}

func TestCompare_ReverseAlphabetical(t *testing.T) {
	keys := []Tiebreaker{TiebreakReverseAlphabetical}
	assert.Positive(t, Compare(keys, nil, fileNode("a.txt"), fileNode("b.txt")))
}

func TestCompare_Natural(t *testing.T) {
	keys := []Tiebreaker{TiebreakNatural}
	assert.Negative(t, Compare(keys, nil, fileNode("file2.txt"), fileNode("file10.txt")))
	assert.Negative(t, Compare(keys, nil, fileNode("file1.txt"), fileNode("file2.txt")))
	// Leading zeros compare by value first.
	assert.Negative(t, Compare(keys, nil, fileNode("v007"), fileNode("v8")))
	// Shorter name wins a residual tie.
	assert.Negative(t, Compare(keys, nil, fileNode("a1"), fileNode("a1b")))
}

func TestCompare_Extension(t *testing.T) {
	keys := []Tiebreaker{TiebreakExtension}
	assert.Negative(t, Compare(keys, nil, fileNode("b.css"), fileNode("a.js")))
	assert.Zero(t, Compare(keys, nil, fileNode("a.js"), fileNode("b.js")))
}

func TestCompare_SizeFromSnapshotInfo(t *testing.T) {
	big := &snap.File{Name: "big", Info: &snap.StatInfo{Size: 100}}
	small := &snap.File{Name: "small", Info: &snap.StatInfo{Size: 1}}
	keys := []Tiebreaker{TiebreakSize}
	// Larger sizes sort first.
	assert.Negative(t, Compare(keys, nil, big, small))
	assert.Positive(t, Compare(keys, nil, small, big))
}

func TestCompare_StatLookupFallback(t *testing.T) {
	stat := func(path string) (snap.StatInfo, bool) {
		if path == "/x/new.txt" {
			return snap.StatInfo{ModTime: time.Unix(200, 0)}, true
		}
		return snap.StatInfo{ModTime: time.Unix(100, 0)}, true
	}
	keys := []Tiebreaker{TiebreakModified}
	assert.Negative(t, Compare(keys, stat, fileNode("new.txt"), fileNode("old.txt")))
}

func TestCompare_StatFailureTreatsPairAsEqual(t *testing.T) {
	stat := func(path string) (snap.StatInfo, bool) { return snap.StatInfo{}, false }
	keys := []Tiebreaker{TiebreakSize}
	assert.Zero(t, Compare(keys, stat, fileNode("a"), fileNode("b")))
	assert.Zero(t, Compare(keys, nil, fileNode("a"), fileNode("b")))
}

func TestCompare_MultiKey(t *testing.T) {
	keys := []Tiebreaker{TiebreakExtension, TiebreakAlphabetical}
	assert.Negative(t, Compare(keys, nil, fileNode("z.css"), fileNode("a.js")))
	assert.Negative(t, Compare(keys, nil, fileNode("a.js"), fileNode("b.js")))
}

func TestStripExtensions(t *testing.T) {
	require.Equal(t, "a", stripExtensions("a.test.js"))
	require.Equal(t, "component", stripExtensions("component.js"))
	require.Equal(t, ".gitignore", stripExtensions(".gitignore"))
	require.Equal(t, "plain", stripExtensions("plain"))
}
