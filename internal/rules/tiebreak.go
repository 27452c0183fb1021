package rules

import (
	"path"
	"strings"

	"github.com/Clydinite/SortScript/internal/snap"
)

// Tiebreaker is one named comparison criterion. Items lacking an explicit
// position are ordered by applying a scope's tiebreakers key by key until
// one differs.
type Tiebreaker int

const (
	TiebreakAlphabetical Tiebreaker = iota
	TiebreakReverseAlphabetical
	TiebreakNatural
	TiebreakExtension
	TiebreakSize
	TiebreakModified
	TiebreakCreated
)

var tiebreakerNames = map[string]Tiebreaker{
	"alphabetical":         TiebreakAlphabetical,
	"reverse_alphabetical": TiebreakReverseAlphabetical,
	"natural":              TiebreakNatural,
	"extension":            TiebreakExtension,
	"size":                 TiebreakSize,
	"modified":             TiebreakModified,
	"created":              TiebreakCreated,
}

// ParseTiebreaker resolves a tiebreaker name from the ordering file.
func ParseTiebreaker(name string) (Tiebreaker, bool) {
	t, ok := tiebreakerNames[name]
	return t, ok
}

// DefaultTiebreakers is the chain used when a scope declares none.
var DefaultTiebreakers = []Tiebreaker{TiebreakAlphabetical}

// Compare orders a before b when negative, applying keys until one is
// decisive. A full tie returns zero, leaving encounter order in place under
// a stable sort.
func Compare(keys []Tiebreaker, stat snap.StatFunc, a, b snap.Node) int {
	for _, key := range keys {
		if c := compareKey(key, stat, a, b); c != 0 {
			return c
		}
	}
	return 0
}

func compareKey(key Tiebreaker, stat snap.StatFunc, a, b snap.Node) int {
	an, bn := snap.NameOf(a), snap.NameOf(b)
	switch key {
	case TiebreakAlphabetical:
		return strings.Compare(an, bn)
	case TiebreakReverseAlphabetical:
		return strings.Compare(bn, an)
	case TiebreakNatural:
		return naturalCompare(an, bn)
	case TiebreakExtension:
		return strings.Compare(path.Ext(an), path.Ext(bn))
	case TiebreakSize:
		return compareStat(stat, a, b, func(s snap.StatInfo) int64 { return s.Size })
	case TiebreakModified:
		return compareStat(stat, a, b, func(s snap.StatInfo) int64 { return s.ModTime.UnixNano() })
	case TiebreakCreated:
		return compareStat(stat, a, b, func(s snap.StatInfo) int64 { return s.BirthTime.UnixNano() })
	}
	return 0
}

// compareStat orders by a stat field, larger values first. Any failed lookup
// degrades the pair to equal instead of propagating an error.
func compareStat(stat snap.StatFunc, a, b snap.Node, field func(snap.StatInfo) int64) int {
	av, ok := statOf(stat, a)
	if !ok {
		return 0
	}
	bv, ok := statOf(stat, b)
	if !ok {
		return 0
	}
	af, bf := field(av), field(bv)
	switch {
	case af > bf:
		return -1
	case af < bf:
		return 1
	}
	return 0
}

func statOf(stat snap.StatFunc, n snap.Node) (snap.StatInfo, bool) {
	if f, ok := n.(*snap.File); ok && f.Info != nil {
		return *f.Info, true
	}
	p := snap.PathOf(n)
	if stat == nil || p == "" {
		return snap.StatInfo{}, false
	}
	return stat(p)
}

// naturalCompare splits names into digit and non-digit runs, comparing digit
// runs numerically and the rest lexicographically. The shorter name wins a
// residual tie.
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ai, aDigits := takeRun(a, i)
		bj, bDigits := takeRun(b, j)
		ra, rb := a[i:ai], b[j:bj]
		if aDigits && bDigits {
			if c := compareNumeric(ra, rb); c != 0 {
				return c
			}
		} else if c := strings.Compare(ra, rb); c != 0 {
			return c
		}
		i, j = ai, bj
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return 0
}

// takeRun returns the end of the current digit or non-digit run starting at i.
func takeRun(s string, i int) (end int, digits bool) {
	digits = s[i] >= '0' && s[i] <= '9'
	end = i
	for end < len(s) && (s[end] >= '0' && s[end] <= '9') == digits {
		end++
	}
	return end, digits
}

// compareNumeric compares two digit runs by value without overflow: strip
// leading zeros, then shorter is smaller, then lexicographic.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}
