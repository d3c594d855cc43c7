package termtext

import (
	"sort"
	"testing"
)

func TestRangeTablesSorted(t *testing.T) {
	for name, table := range map[string][]runeRange{"wide": wideRanges, "punct": cjkPunctRanges} {
		if !sort.SliceIsSorted(table, func(i, j int) bool { return table[i].lo < table[j].lo }) {
			t.Errorf("%s table is not sorted", name)
		}
		for i, rg := range table {
			if rg.lo > rg.hi {
				t.Errorf("%s[%d] has lo > hi: %#x > %#x", name, i, rg.lo, rg.hi)
			}
			if i > 0 && table[i-1].hi >= rg.lo {
				t.Errorf("%s[%d] overlaps previous range", name, i)
			}
		}
	}
}

// Every range boundary is wide and its outer neighbours are narrow unless they
// belong to an adjacent range.
func TestIsWide_Boundaries(t *testing.T) {
	all := append(append([]runeRange{}, wideRanges...), cjkPunctRanges...)
	covered := func(r rune) bool {
		for _, rg := range all {
			if rg.lo <= r && r <= rg.hi {
				return true
			}
		}
		return false
	}

	for _, rg := range all {
		for _, r := range []rune{rg.lo, rg.hi, (rg.lo + rg.hi) / 2} {
			if !IsWide(r) {
				t.Errorf("IsWide(%#x) = false, want true", r)
			}
		}
		for _, r := range []rune{rg.lo - 1, rg.hi + 1} {
			if got := IsWide(r); got != covered(r) {
				t.Errorf("IsWide(%#x) = %v, want %v", r, got, covered(r))
			}
		}
	}
}

func TestIsWide(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{' ', false},
		{'中', true},
		{'こ', true},
		{'カ', true},
		{'한', true},
		{'，', true},
		{'。', true},
		{'—', true},
		{'…', true},
		{'“', true},
		{'’', true},
		{'–', false}, // en dash
		{'─', false},
		{'é', false},
		{'🐵', false},
		{-1, false},
		{0x10FFFF, false},
	}
	for _, tt := range tests {
		if got := IsWide(tt.r); got != tt.want {
			t.Errorf("IsWide(%q) = %v, want %v", tt.r, got, tt.want)
		}
		wantWidth := 1
		if tt.want {
			wantWidth = 2
		}
		if got := RuneWidth(tt.r); got != wantWidth {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, wantWidth)
		}
	}
}
