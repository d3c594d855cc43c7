package banner

import (
	"slices"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestActiveTaglines(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		holiday string
	}{
		{"ordinary day", date(2026, time.October, 16), ""},
		{"new year", date(2026, time.January, 1), taglineNewYear},
		{"lunar new year", date(2026, time.February, 17), taglineLunarNewYear},
		{"valentines", date(2027, time.February, 14), taglineValentines},
		{"halloween", date(2026, time.October, 31), taglineHalloween},
		{"thanksgiving 2026", date(2026, time.November, 26), taglineThanksgiving},
		{"christmas", date(2025, time.December, 25), taglineChristmas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active := ActiveTaglines(tt.now)
			for tagline := range holidayRules {
				want := tagline == tt.holiday
				if got := slices.Contains(active, tagline); got != want {
					t.Errorf("holiday tagline %q active = %v, want %v", tagline, got, want)
				}
			}
			if !slices.Contains(active, DefaultTagline) {
				t.Error("Expected everyday taglines to stay active")
			}
		})
	}
}

func TestFourthThursdayOfNovember(t *testing.T) {
	tests := []struct {
		year int
		day  int
	}{
		{2024, 28},
		{2025, 27},
		{2026, 26},
		{2027, 25},
	}
	for _, tt := range tests {
		for d := 1; d <= 30; d++ {
			if got := fourthThursdayOfNovember(tt.year, time.November, d); got != (d == tt.day) {
				t.Errorf("%d-11-%02d: got %v", tt.year, d, got)
			}
		}
		if fourthThursdayOfNovember(tt.year, time.October, tt.day) {
			t.Errorf("%d: October must not match", tt.year)
		}
	}
}

func TestPickTagline(t *testing.T) {
	now := date(2026, time.October, 16)
	first := func(int) int { return 0 }
	last := func(n int) int { return n - 1 }

	if got := PickTagline(TaglineOptions{Now: now, IntN: first}); got != DefaultTagline {
		t.Errorf("PickTagline(first) = %q, want %q", got, DefaultTagline)
	}
	active := ActiveTaglines(now)
	if got := PickTagline(TaglineOptions{Now: now, IntN: last}); got != active[len(active)-1] {
		t.Errorf("PickTagline(last) = %q, want %q", got, active[len(active)-1])
	}
	if got := PickTagline(TaglineOptions{Now: date(2026, time.December, 25), IntN: last}); got != taglineChristmas {
		t.Errorf("Expected the Christmas tagline on Christmas, got %q", got)
	}
}

func TestPickTagline_EnvIndex(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1", Taglines[1]},
		{"  2 ", Taglines[2]},
		{"", DefaultTagline},
		{"-1", DefaultTagline},
		{"x", DefaultTagline},
	}
	for _, tt := range tests {
		getenv := func(key string) string {
			if key == TaglineIndexEnv {
				return tt.value
			}
			return ""
		}
		got := PickTagline(TaglineOptions{Now: date(2026, time.October, 16), Getenv: getenv, IntN: func(int) int { return 0 }})
		if got != tt.want {
			t.Errorf("%s=%q: got %q, want %q", TaglineIndexEnv, tt.value, got, tt.want)
		}
	}

	getenv := func(string) string { return "15" }
	if got := PickTagline(TaglineOptions{Getenv: getenv}); got != Taglines[15%len(Taglines)] {
		t.Errorf("Expected index to wrap around the pool, got %q", got)
	}
}
