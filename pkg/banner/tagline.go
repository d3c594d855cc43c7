package banner

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// DefaultTagline is used when no tagline pool is available.
const DefaultTagline = "aligned notes for every terminal"

// TaglineIndexEnv pins the tagline to an index into Taglines.
const TaglineIndexEnv = "TERMNOTE_TAGLINE_INDEX"

// Holiday taglines replace the everyday pool on their date.
var (
	taglineNewYear      = "元旦: new year, new config, same straight borders"
	taglineLunarNewYear = "春节: 恭喜发财，边框对齐，万事如意!"
	taglineValentines   = "roses are red, borders are aligned"
	taglineHalloween    = "beware of ghost escapes and haunted columns"
	taglineThanksgiving = "thankful for stable widths and honest terminals"
	taglineChristmas    = "圣诞快乐! a gift of zero misaligned frames"
)

// Taglines is the full pool, everyday entries first.
var Taglines = []string{
	DefaultTagline,
	"对齐的终端提示框，七十二变无所不能",
	"borders that survive CJK, bullets and colour codes",
	"wide runes, narrow margins, straight edges",
	"我数的是列，不是字节",
	"your frame is straight; your assumptions may not be",
	"ANSI in, alignment out",
	"hard splits for soft hearts",
	"一个字两格，一个框不歪",
	taglineNewYear,
	taglineLunarNewYear,
	taglineValentines,
	taglineHalloween,
	taglineThanksgiving,
	taglineChristmas,
}

type holidayRule func(year int, month time.Month, day int) bool

func onMonthDay(month time.Month, day int) holidayRule {
	return func(_ int, m time.Month, d int) bool {
		return m == month && d == day
	}
}

func onDates(dates ...string) holidayRule {
	return func(y int, m time.Month, d int) bool {
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		for _, date := range dates {
			if date == today {
				return true
			}
		}
		return false
	}
}

// fourthThursdayOfNovember matches US Thanksgiving.
func fourthThursdayOfNovember(y int, m time.Month, d int) bool {
	if m != time.November {
		return false
	}
	first := time.Date(y, time.November, 1, 0, 0, 0, 0, time.UTC).Weekday()
	offset := (int(time.Thursday) - int(first) + 7) % 7
	return d == 1+offset+21
}

var holidayRules = map[string]holidayRule{
	taglineNewYear:      onMonthDay(time.January, 1),
	taglineLunarNewYear: onDates("2025-01-29", "2026-02-17", "2027-02-06"),
	taglineValentines:   onMonthDay(time.February, 14),
	taglineHalloween:    onMonthDay(time.October, 31),
	taglineThanksgiving: fourthThursdayOfNovember,
	taglineChristmas:    onMonthDay(time.December, 25),
}

// TaglineOptions controls tagline selection. Zero values use the clock,
// the process environment and math/rand.
type TaglineOptions struct {
	Now    time.Time
	Getenv func(string) string
	IntN   func(n int) int
}

// ActiveTaglines returns the taglines valid on now (compared in UTC):
// everyday entries plus any holiday whose date it is.
func ActiveTaglines(now time.Time) []string {
	y, m, d := now.UTC().Date()
	var active []string
	for _, tagline := range Taglines {
		if rule, ok := holidayRules[tagline]; ok && !rule(y, m, d) {
			continue
		}
		active = append(active, tagline)
	}
	if len(active) == 0 {
		return Taglines
	}
	return active
}

// PickTagline chooses a tagline at random from the active pool. A
// non-negative integer in TaglineIndexEnv selects from the full pool instead.
func PickTagline(opts TaglineOptions) string {
	if len(Taglines) == 0 {
		return DefaultTagline
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(getenv(TaglineIndexEnv))); err == nil && idx >= 0 {
		return Taglines[idx%len(Taglines)]
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	intN := opts.IntN
	if intN == nil {
		intN = rand.IntN
	}
	pool := ActiveTaglines(now)
	return pool[intN(len(pool))%len(pool)]
}
