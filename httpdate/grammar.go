package httpdate

import (
	"regexp"
	"strconv"
	"strings"
)

// fields holds the raw values extracted from a date string by one of the supported
// grammars, prior to any calendar validation
type fields struct {
	year         int
	twoDigitYear bool
	month        int
	day          int
	hour         int
	min          int
	sec          int
}

// grammar is a single anchored date format: match returns the extracted fields and
// true if the input is a full-string match for this grammar
type grammar struct {
	re           *regexp.Regexp
	twoDigitYear bool
}

// months maps the lowercase three-letter month abbreviations to their 1-based index
var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

const (
	patDay      = `(?P<day>\d{2})`
	patDayPad   = `(?P<day>[ \d]\d)`
	patMonth    = `(?P<mon>[A-Za-z]{3})`
	patYear     = `(?P<year>\d{4})`
	patYear2    = `(?P<year>\d{2})`
	patTime     = `(?P<hour>\d{2}):(?P<min>\d{2}):(?P<sec>\d{2})`
	patWeekday  = `[A-Za-z]{3}`
	patLongWday = `[A-Za-z]{6,9}`
)

// grammars lists the supported formats in the order they're tried; the first match
// wins
var grammars = []grammar{
	{
		// Sun, 06 Nov 1994 08:49:37 GMT
		re: regexp.MustCompile(`^` + patWeekday + `, ` + patDay + ` ` + patMonth + ` ` + patYear + ` ` + patTime + ` GMT$`),
	},
	{
		// Sunday, 06-Nov-94 08:49:37 GMT
		re:           regexp.MustCompile(`^` + patLongWday + `, ` + patDay + `-` + patMonth + `-` + patYear2 + ` ` + patTime + ` GMT$`),
		twoDigitYear: true,
	},
	{
		// Sun Nov  6 08:49:37 1994
		re: regexp.MustCompile(`^` + patWeekday + ` ` + patMonth + ` ` + patDayPad + ` ` + patTime + ` ` + patYear + `$`),
	},
}

func (g *grammar) match(s string) (fields, bool) {
	m := g.re.FindStringSubmatch(s)
	if m == nil {
		return fields{}, false
	}

	month, ok := months[strings.ToLower(m[g.re.SubexpIndex("mon")])]
	if !ok {
		return fields{}, false
	}

	// Every remaining group is constrained to digits (plus a leading space for the
	// padded asctime day) by the regexp itself, so Atoi cannot fail
	num := func(group string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(m[g.re.SubexpIndex(group)]))
		return n
	}
	return fields{
		year:         num("year"),
		twoDigitYear: g.twoDigitYear,
		month:        month,
		day:          num("day"),
		hour:         num("hour"),
		min:          num("min"),
		sec:          num("sec"),
	}, true
}
