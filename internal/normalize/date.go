package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the normalized plan date format.
const DateLayout = "2006-01-02"

var (
	chineseDate = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	dashDate    = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDate   = regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`)
)

// TextDateRules returns the textual date forms in priority order. Each form
// may appear anywhere inside the cell.
func TextDateRules() []Rule[string] {
	return []Rule[string]{
		patternDate(chineseDate),
		patternDate(dashDate),
		patternDate(slashDate),
	}
}

// Date resolves cell to YYYY-MM-DD using the textual rules followed by any
// extra rules the caller supplies.
func Date(cell string, extra ...Rule[string]) (string, bool) {
	cell = Clean(cell)
	if cell == "" {
		return "", false
	}
	rules := append(TextDateRules(), extra...)
	return FirstMatch(cell, rules...)
}

func patternDate(re *regexp.Regexp) Rule[string] {
	return func(cell string) (string, bool) {
		m := re.FindStringSubmatch(cell)
		if m == nil {
			return "", false
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return FormatDate(year, month, day)
	}
}

// FormatDate zero-pads a calendar date. Dates that do not exist, such as
// February 30, are rejected.
func FormatDate(year, month, day int) (string, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
