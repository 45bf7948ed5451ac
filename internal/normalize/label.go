package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthToken = regexp.MustCompile(`(\d{1,2})月`)

// Month returns a "<n>月" label. An explicit token in monthCell wins;
// otherwise the month of the already normalized date is used. Returns ""
// when neither source yields a month.
func Month(monthCell, date string) string {
	label, _ := FirstMatch(monthCell,
		explicitMonth,
		func(string) (string, bool) { return monthFromDate(date) },
	)
	return label
}

func explicitMonth(cell string) (string, bool) {
	if !strings.Contains(cell, "月") {
		return "", false
	}
	m := monthToken.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	n, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%d月", n), true
}

func monthFromDate(date string) (string, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%d月", int(t.Month())), true
}

// Week passes the cell through only when it looks like a "第…周" label.
func Week(cell string) string {
	cell = Clean(cell)
	if strings.Contains(cell, "第") && strings.Contains(cell, "周") {
		return cell
	}
	return ""
}
