package importer

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/normalize"
)

// Fixed column order of a plan sheet. Column 6 is not used.
const (
	colTitle = iota
	colDate
	colMonth
	colWeek
	colType
	colCompleted
	_
	colSummary
)

// headerRows is the number of leading rows (instructions, headers) skipped
// on every sheet.
const headerRows = 2

// RowOutcome classifies what ConvertRow did with a row.
type RowOutcome int

const (
	RowParsed RowOutcome = iota
	RowBlank
	RowGoalNote
	RowNoDate
)

func (o RowOutcome) String() string {
	switch o {
	case RowParsed:
		return "parsed"
	case RowBlank:
		return "blank title"
	case RowGoalNote:
		return "goal note"
	case RowNoDate:
		return "no date"
	default:
		return "unknown"
	}
}

// ConvertRow maps one sheet row to a plan. The plan is only meaningful when
// the outcome is RowParsed. dateRules extend the textual date forms, e.g.
// with spreadsheet serial dates.
func ConvertRow(cells []string, ids domain.IDSource, dateRules ...normalize.Rule[string]) (domain.Plan, RowOutcome) {
	title := normalize.Clean(cell(cells, colTitle))
	if title == "" {
		return domain.Plan{}, RowBlank
	}
	if strings.Contains(title, "目标：") || strings.Contains(title, "目标:") {
		return domain.Plan{Title: title}, RowGoalNote
	}

	date, ok := normalize.Date(cell(cells, colDate), dateRules...)
	if !ok {
		return domain.Plan{Title: title}, RowNoDate
	}

	return domain.Plan{
		ID:        ids.NewID(),
		Title:     title,
		Date:      date,
		Month:     normalize.Month(cell(cells, colMonth), date),
		Week:      normalize.Week(cell(cells, colWeek)),
		Type:      normalize.Category(cell(cells, colType)),
		Completed: normalize.Completed(cell(cells, colCompleted)),
		Summary:   normalize.Clean(cell(cells, colSummary)),
	}, RowParsed
}

// cell returns "" for columns past the end of a short row.
func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
