package importer

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/normalize"
	"github.com/xuri/excelize/v2"
)

// Excel serial numbers for 1900-01-01 and 9999-12-31.
const (
	minSerialDate = 1
	maxSerialDate = 2958465
)

// RowIssue describes a row that did not become a plan.
type RowIssue struct {
	Sheet  string
	Row    int
	Title  string
	Reason string
}

type SheetResult struct {
	Name   string
	Rows   int
	Parsed int
	Err    error
}

// WorkbookResult is everything read from one workbook file.
type WorkbookResult struct {
	Path    string
	Sheets  []SheetResult
	Plans   []domain.Plan
	Skipped []RowIssue
}

// ReadWorkbook converts every sheet of the workbook at path. A sheet that
// cannot be read is recorded on its SheetResult and the rest of the
// workbook is still converted.
func ReadWorkbook(path string, ids domain.IDSource) (*WorkbookResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	serial := serialDateRule(date1904)
	styles := newDateStyles(f)

	result := &WorkbookResult{Path: path}
	for _, name := range f.GetSheetList() {
		sheet := SheetResult{Name: name}
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			sheet.Err = fmt.Errorf("reading sheet %s: %w", name, err)
			result.Sheets = append(result.Sheets, sheet)
			continue
		}
		sheet.Rows = len(rows)

		for i := headerRows; i < len(rows); i++ {
			var rules []normalize.Rule[string]
			if styles.isDateCell(name, i+1) {
				rules = append(rules, serial)
			}
			plan, outcome := ConvertRow(rows[i], ids, rules...)
			switch outcome {
			case RowParsed:
				result.Plans = append(result.Plans, plan)
				sheet.Parsed++
			case RowNoDate:
				result.Skipped = append(result.Skipped, RowIssue{
					Sheet:  name,
					Row:    i + 1,
					Title:  plan.Title,
					Reason: outcome.String(),
				})
			}
		}
		result.Sheets = append(result.Sheets, sheet)
	}
	return result, nil
}

// dateStyles answers whether a date column cell carries a date number
// format. Only such cells hold a native date; a bare number is not one.
type dateStyles struct {
	f     *excelize.File
	known map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	return &dateStyles{f: f, known: make(map[int]bool)}
}

func (d *dateStyles) isDateCell(sheet string, row int) bool {
	ref, err := excelize.CoordinatesToCellName(colDate+1, row)
	if err != nil {
		return false
	}
	idx, err := d.f.GetCellStyle(sheet, ref)
	if err != nil || idx == 0 {
		return false
	}
	if v, ok := d.known[idx]; ok {
		return v
	}
	style, err := d.f.GetStyle(idx)
	v := err == nil && isDateFormat(style)
	d.known[idx] = v
	return v
}

// isDateFormat reports whether a style formats numbers as dates: the
// built-in date ids (including the East Asian ones) or a custom code with
// a year, month or day token.
func isDateFormat(style *excelize.Style) bool {
	switch n := style.NumFmt; {
	case n >= 14 && n <= 22, n >= 27 && n <= 36, n >= 45 && n <= 47, n >= 50 && n <= 58:
		return true
	}
	if style.CustomNumFmt == nil {
		return false
	}
	return customDateTokens.MatchString(stripFormatLiterals(*style.CustomNumFmt))
}

var (
	customDateTokens = regexp.MustCompile(`(?i)[ymd]`)
	formatLiterals   = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)
)

// stripFormatLiterals drops quoted text, escaped characters and bracketed
// sections such as locale or color codes from a number format.
func stripFormatLiterals(code string) string {
	return formatLiterals.ReplaceAllString(code, "")
}

// serialDateRule reads a cell holding a raw spreadsheet date serial.
func serialDateRule(date1904 bool) normalize.Rule[string] {
	return func(cell string) (string, bool) {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || v < minSerialDate || v > maxSerialDate {
			return "", false
		}
		t, err := excelize.ExcelDateToTime(v, date1904)
		if err != nil {
			return "", false
		}
		return t.Format(normalize.DateLayout), true
	}
}

// FileFailure is a workbook that could not be opened at all.
type FileFailure struct {
	Path string
	Err  error
}

// Batch is the combined result of reading several workbooks.
type Batch struct {
	Workbooks []*WorkbookResult
	Failures  []FileFailure
	Plans     []domain.Plan
}

// ReadAll reads each path in order. A file that fails to open is recorded
// and skipped.
func ReadAll(paths []string, ids domain.IDSource) *Batch {
	b := &Batch{}
	for _, p := range paths {
		wb, err := ReadWorkbook(p, ids)
		if err != nil {
			b.Failures = append(b.Failures, FileFailure{Path: p, Err: err})
			continue
		}
		b.Workbooks = append(b.Workbooks, wb)
		b.Plans = append(b.Plans, wb.Plans...)
	}
	return b
}
