package formatter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/service"
)

// FormatFileList renders the numbered list of workbooks found in a directory.
func FormatFileList(dir string, paths []string) string {
	var b strings.Builder
	b.WriteString(Header("Workbooks"))
	b.WriteString("\n")
	b.WriteString(Dim(dir))
	b.WriteString("\n")
	for i, p := range paths {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, filepath.Base(p))
	}
	return b.String()
}

// previewLimit caps the parsed plans listed per workbook.
const previewLimit = 10

// FormatWorkbook renders the per-sheet counts, a preview of the parsed plans
// and the skipped rows of one workbook.
func FormatWorkbook(wb *importer.WorkbookResult) string {
	var b strings.Builder
	b.WriteString(Bold(filepath.Base(wb.Path)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		status := StyleGreen.Render("ok")
		if s.Err != nil {
			status = StyleRed.Render(s.Err.Error())
		}
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Rows), strconv.Itoa(s.Parsed), status})
	}
	b.WriteString(RenderTable([]string{"Sheet", "Rows", "Plans", "Status"}, rows, 1, 2))
	b.WriteString(formatPlanPreview(wb.Plans))

	for _, issue := range wb.Skipped {
		b.WriteString(Warn(fmt.Sprintf("skipped %s row %d (%s): %s",
			issue.Sheet, issue.Row, issue.Reason, truncate(issue.Title, 30))))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n", OK(fmt.Sprintf("%d plans parsed", len(wb.Plans))))
	return b.String()
}

func formatPlanPreview(plans []domain.Plan) string {
	if len(plans) == 0 {
		return ""
	}
	shown := plans
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	rows := make([][]string, 0, len(shown))
	for _, p := range shown {
		rows = append(rows, []string{
			Completion(p.Completed),
			p.Date,
			CategoryStyle(p.Type).Render(string(p.Type)),
			truncate(p.Title, 30),
		})
	}
	out := RenderTable([]string{"", "Date", "Type", "Title"}, rows)
	if more := len(plans) - len(shown); more > 0 {
		out += Dim(fmt.Sprintf("… and %d more", more)) + "\n"
	}
	return out
}

func FormatFailures(failures []importer.FileFailure) string {
	var b strings.Builder
	for _, f := range failures {
		b.WriteString(Fail(fmt.Sprintf("%s: %v", filepath.Base(f.Path), f.Err)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatImportPlan renders the counts shown before choosing a mode.
func FormatImportPlan(existing, incoming int) string {
	return fmt.Sprintf("%s %d\n%s %d\n",
		Dim("Existing plans:"), existing,
		Dim("Plans to import:"), incoming)
}

func FormatImportResult(res *service.ImportResult) string {
	switch {
	case !res.Written:
		return Warn("Import cancelled, nothing written") + "\n"
	case res.Mode == importer.ModeAppend:
		return OK(fmt.Sprintf("Appended %d plans, %d total", res.Imported, res.Total)) + "\n"
	default:
		return OK(fmt.Sprintf("Overwrote store, %d plans total", res.Total)) + "\n"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
