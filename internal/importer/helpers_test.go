package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]any
}

// preamble is the instruction row and header row every plan sheet starts with.
func preamble() [][]any {
	return [][]any{
		{"填写说明：每行一个计划"},
		{"计划", "日期", "月份", "周", "类型", "完成", "", "总结"},
	}
}

func writeWorkbook(t *testing.T, dir, name string, sheets ...testSheet) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		switch {
		case i == 0 && s.name != "Sheet1":
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		case i > 0:
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			addr, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, addr, &values))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}
