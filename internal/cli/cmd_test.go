package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/logger"
)

// testApp wires an App over JSON stores in a temp data directory.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default(t.TempDir())
	stores, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close() })
	return NewApp(cfg, logger.NewNop(), stores)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writePlanWorkbook writes a one-sheet workbook with the standard two
// leading rows followed by rows.
func writePlanWorkbook(t *testing.T, dir, name string, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]any{
		{"说明"},
		{"计划", "日期", "月份", "周", "类型", "完成", "", "总结"},
	}, rows...)
	for i, row := range all {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &values))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}
