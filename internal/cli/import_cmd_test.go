package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
)

func seedPlan(t *testing.T, app *App, title string) {
	t.Helper()
	r := domain.Record{}
	require.NoError(t, r.Set("title", title))
	_, err := app.Plans.Create(context.Background(), r)
	require.NoError(t, err)
}

func listTitles(t *testing.T, app *App) []string {
	t.Helper()
	plans, err := app.Plans.List(context.Background())
	require.NoError(t, err)
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Title()
	}
	return out
}

func TestImportCmd_AppendWithModeFlag(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app, "existing")
	writePlanWorkbook(t, app.Config.DataDir, "2025.xlsx",
		[]any{"读书", "2025年1月3日", "", "第1周", "📚 学习输入", "☑"},
		[]any{"跑步", "2025-01-04", "", "", "运动锻炼", "□"},
		[]any{"无日期", "TBD"},
	)

	out, err := executeCmd(t, NewImportCmd(app), "2025.xlsx", "--mode", "append")
	require.NoError(t, err)

	assert.Contains(t, out, "2025.xlsx")
	assert.Contains(t, out, "skipped Sheet1 row 5 (no date): 无日期")
	assert.Contains(t, out, "Existing plans: 1")
	assert.Contains(t, out, "Plans to import: 2")
	assert.Contains(t, out, "Appended 2 plans, 3 total")
	assert.Equal(t, []string{"existing", "读书", "跑步"}, listTitles(t, app))
}

func TestImportCmd_OverwriteAll(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app, "existing")
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})
	writePlanWorkbook(t, app.Config.DataDir, "b.xlsx", []any{"B", "2025-01-02"})

	out, err := executeCmd(t, NewImportCmd(app), "--all", "--mode", "overwrite")
	require.NoError(t, err)

	assert.Contains(t, out, "1. a.xlsx")
	assert.Contains(t, out, "2. b.xlsx")
	assert.Contains(t, out, "Overwrote store, 2 plans total")
	assert.Equal(t, []string{"A", "B"}, listTitles(t, app))
}

func TestImportCmd_NoTerminalCancels(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app, "existing")
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})
	app.IsInteractive = func() bool { return false }
	app.PromptMode = func(int, int) (importer.Mode, error) {
		t.Fatal("prompt must not run without a terminal")
		return "", nil
	}

	out, err := executeCmd(t, NewImportCmd(app), "a.xlsx")
	require.NoError(t, err)

	assert.Contains(t, out, "pass --mode")
	assert.Contains(t, out, "Import cancelled")
	assert.Equal(t, []string{"existing"}, listTitles(t, app))
}

func TestImportCmd_InteractivePrompt(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app, "existing")
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})

	var gotExisting, gotIncoming int
	app.IsInteractive = func() bool { return true }
	app.PromptMode = func(existing, incoming int) (importer.Mode, error) {
		gotExisting, gotIncoming = existing, incoming
		return importer.ModeOverwrite, nil
	}

	_, err := executeCmd(t, NewImportCmd(app), "a.xlsx")
	require.NoError(t, err)

	assert.Equal(t, 1, gotExisting)
	assert.Equal(t, 1, gotIncoming)
	assert.Equal(t, []string{"A"}, listTitles(t, app))
}

func TestImportCmd_PromptError(t *testing.T) {
	app := testApp(t)
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})
	app.IsInteractive = func() bool { return true }
	app.PromptMode = func(int, int) (importer.Mode, error) {
		return "", errors.New("tty closed")
	}

	_, err := executeCmd(t, NewImportCmd(app), "a.xlsx")
	assert.ErrorContains(t, err, "tty closed")
	assert.Empty(t, listTitles(t, app))
}

func TestImportCmd_DirFlag(t *testing.T) {
	app := testApp(t)
	other := t.TempDir()
	writePlanWorkbook(t, other, "elsewhere.xlsx", []any{"X", "2025/3/1"})

	out, err := executeCmd(t, NewImportCmd(app), "--dir", other, "--all", "--mode", "append")
	require.NoError(t, err)
	assert.Contains(t, out, "elsewhere.xlsx")
	assert.Equal(t, []string{"X"}, listTitles(t, app))
}

func TestImportCmd_NoArgsPrintsUsage(t *testing.T) {
	app := testApp(t)
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})

	out, err := executeCmd(t, NewImportCmd(app))
	require.NoError(t, err)
	assert.Contains(t, out, "1. a.xlsx")
	assert.Contains(t, out, "--all")
	assert.Empty(t, listTitles(t, app))
}

func TestImportCmd_Errors(t *testing.T) {
	t.Run("no workbooks", func(t *testing.T) {
		app := testApp(t)
		_, err := executeCmd(t, NewImportCmd(app), "--all", "--mode", "append")
		assert.ErrorIs(t, err, errNoWorkbooks)
	})

	t.Run("unknown file", func(t *testing.T) {
		app := testApp(t)
		writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"A", "2025-01-01"})
		out, err := executeCmd(t, NewImportCmd(app), "missing.xlsx", "--mode", "append")
		assert.Error(t, err)
		assert.Contains(t, out, "not a workbook: missing.xlsx")
	})

	t.Run("bad mode", func(t *testing.T) {
		app := testApp(t)
		_, err := executeCmd(t, NewImportCmd(app), "--all", "--mode", "merge")
		assert.ErrorContains(t, err, "unknown import mode")
	})
}

func TestImportCmd_UnreadableWorkbookIsSkipped(t *testing.T) {
	app := testApp(t)
	writePlanWorkbook(t, app.Config.DataDir, "good.xlsx", []any{"A", "2025-01-01"})
	require.NoError(t, os.WriteFile(filepath.Join(app.Config.DataDir, "bad.xlsx"), []byte("nope"), 0o644))

	out, err := executeCmd(t, NewImportCmd(app), "--all", "--mode", "append")
	require.NoError(t, err)
	assert.Contains(t, out, "bad.xlsx")
	assert.Equal(t, []string{"A"}, listTitles(t, app))
}

func TestImportCmd_NothingParsed(t *testing.T) {
	app := testApp(t)
	writePlanWorkbook(t, app.Config.DataDir, "a.xlsx", []any{"没有日期", ""})

	out, err := executeCmd(t, NewImportCmd(app), "a.xlsx", "--mode", "overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, "No valid plans parsed")
}
