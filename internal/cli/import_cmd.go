package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
)

var errNoWorkbooks = errors.New("no .xlsx files found")

type importOptions struct {
	all  bool
	mode string
	dir  string
}

// NewImportCmd creates the "planimport" command.
func NewImportCmd(app *App) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "planimport [files...]",
		Short: "Import plans from .xlsx workbooks",
		Long: `Reads plan rows from one or more workbooks and appends them to, or
overwrites, the plan store. The first two rows of every sheet are skipped.

Without --mode the import mode is asked interactively; without a terminal
the import is cancelled.`,
		Example: `  planimport 2025计划.xlsx
  planimport --all --mode append`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, app, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "import every workbook in the directory")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "append or overwrite, skips the prompt")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory holding the workbooks (default: data directory)")
	return cmd
}

func runImport(cmd *cobra.Command, app *App, opts importOptions, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	log := app.logger()

	var preset importer.Mode
	if opts.mode != "" {
		m, err := importer.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		preset = m
	}

	dir := opts.dir
	if dir == "" {
		dir = app.Config.DataDir
	}

	available, err := importer.Discover(dir)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		return fmt.Errorf("%w in %s", errNoWorkbooks, dir)
	}
	fmt.Fprintln(out, formatter.FormatFileList(dir, available))

	var selected []string
	switch {
	case opts.all:
		selected = available
	case len(args) == 0:
		fmt.Fprintln(out, formatter.Dim("Pass file names to import, or --all for every workbook."))
		return cmd.Usage()
	default:
		var missing []string
		selected, missing = importer.Resolve(dir, args)
		for _, m := range missing {
			fmt.Fprintln(out, formatter.Warn("not a workbook: "+m))
		}
		if len(selected) == 0 {
			return fmt.Errorf("none of %s is a workbook in %s", strings.Join(args, ", "), dir)
		}
	}

	ids := app.IDs
	if ids == nil {
		ids = domain.NewIDGenerator()
	}
	batch := importer.ReadAll(selected, ids)
	for _, wb := range batch.Workbooks {
		fmt.Fprintln(out, formatter.FormatWorkbook(wb))
		log.Info("workbook read", "path", wb.Path, "plans", len(wb.Plans), "skipped", len(wb.Skipped))
	}
	if len(batch.Failures) > 0 {
		fmt.Fprint(out, formatter.FormatFailures(batch.Failures))
		for _, f := range batch.Failures {
			log.Warn("workbook unreadable", "path", f.Path, "error", f.Err)
		}
	}

	if len(batch.Plans) == 0 {
		fmt.Fprintln(out, formatter.Warn("No valid plans parsed, nothing to import"))
		return nil
	}

	existing, err := app.Plans.List(ctx)
	if err != nil {
		return fmt.Errorf("reading plan store: %w", err)
	}
	fmt.Fprint(out, formatter.FormatImportPlan(len(existing), len(batch.Plans)))

	mode, err := chooseMode(out, app, preset, len(existing), len(batch.Plans))
	if err != nil {
		return err
	}

	res, err := app.Plans.Import(ctx, batch.Plans, mode)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatImportResult(res))
	return nil
}

func chooseMode(out io.Writer, app *App, preset importer.Mode, existing, incoming int) (importer.Mode, error) {
	if preset != "" {
		return preset, nil
	}
	if !app.interactive() || app.PromptMode == nil {
		fmt.Fprintln(out, formatter.Warn("No terminal to prompt on; pass --mode append or --mode overwrite"))
		return importer.ModeCancel, nil
	}
	return app.PromptMode(existing, incoming)
}
