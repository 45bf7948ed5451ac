package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/planboard/internal/importer"
)

// importModeOptions offers every import mode in importer.Modes order.
func importModeOptions(existing, incoming int) []huh.Option[importer.Mode] {
	opts := make([]huh.Option[importer.Mode], 0, len(importer.Modes))
	for _, m := range importer.Modes {
		opts = append(opts, huh.NewOption(modeLabel(m, existing, incoming), m))
	}
	return opts
}

func modeLabel(m importer.Mode, existing, incoming int) string {
	switch m {
	case importer.ModeAppend:
		return fmt.Sprintf("Append: keep %d existing, add %d", existing, incoming)
	case importer.ModeOverwrite:
		return fmt.Sprintf("Overwrite: replace everything with %d", incoming)
	default:
		return "Cancel"
	}
}

// promptImportMode asks for an import mode. Aborting the form cancels.
func promptImportMode(existing, incoming int) (importer.Mode, error) {
	mode := importer.ModeAppend
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[importer.Mode]().
				Title("Import mode").
				Options(importModeOptions(existing, incoming)...).
				Value(&mode),
		),
	).WithTheme(planboardHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return importer.ModeCancel, nil
		}
		return "", fmt.Errorf("import mode prompt: %w", err)
	}
	return mode, nil
}
