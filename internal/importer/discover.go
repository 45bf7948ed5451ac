package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const workbookExt = ".xlsx"

// Discover lists the workbooks in dir, sorted by name. Excel lock files
// (~$name.xlsx) are skipped.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isWorkbookName(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// Resolve maps file arguments to workbook paths. Relative arguments are
// taken from dir. Arguments that are missing or not workbooks are returned
// separately.
func Resolve(dir string, args []string) (found, missing []string) {
	for _, arg := range args {
		p := arg
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() || !isWorkbookName(info.Name()) {
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, fmt.Sprintf("%s (%v)", arg, err))
				continue
			}
			missing = append(missing, arg)
			continue
		}
		found = append(found, p)
	}
	return found, missing
}

func isWorkbookName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), workbookExt) && !strings.HasPrefix(name, "~$")
}
