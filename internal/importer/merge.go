package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Mode decides how imported plans combine with the existing store.
type Mode string

const (
	ModeAppend    Mode = "append"
	ModeOverwrite Mode = "overwrite"
	ModeCancel    Mode = "cancel"
)

// Modes lists the modes in prompt order.
var Modes = []Mode{ModeAppend, ModeOverwrite, ModeCancel}

// ParseMode accepts a mode name or its prompt number (1 append, 2 overwrite).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "append", "1":
		return ModeAppend, nil
	case "overwrite", "2":
		return ModeOverwrite, nil
	case "cancel":
		return ModeCancel, nil
	default:
		return "", fmt.Errorf("unknown import mode %q (expected append, overwrite or cancel)", s)
	}
}

// Merge combines existing records with incoming plans. Append keeps the
// existing records first; overwrite discards them; cancel returns them
// unchanged.
func Merge(existing []domain.Record, incoming []domain.Plan, mode Mode) ([]domain.Record, error) {
	var out []domain.Record
	switch mode {
	case ModeAppend:
		out = make([]domain.Record, 0, len(existing)+len(incoming))
		out = append(out, existing...)
	case ModeOverwrite:
		out = make([]domain.Record, 0, len(incoming))
	case ModeCancel:
		return append([]domain.Record{}, existing...), nil
	default:
		return nil, fmt.Errorf("unknown import mode %q", mode)
	}

	for _, p := range incoming {
		r, err := p.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("converting plan %q: %w", p.Title, err)
		}
		out = append(out, r)
	}
	return out, nil
}
