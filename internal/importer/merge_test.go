package importer

import (
	"testing"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"append", ModeAppend, false},
		{" Append ", ModeAppend, false},
		{"1", ModeAppend, false},
		{"overwrite", ModeOverwrite, false},
		{"2", ModeOverwrite, false},
		{"cancel", ModeCancel, false},
		{"", "", true},
		{"replace", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMerge(t *testing.T) {
	existing := []domain.Record{
		testutil.NewTestRecord(t, "old a"),
		testutil.NewTestRecord(t, "old b"),
	}
	incoming := []domain.Plan{
		testutil.NewTestPlan("new a"),
		testutil.NewTestPlan("new b"),
	}

	t.Run("append", func(t *testing.T) {
		out, err := Merge(existing, incoming, ModeAppend)
		require.NoError(t, err)
		assert.Equal(t, []string{"old a", "old b", "new a", "new b"}, titles(out))
	})

	t.Run("overwrite", func(t *testing.T) {
		out, err := Merge(existing, incoming, ModeOverwrite)
		require.NoError(t, err)
		assert.Equal(t, []string{"new a", "new b"}, titles(out))
		assert.Equal(t, incoming[0].ID, out[0].ID())
	})

	t.Run("cancel", func(t *testing.T) {
		out, err := Merge(existing, incoming, ModeCancel)
		require.NoError(t, err)
		assert.Equal(t, []string{"old a", "old b"}, titles(out))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Merge(existing, incoming, Mode("sideways"))
		assert.Error(t, err)
	})

	assert.Len(t, existing, 2, "existing slice is not modified")
}

func titles(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title()
	}
	return out
}
