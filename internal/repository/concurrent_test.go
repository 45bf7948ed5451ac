package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	database, err := db.OpenDB(filepath.Join(dir, "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// generation builds a collection of n plans that all carry generation n.
func generation(t *testing.T, n int) []domain.Record {
	plans := make([]domain.Record, n)
	for i := range plans {
		r := testutil.NewTestRecord(t, fmt.Sprintf("plan %d", i))
		require.NoError(t, r.Set("generation", n))
		plans[i] = r
	}
	return plans
}

// assertWholeGeneration fails unless plans is exactly one complete generation.
func assertWholeGeneration(t *testing.T, reader int, plans []domain.Record) {
	if len(plans) == 0 {
		return
	}
	var gen int
	for i, p := range plans {
		var g int
		if _, err := fmt.Sscan(string(p["generation"]), &g); err != nil {
			t.Errorf("reader %d: plan %d has no generation", reader, i)
			return
		}
		if i == 0 {
			gen = g
		}
		if g != gen {
			t.Errorf("reader %d: mixed generations %d and %d", reader, gen, g)
			return
		}
	}
	if len(plans) != gen {
		t.Errorf("reader %d: generation %d has %d plans", reader, gen, len(plans))
	}
}

// TestConcurrentAccess_ReadersSeeWholeCollections rewrites the collection
// repeatedly while readers load it. A reader must always observe one
// complete save, never a mix of two or a truncated one.
func TestConcurrentAccess_ReadersSeeWholeCollections(t *testing.T) {
	backends := map[string]func(t *testing.T) PlanStore{
		"json": func(t *testing.T) PlanStore {
			return NewJSONPlanStore(filepath.Join(t.TempDir(), "data.json"))
		},
		"sqlite": func(t *testing.T) PlanStore {
			database := newConcurrentTestDB(t)
			return NewSQLitePlanStore(database, db.NewSQLiteUnitOfWork(database))
		},
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			ctx := context.Background()
			const generations = 20
			saves := make([][]domain.Record, generations+1)
			for n := 1; n <= generations; n++ {
				saves[n] = generation(t, n)
			}

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				for n := 1; n <= generations; n++ {
					if err := store.Save(ctx, saves[n]); err != nil {
						t.Errorf("writer: save generation %d: %v", n, err)
						return
					}
				}
			}()

			for r := 0; r < 5; r++ {
				wg.Add(1)
				go func(reader int) {
					defer wg.Done()
					for i := 0; i < 20; i++ {
						plans, err := store.Load(ctx)
						if err != nil {
							t.Errorf("reader %d: load: %v", reader, err)
							return
						}
						assertWholeGeneration(t, reader, plans)
					}
				}(r)
			}

			wg.Wait()

			plans, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Len(t, plans, generations)
		})
	}
}
