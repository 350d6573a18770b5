package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/morjahome/dashboard/internal/dashboard/store/storetest"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "dashboard.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestConformance(t *testing.T) {
	storetest.Run(t, openTestStore)
}

func TestMigrationsIdempotent(t *testing.T) {
	dsn := sqlite.DSN(filepath.Join(t.TempDir(), "dashboard.db"))

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Close())

	s, err = sqlite.NewStore(dsn)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations())
}
