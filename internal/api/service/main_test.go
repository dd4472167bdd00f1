package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/internal/api/store/drivers/sqlite"
	"github.com/prioritypro/prioritypro/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "prioritypro-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)
	os.Remove(pepperPath)

	// os.Exit skips deferred calls, so clean up before exiting.
	code := m.Run()
	os.Remove(pepperPath)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	t.Cleanup(func() { _ = st.Close() })
	return st
}
