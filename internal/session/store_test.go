package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/session"
)

func testUser() entity.User {
	return entity.User{ID: 3, FirstName: "Ana", LastName: "García", Email: "ana@uni.edu", Role: "profesor"}
}

func TestStore_LoadMissingFileIsEmptySession(t *testing.T) {
	t.Parallel()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Load())

	_, ok := store.User()
	require.False(t, ok)
	require.Empty(t, store.Token())
}

func TestStore_SaveSurvivesReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	store := session.NewStore(path)
	require.NoError(t, store.Save(testUser(), "jwt-token"))

	reopened := session.NewStore(path)
	require.NoError(t, reopened.Load())

	user, ok := reopened.User()
	require.True(t, ok)
	require.Equal(t, testUser(), user)
	require.Equal(t, "jwt-token", reopened.Token())
}

func TestStore_FilePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	store := session.NewStore(path)
	require.NoError(t, store.Save(testUser(), "jwt-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_UpdateUserKeepsToken(t *testing.T) {
	t.Parallel()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(testUser(), "jwt-token"))

	edited := testUser()
	edited.FirstName = "Anita"

	require.NoError(t, store.UpdateUser(edited))

	user, ok := store.User()
	require.True(t, ok)
	require.Equal(t, "Anita", user.FirstName)
	require.Equal(t, "jwt-token", store.Token())
}

func TestStore_ClearRemovesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	store := session.NewStore(path)
	require.NoError(t, store.Save(testUser(), "jwt-token"))
	require.NoError(t, store.Clear())

	_, ok := store.User()
	require.False(t, ok)
	require.Empty(t, store.Token())

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	// Clearing an already-empty session stays idempotent.
	require.NoError(t, store.Clear())
}
