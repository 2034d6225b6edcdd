package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Get(KeyLanguage)
	require.NoError(t, err)
	assert.Empty(t, got, "unset key reads as empty")

	require.NoError(t, s.Set(KeyLanguage, "de"))
	got, err = s.Get(KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "de", got)

	require.NoError(t, s.Set(KeyLanguage, "en"))
	got, err = s.Get(KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", got, "set overwrites")

	require.NoError(t, s.Delete(KeyLanguage))
	got, err = s.Get(KeyLanguage)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArchive_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveArchivedProjectIDs([]int64{5, 9}))
	assert.Equal(t, []int64{5, 9}, s.LoadArchivedProjectIDs())
}

func TestArchive_EmptyByDefault(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, []int64{}, s.LoadArchivedProjectIDs())
}

func TestArchive_CorruptedStorage(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(KeyArchived, "not json at all"))
	assert.Equal(t, []int64{}, s.LoadArchivedProjectIDs())

	require.NoError(t, s.Set(KeyArchived, `{"a":1}`))
	assert.Equal(t, []int64{}, s.LoadArchivedProjectIDs(), "non-array loads as empty")
}

func TestArchive_SanitizesEntries(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(KeyArchived, `[5, "nine", -2, 0, 3.5, 9]`))
	assert.Equal(t, []int64{5, 9}, s.LoadArchivedProjectIDs())
}

func TestArchive_ArchiveUnarchive(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.ArchiveProject(5))
	require.NoError(t, s.ArchiveProject(5))
	require.NoError(t, s.ArchiveProject(9))
	assert.Equal(t, []int64{5, 9}, s.LoadArchivedProjectIDs())

	assert.Equal(t, map[int64]bool{5: true, 9: true}, s.ArchivedSet())

	require.NoError(t, s.UnarchiveProject(5))
	assert.Equal(t, []int64{9}, s.LoadArchivedProjectIDs())
}
