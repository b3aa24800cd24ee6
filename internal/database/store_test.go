package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"serwer-mediow/internal/storage"

	"github.com/stretchr/testify/require"
)

// Funkcja pomocnicza: store na świeżym katalogu tymczasowym, bez huba.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	ls, err := storage.NewLocalStorage(filepath.Join(dir, "files"))
	require.NoError(t, err)

	dataPath := filepath.Join(dir, "data.json")
	return NewStore(dataPath, ls, nil), dataPath
}

func TestLoad_MissingDocument(t *testing.T) {
	store, _ := newTestStore(t)

	names, err := store.ListScreenNames(context.Background())
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = store.GetUser(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoad_CorruptDocument(t *testing.T) {
	store, dataPath := newTestStore(t)

	require.NoError(t, os.WriteFile(dataPath, []byte("{not json"), 0o644))

	// Nieczytelny dokument oznacza pusty stan, nie błąd.
	names, err := store.ListScreenNames(context.Background())
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestSaveAndReload(t *testing.T) {
	store, dataPath := newTestStore(t)

	created, err := store.CreateOrUpdateUser(context.Background(), "alice", "secret", "")
	require.NoError(t, err)

	// Nowy store nad tym samym plikiem widzi zapisany stan.
	ls, err := storage.NewLocalStorage(filepath.Join(filepath.Dir(dataPath), "files"))
	require.NoError(t, err)
	reopened := NewStore(dataPath, ls, nil)

	user, err := reopened.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, created.DataDirName, user.DataDirName)
	require.Equal(t, created.HashedPassword, user.HashedPassword)
}

func TestSave_NoTempLeftovers(t *testing.T) {
	store, dataPath := newTestStore(t)

	_, err := store.CreateOrUpdateUser(context.Background(), "alice", "secret", "")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(dataPath))
	require.NoError(t, err)
	for _, entry := range entries {
		require.False(t, strings.HasPrefix(entry.Name(), ".data-"),
			"save must not leave temp documents behind: %s", entry.Name())
	}
}

func TestUpdate_FailedMutationIsNotSaved(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateOrUpdateUser(context.Background(), "alice", "secret", "")
	require.NoError(t, err)

	err = store.Update(func(doc *Document) error {
		delete(doc.Users, "alice")
		return os.ErrInvalid
	})
	require.Error(t, err)

	_, err = store.GetUser(context.Background(), "alice")
	require.NoError(t, err, "a failed mutation must leave the document untouched")
}

func TestConcurrentUpdates_NoLostWrites(t *testing.T) {
	store, _ := newTestStore(t)

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CreateOrUpdateUser(context.Background(),
				fmt.Sprintf("user%02d", i), "secret", "")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	names, err := store.ListScreenNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, workers, "every concurrent mutation must persist")
}
