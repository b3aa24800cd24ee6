package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureNamespace(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, ls.EnsureNamespace("a1b2c3d4e5f60718"))

	info, err := os.Stat(filepath.Join(ls.BasePath(), "a1b2c3d4e5f60718"))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Powtórne wywołanie nie jest błędem.
	require.NoError(t, ls.EnsureNamespace("a1b2c3d4e5f60718"))
}

func TestSave(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	payload := "not really an mp4"
	n, err := ls.Save("a1b2c3d4e5f60718", "deadbeef00112233.mp4", strings.NewReader(payload))

	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), n)

	written, err := os.ReadFile(filepath.Join(ls.BasePath(), "a1b2c3d4e5f60718", "deadbeef00112233.mp4"))
	require.NoError(t, err)
	require.Equal(t, payload, string(written))
}

func TestSave_NoTempLeftovers(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = ls.Save("a1b2c3d4e5f60718", "deadbeef00112233.mp3", strings.NewReader("audio"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(ls.BasePath(), "a1b2c3d4e5f60718"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "deadbeef00112233.mp3", entries[0].Name())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestSave_ReaderFailureCleansUp(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = ls.Save("a1b2c3d4e5f60718", "deadbeef00112233.mp4", failingReader{})
	require.Error(t, err)

	// Nieudany zapis nie może zostawić ani pliku docelowego, ani tymczasowego.
	entries, err := os.ReadDir(filepath.Join(ls.BasePath(), "a1b2c3d4e5f60718"))
	require.NoError(t, err)
	require.Empty(t, entries)
}
