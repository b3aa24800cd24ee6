package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// EnsureNamespace creates the private directory for a data_dir_name if it
// does not exist yet. Namespaces are flat: one directory per account.
func (ls *LocalStorage) EnsureNamespace(dataDirName string) error {
	return os.MkdirAll(filepath.Join(ls.basePath, dataDirName), os.ModePerm)
}

// Save streams data into <basePath>/<dataDirName>/<filename>. The bytes go
// to a temporary file in the same directory first and are renamed into place
// only after a successful close, so a crash or a failed read never leaves a
// truncated payload under the final name.
func (ls *LocalStorage) Save(dataDirName, filename string, data io.Reader) (int64, error) {
	dir := filepath.Join(ls.basePath, dataDirName)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return 0, fmt.Errorf("storage: mkdir namespace: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("storage: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	n, werr := io.Copy(tmp, data)
	cerr := tmp.Close()
	if werr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("storage: stream payload: %w", werr)
	}
	if cerr != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("storage: flush payload: %w", cerr)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, filename)); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("storage: rename payload: %w", err)
	}

	return n, nil
}
