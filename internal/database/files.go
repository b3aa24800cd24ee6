package database

import (
	"context"

	"serwer-mediow/internal/models"
)

// ListFiles returns the upload-ordered file list for a namespace. An unknown
// data_dir_name is an error, never an empty success list; the lookup is by
// namespace rather than by screen name, matching the public wire contract.
func (s *Store) ListFiles(ctx context.Context, dataDirName string) ([]models.FileRecord, error) {
	doc := s.load()
	files, ok := doc.Files[dataDirName]
	if !ok {
		return nil, ErrUserNotFound
	}
	return files, nil
}

// AppendFileRecord records one uploaded payload at the end of a namespace's
// list. The caller must have durably written the payload to disk already;
// the store never records metadata ahead of the bytes it points at.
func (s *Store) AppendFileRecord(ctx context.Context, dataDirName string, record models.FileRecord) error {
	err := s.Update(func(doc *Document) error {
		doc.Files[dataDirName] = append(doc.Files[dataDirName], record)
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent("file_uploaded", map[string]string{
		"data_dir_name": dataDirName,
		"title":         record.Title,
		"filename":      record.Filename,
	})
	return nil
}
