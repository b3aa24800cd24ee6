package database

import (
	"context"
	"errors"
	"fmt"

	"serwer-mediow/internal/auth"
	"serwer-mediow/internal/models"

	"github.com/jaevor/go-nanoid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
)

// newDataDirName generates the random namespace identifier assigned to an
// account at creation. 16 hex characters give a 64-bit space, so a collision
// between two accounts is not a practical concern.
func newDataDirName() (string, error) {
	generateID, err := nanoid.CustomASCII("0123456789abcdef", 16)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return generateID(), nil
}

func (s *Store) GetUser(ctx context.Context, screenName string) (*models.User, error) {
	doc := s.load()
	user, ok := doc.Users[screenName]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) ListScreenNames(ctx context.Context) ([]string, error) {
	doc := s.load()
	names := make([]string, 0, len(doc.Users))
	for name := range doc.Users {
		names = append(names, name)
	}
	return names, nil
}

// CheckPassword verifies password against the stored hash using the user's
// recorded algorithm. A missing password is checked as the empty string.
func (s *Store) CheckPassword(ctx context.Context, screenName, password string) (bool, error) {
	doc := s.load()
	user, ok := doc.Users[screenName]
	if !ok {
		return false, ErrUserNotFound
	}
	return auth.CheckPasswordHash(user.PasswordAlgorithm, password, user.HashedPassword), nil
}

// CreateOrUpdateUser registers screenName or rotates its password.
//
// Create: a fresh data_dir_name is generated, the namespace directory is
// created on disk, and an empty file list is initialized, all before the
// document is saved, so a persisted user always has both.
//
// Update: oldPassword must verify against the stored hash first; on mismatch
// nothing changes. The data_dir_name is kept so existing files stay
// reachable, and the new password is hashed with the current default
// algorithm regardless of what the account used before.
func (s *Store) CreateOrUpdateUser(ctx context.Context, screenName, password, oldPassword string) (*models.User, error) {
	var user models.User
	var created bool

	err := s.Update(func(doc *Document) error {
		dataDirName, err := newDataDirName()
		if err != nil {
			return err
		}
		created = true

		if existing, ok := doc.Users[screenName]; ok {
			if !auth.CheckPasswordHash(existing.PasswordAlgorithm, oldPassword, existing.HashedPassword) {
				return ErrOldPasswordIncorrect
			}
			dataDirName = existing.DataDirName
			created = false
		}

		hashed, err := auth.HashPassword(auth.DefaultAlgorithm, password)
		if err != nil {
			return err
		}

		user = models.User{
			ScreenName:        screenName,
			PasswordAlgorithm: auth.DefaultAlgorithm,
			HashedPassword:    hashed,
			DataDirName:       dataDirName,
		}
		doc.Users[screenName] = user

		if _, ok := doc.Files[dataDirName]; !ok {
			doc.Files[dataDirName] = []models.FileRecord{}
		}

		return s.dirs.EnsureNamespace(dataDirName)
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.publishEvent("user_created", map[string]string{"screen_name": user.ScreenName})
	}
	return &user, nil
}
