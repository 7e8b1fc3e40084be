// Package session keeps the console's session token and logout flag in the
// local metadata table, and exposes them to the rest of the console through
// Context.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/userconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userconsole/internal/dbx"
)

// Keys of the persisted entries.
const (
	KeyAccessToken   = "accessToken"
	KeyLogoutConfirm = "isLogout"
)

// Storage is a set of plain accessors over the metadata table. Values are
// stored as given: nothing is validated and nothing expires.
type Storage struct {
	db   *sql.DB
	repo metadata.Repository

	newRepo func(dbx.DBTX) metadata.Repository
}

func NewStorage(db *sql.DB) *Storage {
	newRepo := func(tx dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(tx) }
	return &Storage{db: db, repo: newRepo(db), newRepo: newRepo}
}

// Token returns the stored access token; ok is false when none is stored.
func (s *Storage) Token(ctx context.Context) (string, bool, error) {
	return s.repo.Get(ctx, KeyAccessToken)
}

func (s *Storage) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyAccessToken, token)
}

func (s *Storage) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyAccessToken)
}

// LogoutConfirm reports whether the logout flag holds "true".
func (s *Storage) LogoutConfirm(ctx context.Context) (bool, error) {
	v, _, err := s.repo.Get(ctx, KeyLogoutConfirm)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *Storage) SetLogoutConfirm(ctx context.Context, v bool) error {
	return s.repo.Set(ctx, KeyLogoutConfirm, fmt.Sprint(v))
}

// Begin stores a fresh token and resets the logout flag in one transaction.
func (s *Storage) Begin(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Set(ctx, KeyAccessToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyLogoutConfirm, "false")
	})
}

// Logout drops the token and raises the logout flag in one transaction.
func (s *Storage) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.Delete(ctx, KeyAccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, KeyLogoutConfirm, "true")
	})
}

// Keys lists the names of the stored entries, sorted.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(entries)), nil
}

// Reset removes every entry. It is called when a console session ends.
func (s *Storage) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
