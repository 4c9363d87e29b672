package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/patievi/database"
	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/repository"
)

// newTestDB, geçici dosya üzerinde migration'ları uygulanmış bir DB açar.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSQLiteUserRepoCreateAndGet(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(newTestDB(t).Conn)
	ctx := context.Background()

	user := &models.User{Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	// RETURNING, id ve created_at'i doldurmuş olmalı.
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestSQLiteUserRepoDuplicateEmail(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(newTestDB(t).Conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "ada@example.com", PasswordHash: "a"}))

	err := repo.Create(ctx, &models.User{Email: "ada@example.com", PasswordHash: "b"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestSQLiteUserRepoNotFound(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(newTestDB(t).Conn)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLiteAnimalRepoCRUD(t *testing.T) {
	repo := repository.NewSQLiteAnimalRepo(newTestDB(t).Conn)
	ctx := context.Background()

	animal := &models.Animal{ID: "a-1", Species: models.SpeciesDog, Description: "good boy"}
	require.NoError(t, repo.Create(ctx, animal))
	assert.False(t, animal.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, models.SpeciesDog, got.Species)
	assert.Equal(t, "good boy", got.Description)

	got.Species = models.SpeciesCat
	got.Description = "actually a cat"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, models.SpeciesCat, updated.Species)
	assert.Equal(t, "actually a cat", updated.Description)

	require.NoError(t, repo.Delete(ctx, "a-1"))

	_, err = repo.GetByID(ctx, "a-1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLiteAnimalRepoListIDs(t *testing.T) {
	repo := repository.NewSQLiteAnimalRepo(newTestDB(t).Conn)
	ctx := context.Background()

	// Boş katalog null değil, boş slice dönmeli.
	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	require.NoError(t, repo.Create(ctx, &models.Animal{ID: "a-1", Species: models.SpeciesDog, Description: "x"}))
	require.NoError(t, repo.Create(ctx, &models.Animal{ID: "a-2", Species: models.SpeciesCat, Description: "y"}))

	ids, err = repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1", "a-2"}, ids)
}

func TestReposWorkInsideTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Repo'lar TxQuerier aldığı için *sql.Tx de geçilebilir.
	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		repo := repository.NewSQLiteUserRepo(tx)
		return repo.Create(ctx, &models.User{Email: "tx@example.com", PasswordHash: "hash"})
	})
	require.NoError(t, err)

	// Commit edildi — normal bağlantıdan görünür olmalı.
	repo := repository.NewSQLiteUserRepo(db.Conn)
	_, err = repo.GetByEmail(ctx, "tx@example.com")
	assert.NoError(t, err)
}

func TestWithTxRollbackDiscardsWrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := database.WithTx(ctx, db.Conn, func(tx *sql.Tx) error {
		repo := repository.NewSQLiteUserRepo(tx)
		if err := repo.Create(ctx, &models.User{Email: "gone@example.com", PasswordHash: "hash"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Rollback — satır kalıcı olmamalı.
	repo := repository.NewSQLiteUserRepo(db.Conn)
	_, err = repo.GetByEmail(ctx, "gone@example.com")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLiteAnimalRepoUpdateDeleteUnknown(t *testing.T) {
	repo := repository.NewSQLiteAnimalRepo(newTestDB(t).Conn)
	ctx := context.Background()

	err := repo.Update(ctx, &models.Animal{ID: "nope", Species: models.SpeciesDog, Description: "x"})
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "nope"), pkg.ErrNotFound)
}
