package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "usuario", "password", "pais", "fecha_registro"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE usuario = $1")).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "ana", "$2a$hash", "CL", createdAt))
	mock.ExpectQuery(regexp.QuoteMeta("FROM objetivos WHERE id_usuario = $1 ORDER BY posicion")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"objetivo"}).AddRow("estudiar").AddRow("dormir bien"))

	user, err := repo.GetByUsername(context.Background(), "ana")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "$2a$hash", user.PasswordHash)
	assert.Equal(t, "CL", user.Country)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.Equal(t, []string{"estudiar", "dormir bien"}, user.Goals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE usuario = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "bob", "h", "AR", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM objetivos")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"objetivo"}))

	user, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)
	assert.NotNil(t, user.Goals)
	assert.Empty(t, user.Goals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByID_Errors(t *testing.T) {
	t.Run("UserQuery", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByID(context.Background(), 7)
		assert.EqualError(t, err, "connection refused")
		assert.Nil(t, user)
	})

	t.Run("GoalsQuery", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "bob", "h", "AR", time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta("FROM objetivos")).
			WithArgs(int64(7)).
			WillReturnError(errors.New("timeout"))

		user, err := repo.GetByID(context.Background(), 7)
		assert.EqualError(t, err, "timeout")
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByUsername_UsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)
	db.SetMaxOpenConns(1)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios WHERE usuario = $1")).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "ana", "h", "CL", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM objetivos")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"objetivo"}).AddRow("leer"))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// the only connection is held by tx; a pool read would block until the deadline
	repo := NewUserReadRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	user, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, []string{"leer"}, user.Goals)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios (usuario, password, pais, fecha_registro)")).
		WithArgs("ana", "$2a$hash", "CL").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	id, err := repo.Save(context.Background(), "ana", "$2a$hash", "CL")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios")).
		WithArgs("ana", "$2a$hash", "CL").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_usuario_key"})

	id, err := repo.Save(context.Background(), "ana", "$2a$hash", "CL")
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	assert.Zero(t, id)
}

func TestUserWriteRepository_Save_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios")).
		WillReturnError(&pgconn.PgError{Code: "23502"})

	_, err := repo.Save(context.Background(), "ana", "$2a$hash", "CL")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrDuplicateUsername)
}

func TestUserWriteRepository_Save_UsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios")).
		WithArgs("ana", "$2a$hash", "CL").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewUserWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	id, err := repo.Save(context.Background(), "ana", "$2a$hash", "CL")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateGoals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM usuarios WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM objetivos WHERE id_usuario = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objetivos")).
		WithArgs(int64(1), 0, "estudiar").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objetivos")).
		WithArgs(int64(1), 1, "dormir bien").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateGoals(context.Background(), 1, []string{"estudiar", "dormir bien"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateGoals_UserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM usuarios WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.UpdateGoals(context.Background(), 99, []string{"estudiar"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateGoals_InsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM objetivos")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objetivos")).
		WithArgs(int64(1), 0, "estudiar").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.UpdateGoals(context.Background(), 1, []string{"estudiar", "leer"})
	assert.EqualError(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateGoals_CommitFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM objetivos")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.UpdateGoals(context.Background(), 1, nil)
	assert.EqualError(t, err, "commit failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateGoals_UsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM objetivos")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO objetivos")).
		WithArgs(int64(1), 0, "leer").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewUserWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	err = repo.UpdateGoals(context.Background(), 1, []string{"leer"})
	require.NoError(t, err)

	// the repository must leave the ambient transaction open
	assert.NoError(t, mock.ExpectationsWereMet())
}
