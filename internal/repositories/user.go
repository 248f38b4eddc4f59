package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
)

// uniqueViolation is the SQLSTATE Postgres reports for a UNIQUE constraint breach.
const uniqueViolation = "23505"

// UserReadRepository reads users through the request-scoped transaction when
// one is present, so a request never holds more than one pooled connection.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with exactly this username, or nil when
// there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, usuario, password, pais, fecha_registro
		FROM usuarios
		WHERE usuario = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns the user with this id, or nil when there is none.
// Goals are read together with the record on every call.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, usuario, password, pais, fecha_registro
		FROM usuarios
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logger.Log.Debugw("query executed",
		"query", oneLine(query),
		"args", []any{arg},
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	goals, err := r.goals(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Goals = goals

	return &user, nil
}

func (r *UserReadRepository) goals(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT objetivo
		FROM objetivos
		WHERE id_usuario = $1
		ORDER BY posicion
	`

	goals := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &goals, query, userID)

	logger.Log.Debugw("query executed",
		"query", oneLine(query),
		"args", []any{userID},
		"result", len(goals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return goals, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and returns its id. A username that is already
// taken yields models.ErrDuplicateUsername.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, country string) (int64, error) {
	const query = `
		INSERT INTO usuarios (usuario, password, pais, fecha_registro)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, username, passwordHash, country)

	// the hash is never logged
	logger.Log.Debugw("query executed",
		"query", oneLine(query),
		"args", []any{username, country},
		"result", id,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return 0, models.ErrDuplicateUsername
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateGoals replaces the goals of a user, keeping their order. The whole
// replacement happens in one transaction: the request-scoped one when present,
// otherwise a transaction owned by this call.
func (r *UserWriteRepository) UpdateGoals(ctx context.Context, userID int64, goals []string) (err error) {
	const (
		lockQuery   = `SELECT id FROM usuarios WHERE id = $1 FOR UPDATE`
		deleteQuery = `DELETE FROM objetivos WHERE id_usuario = $1`
		insertQuery = `INSERT INTO objetivos (id_usuario, posicion, objetivo) VALUES ($1, $2, $3)`
	)

	defer func() {
		logger.Log.Debugw("goals updated",
			"user_id", userID,
			"result", len(goals),
			"error", err,
		)
	}()

	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx == nil {
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
				return
			}
			err = tx.Commit()
		}()
	}

	var id int64
	if err = tx.GetContext(ctx, &id, lockQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrUserNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, userID); err != nil {
		return err
	}

	for i, goal := range goals {
		if _, err = tx.ExecContext(ctx, insertQuery, userID, i, goal); err != nil {
			return err
		}
	}

	return nil
}
