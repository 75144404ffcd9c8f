package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soilfarming/soil-agent/internal/data/pgxutil"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// UserRepo provides database operations for user profiles.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	userSelectColumns = `id, email, name, role, created_at`

	userGetByIDQuery = `
		SELECT ` + userSelectColumns + `
		FROM users
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT ` + userSelectColumns + `
		FROM users
		WHERE email = $1`

	userListQuery = `
		SELECT ` + userSelectColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)

// Create inserts a new user profile. The profile id is the principal id
// issued by the identity provider, never generated here.
func (r *UserRepo) Create(ctx context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
	if req == nil {
		return nil, errors.New("create user profile request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.UserProfile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, email, name, role, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+userSelectColumns,
			req.ID,
			model.NormalizeEmail(req.Email),
			req.Name,
			req.Role,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserProfile])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrUserEmailExists
		}
		return nil, AccessErr("users", "create", err)
	}
	return &out, nil
}

// GetByID retrieves a user profile by principal id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	return r.getByQuery(ctx, userGetByIDQuery, id)
}

// GetByEmail retrieves a user profile by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, model.NormalizeEmail(email))
}

// List retrieves user profiles with pagination.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.UserProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.UserProfile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserProfile])
		return err
	}); err != nil {
		return nil, AccessErr("users", "list", err)
	}

	res := make([]*model.UserProfile, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *UserRepo) getByQuery(ctx context.Context, q string, arg any) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		profile, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserProfile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, AccessErr("users", "get", err)
	}
	return &profile, nil
}
