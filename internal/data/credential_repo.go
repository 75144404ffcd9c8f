package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soilfarming/soil-agent/internal/data/pgxutil"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// Credential repository sentinels.
var (
	ErrCredentialNotFound    = errors.New("credential not found")
	ErrCredentialEmailExists = errors.New("credential email already exists")
)

// Credential is a stored email/password-hash pair for the built-in
// identity provider. The hash is bcrypt and never leaves the auth adapter.
type Credential struct {
	PrincipalID  string    `db:"principal_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// CredentialRepo provides database operations for password credentials.
type CredentialRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCredentialRepo creates a new CredentialRepo with real time provider.
func NewCredentialRepo(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const credentialSelectColumns = `principal_id, email, password_hash, created_at`

// Create stores a new credential row.
func (r *CredentialRepo) Create(ctx context.Context, cred Credential) error {
	if cred.PrincipalID == "" || cred.Email == "" || cred.PasswordHash == "" {
		return errors.New("principal id, email, and password hash are required")
	}

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO credentials (principal_id, email, password_hash, created_at)
			VALUES ($1, $2, $3, $4)`,
			cred.PrincipalID,
			model.NormalizeEmail(cred.Email),
			cred.PasswordHash,
			r.timeProvider.Now().UTC(),
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrCredentialEmailExists
		}
		return AccessErr("credentials", "create", err)
	}
	return nil
}

// GetByEmail retrieves a credential by normalized email.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+credentialSelectColumns+` FROM credentials WHERE email = $1`,
			model.NormalizeEmail(email),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		cred, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[Credential])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, AccessErr("credentials", "get", err)
	}
	return &cred, nil
}
