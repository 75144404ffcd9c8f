package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/soilfarming/soil-agent/internal/data/pgxutil"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// DistributorRepo provides database operations for distributor records.
// Ownership semantics match SoilRepo: writes require both id and admin_id.
type DistributorRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewDistributorRepo creates a new DistributorRepo with real time provider.
func NewDistributorRepo(db *sql.DB) *DistributorRepo {
	return &DistributorRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewDistributorRepoWithTimeProvider creates a new DistributorRepo with a custom time provider.
func NewDistributorRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *DistributorRepo {
	return &DistributorRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	distributorSelectColumns = `id, name, contact, location, type, products, admin_id, created_at, updated_at`

	distributorGetByIDQuery = `
		SELECT ` + distributorSelectColumns + `
		FROM distributors
		WHERE id = $1`

	distributorListQuery = `
		SELECT ` + distributorSelectColumns + `
		FROM distributors
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	distributorListByAdminQuery = `
		SELECT ` + distributorSelectColumns + `
		FROM distributors
		WHERE admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
)

// Create inserts a new distributor record owned by adminID.
func (r *DistributorRepo) Create(
	ctx context.Context,
	adminID string,
	req *model.CreateDistributorRecordRequest,
) (*model.DistributorRecord, error) {
	if req == nil {
		return nil, errors.New("create distributor record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, errors.New("admin id is required")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.DistributorRecord
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO distributors (name, contact, location, type, products, admin_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+distributorSelectColumns,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Contact),
			strings.TrimSpace(req.Location),
			req.Type,
			strings.TrimSpace(req.Products),
			adminID,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DistributorRecord])
		return err
	}); err != nil {
		return nil, AccessErr("distributors", "create", err)
	}
	return &out, nil
}

// GetByID retrieves a distributor record by ID.
func (r *DistributorRepo) GetByID(ctx context.Context, id string) (*model.DistributorRecord, error) {
	var rec model.DistributorRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, distributorGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		rec, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DistributorRecord])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDistributorNotFound
		}
		return nil, AccessErr("distributors", "get", err)
	}
	return &rec, nil
}

// List retrieves distributor records with pagination, newest first.
// Results do not depend on the caller.
func (r *DistributorRepo) List(ctx context.Context, limit, offset int) ([]*model.DistributorRecord, error) {
	return r.listByQuery(ctx, distributorListQuery, normalizeLimit(limit), normalizeOffset(offset))
}

// ListByAdmin retrieves distributor records owned by adminID with pagination.
func (r *DistributorRepo) ListByAdmin(
	ctx context.Context,
	adminID string,
	limit, offset int,
) ([]*model.DistributorRecord, error) {
	return r.listByQuery(ctx, distributorListByAdminQuery, adminID, normalizeLimit(limit), normalizeOffset(offset))
}

// Update updates fields of a distributor record owned by adminID and
// stamps updated_at.
func (r *DistributorRepo) Update(
	ctx context.Context,
	id, adminID string,
	req *model.UpdateDistributorRecordRequest,
) (*model.DistributorRecord, error) {
	if req == nil {
		return nil, errors.New("update distributor record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.DistributorRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id, adminID)
		query := "UPDATE distributors SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)-1) +
			" AND admin_id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + distributorSelectColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DistributorRecord])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDistributorNotFound
		}
		return nil, AccessErr("distributors", "update", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a distributor record.
func (r *DistributorRepo) buildUpdateClause(req *model.UpdateDistributorRecordRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Contact != nil {
		setParts = append(setParts, fmt.Sprintf("contact = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Contact))
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Location))
	}
	if req.Type != nil {
		setParts = append(setParts, fmt.Sprintf("type = $%d", nextIdx()))
		args = append(args, *req.Type)
	}
	if req.Products != nil {
		setParts = append(setParts, fmt.Sprintf("products = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Products))
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete deletes a distributor record owned by adminID. Returns false
// when no owned row matched.
func (r *DistributorRepo) Delete(ctx context.Context, id, adminID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM distributors WHERE id = $1 AND admin_id = $2`, id, adminID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, AccessErr("distributors", "delete", err)
	}
	return rows > 0, nil
}

func (r *DistributorRepo) listByQuery(
	ctx context.Context,
	q string,
	args ...any,
) ([]*model.DistributorRecord, error) {
	var rowsOut []model.DistributorRecord
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.DistributorRecord])
		return err
	}); err != nil {
		return nil, AccessErr("distributors", "list", err)
	}

	res := make([]*model.DistributorRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
