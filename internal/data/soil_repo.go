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

// SoilRepo provides database operations for soil records.
//
// Writes are ownership-scoped: Update and Delete match both id and
// admin_id, so an id owned by a different admin reads as not found.
type SoilRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSoilRepo creates a new SoilRepo with real time provider.
func NewSoilRepo(db *sql.DB) *SoilRepo {
	return &SoilRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewSoilRepoWithTimeProvider creates a new SoilRepo with a custom time provider (useful for tests).
func NewSoilRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *SoilRepo {
	return &SoilRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	soilSelectColumns = `id, soil_type, characteristics, best_crops, ph_level, admin_id, created_at, updated_at`

	soilGetByIDQuery = `
		SELECT ` + soilSelectColumns + `
		FROM soil_data
		WHERE id = $1`

	soilListQuery = `
		SELECT ` + soilSelectColumns + `
		FROM soil_data
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	soilListByAdminQuery = `
		SELECT ` + soilSelectColumns + `
		FROM soil_data
		WHERE admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
)

// Create inserts a new soil record owned by adminID.
func (r *SoilRepo) Create(
	ctx context.Context,
	adminID string,
	req *model.CreateSoilRecordRequest,
) (*model.SoilRecord, error) {
	if req == nil {
		return nil, errors.New("create soil record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adminID) == "" {
		return nil, errors.New("admin id is required")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.SoilRecord
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO soil_data (soil_type, characteristics, best_crops, ph_level, admin_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+soilSelectColumns,
			strings.TrimSpace(req.SoilType),
			strings.TrimSpace(req.Characteristics),
			strings.TrimSpace(req.BestCrops),
			strings.TrimSpace(req.PHLevel),
			adminID,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SoilRecord])
		return err
	}); err != nil {
		return nil, AccessErr("soil_data", "create", err)
	}
	return &out, nil
}

// GetByID retrieves a soil record by ID.
func (r *SoilRepo) GetByID(ctx context.Context, id string) (*model.SoilRecord, error) {
	var rec model.SoilRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, soilGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		rec, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SoilRecord])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSoilRecordNotFound
		}
		return nil, AccessErr("soil_data", "get", err)
	}
	return &rec, nil
}

// List retrieves soil records with pagination, newest first. Results do
// not depend on the caller.
func (r *SoilRepo) List(ctx context.Context, limit, offset int) ([]*model.SoilRecord, error) {
	return r.listByQuery(ctx, soilListQuery, normalizeLimit(limit), normalizeOffset(offset))
}

// ListByAdmin retrieves soil records owned by adminID with pagination.
func (r *SoilRepo) ListByAdmin(
	ctx context.Context,
	adminID string,
	limit, offset int,
) ([]*model.SoilRecord, error) {
	return r.listByQuery(ctx, soilListByAdminQuery, adminID, normalizeLimit(limit), normalizeOffset(offset))
}

// Update updates fields of a soil record owned by adminID and stamps
// updated_at.
func (r *SoilRepo) Update(
	ctx context.Context,
	id, adminID string,
	req *model.UpdateSoilRecordRequest,
) (*model.SoilRecord, error) {
	if req == nil {
		return nil, errors.New("update soil record request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.SoilRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, id, adminID)
		query := "UPDATE soil_data SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)-1) +
			" AND admin_id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + soilSelectColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SoilRecord])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSoilRecordNotFound
		}
		return nil, AccessErr("soil_data", "update", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a soil record.
func (r *SoilRepo) buildUpdateClause(req *model.UpdateSoilRecordRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.SoilType != nil {
		setParts = append(setParts, fmt.Sprintf("soil_type = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.SoilType))
	}
	if req.Characteristics != nil {
		setParts = append(setParts, fmt.Sprintf("characteristics = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Characteristics))
	}
	if req.BestCrops != nil {
		setParts = append(setParts, fmt.Sprintf("best_crops = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.BestCrops))
	}
	if req.PHLevel != nil {
		setParts = append(setParts, fmt.Sprintf("ph_level = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.PHLevel))
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete deletes a soil record owned by adminID. Returns false when no
// owned row matched.
func (r *SoilRepo) Delete(ctx context.Context, id, adminID string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM soil_data WHERE id = $1 AND admin_id = $2`, id, adminID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, AccessErr("soil_data", "delete", err)
	}
	return rows > 0, nil
}

func (r *SoilRepo) listByQuery(ctx context.Context, q string, args ...any) ([]*model.SoilRecord, error) {
	var rowsOut []model.SoilRecord
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SoilRecord])
		return err
	}); err != nil {
		return nil, AccessErr("soil_data", "list", err)
	}

	res := make([]*model.SoilRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
