package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/testutil"
)

func soilCropsUpdate(crops string) model.UpdateSoilRecordRequest {
	return model.UpdateSoilRecordRequest{BestCrops: &crops}
}

func TestSoilRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewSoilRepo(db)
		adminID := testutil.CreateTestAdmin(t, db)

		// create
		req := testutil.NewSoilRequest().WithSoilType("Black").Build()
		rec, err := repo.Create(ctx, adminID, req)
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID)
		assert.Equal(t, "Black", rec.SoilType)
		assert.Equal(t, adminID, rec.AdminID)
		assert.NotZero(t, rec.CreatedAt)
		assert.Nil(t, rec.UpdatedAt)

		// get by id
		got, err := repo.GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.SoilType, got.SoilType)

		// list
		lst, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		// list by admin
		own, err := repo.ListByAdmin(ctx, adminID, 10, 0)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, rec.ID, own[0].ID)

		// update stamps updated_at
		upd := soilCropsUpdate("Cotton, Soybean")
		updated, err := repo.Update(ctx, rec.ID, adminID, &upd)
		require.NoError(t, err)
		assert.Equal(t, "Cotton, Soybean", updated.BestCrops)
		require.NotNil(t, updated.UpdatedAt)

		// delete
		deleted, err := repo.Delete(ctx, rec.ID, adminID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, rec.ID)
		require.ErrorIs(t, err, ErrSoilRecordNotFound)
	})
}

func TestSoilRepo_OwnershipScoping(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewSoilRepo(db)
		owner := testutil.CreateTestAdmin(t, db)
		other := testutil.CreateTestAdmin(t, db)

		rec, err := repo.Create(ctx, owner, testutil.NewSoilRequest().Build())
		require.NoError(t, err)

		// Every record is visible in the unfiltered list regardless of owner.
		all, err := repo.List(ctx, 50, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 1)

		// Scoped list excludes records owned by someone else.
		otherOwn, err := repo.ListByAdmin(ctx, other, 50, 0)
		require.NoError(t, err)
		assert.Empty(t, otherOwn)

		// Writes by a non-owner read as not found.
		upd := soilCropsUpdate("Maize")
		_, err = repo.Update(ctx, rec.ID, other, &upd)
		require.ErrorIs(t, err, ErrSoilRecordNotFound)

		deleted, err := repo.Delete(ctx, rec.ID, other)
		require.NoError(t, err)
		assert.False(t, deleted)

		// The owner still can.
		deleted, err = repo.Delete(ctx, rec.ID, owner)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}

func TestSoilRepo_UpdateValidation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewSoilRepo(db)
		adminID := testutil.CreateTestAdmin(t, db)

		rec, err := repo.Create(ctx, adminID, testutil.NewSoilRequest().Build())
		require.NoError(t, err)

		// empty update rejected before touching the database
		empty := model.UpdateSoilRecordRequest{}
		_, err = repo.Update(ctx, rec.ID, adminID, &empty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one field must be updated")

		var dae *DataAccessError
		assert.False(t, errors.As(err, &dae))
	})
}
