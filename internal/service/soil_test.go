package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/mocks"
	"github.com/soilfarming/soil-agent/internal/testutil"
)

func TestNewSoilService_RequiredDependency(t *testing.T) {
	_, err := NewSoilService(SoilServiceOptions{})
	require.Error(t, err)
}

func TestSoilService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	req := testutil.NewSoilRequest().Build()
	expected := &model.SoilRecord{ID: "soil-1", SoilType: req.SoilType, AdminID: "admin-1"}

	repo.EXPECT().
		Create(ctx, "admin-1", req).
		Return(expected, nil)

	got, err := svc.Create(ctx, "admin-1", req)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestSoilService_Create_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	// Missing soil type never reaches the repository.
	req := testutil.NewSoilRequest().WithSoilType("").Build()
	_, err = svc.Create(context.Background(), "admin-1", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soilType")
}

func TestSoilService_List_AppliesQueryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	repo.EXPECT().
		List(ctx, 50, 0).
		Return(soilFixture(), nil)

	got, err := svc.List(ctx, SoilListOptions{Query: "cotton", Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSoilService_ListOwn_ScopesToAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	repo.EXPECT().
		ListByAdmin(ctx, "admin-1", 20, 0).
		Return(soilFixture(), nil)

	got, err := svc.ListOwn(ctx, "admin-1", SoilListOptions{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSoilService_Update_PassesOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	crops := "Cotton"
	req := &model.UpdateSoilRecordRequest{BestCrops: &crops}

	repo.EXPECT().
		Update(ctx, "soil-1", "admin-1", req).
		Return(nil, data.ErrSoilRecordNotFound)

	_, err = svc.Update(ctx, "soil-1", "admin-1", req)
	assert.ErrorIs(t, err, data.ErrSoilRecordNotFound)
}

func TestSoilService_Update_EmptyRequestRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "soil-1", "admin-1", &model.UpdateSoilRecordRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}

func TestSoilService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	repo.EXPECT().Delete(ctx, "soil-1", "admin-1").Return(true, nil)

	ok, err := svc.Delete(ctx, "soil-1", "admin-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSoilService_List_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := NewSoilService(SoilServiceOptions{Repo: repo})
	require.NoError(t, err)

	repoErr := errors.New("database connection failed")
	repo.EXPECT().List(gomock.Any(), 0, 0).Return(nil, repoErr)

	_, err = svc.List(context.Background(), SoilListOptions{})
	assert.ErrorIs(t, err, repoErr)
}
