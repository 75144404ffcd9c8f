package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/mocks"
	"github.com/soilfarming/soil-agent/internal/service"
	"github.com/soilfarming/soil-agent/internal/testutil"
)

func newDistributorHandlers(t *testing.T) (*DistributorHandlers, *mocks.MockDistributorRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDistributorRepository(ctrl)
	svc, err := service.NewDistributorService(service.DistributorServiceOptions{Repo: repo})
	require.NoError(t, err)
	return &DistributorHandlers{Svc: svc}, repo
}

func TestDistributorHandlers_Create(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := adminSession()
	req := testutil.NewDistributorRequest().Build()

	repo.EXPECT().
		Create(gomock.Any(), session.PrincipalID, gomock.Any()).
		Return(&model.DistributorRecord{
			ID:      "dist-1",
			Name:    req.Name,
			Type:    model.DistributorTypePrivate,
			AdminID: session.PrincipalID,
		}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.Create(rec, newSessionRequest(http.MethodPost, "/api/admin/distributors", body, session))

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "dist-1", payload["id"])
	assert.Equal(t, "Private", payload["type"])
}

func TestDistributorHandlers_Create_InvalidType(t *testing.T) {
	h, _ := newDistributorHandlers(t)
	session := adminSession()

	body := `{"name":"X","contact":"1","location":"Pune","type":"Cooperative","products":"Seeds"}`
	rec := httptest.NewRecorder()
	h.Create(rec, newSessionRequest(http.MethodPost, "/api/admin/distributors", []byte(body), session))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "validation_failed", payload["error"])
}

func TestDistributorHandlers_List_TypeFilter(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := farmerSession()

	repo.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.DistributorRecord{
		{ID: "dist-1", Name: "GreenGrow", Type: model.DistributorTypePrivate},
		{ID: "dist-2", Name: "State Agro Board", Type: model.DistributorTypeGovernment},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, newSessionRequest(http.MethodGet, "/api/distributors?type=government", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	records, ok := payload["distributors"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	first, _ := records[0].(map[string]any)
	assert.Equal(t, "dist-2", first["id"])
}

func TestDistributorHandlers_List_TypeAll(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := farmerSession()

	repo.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.DistributorRecord{
		{ID: "dist-1", Type: model.DistributorTypePrivate},
		{ID: "dist-2", Type: model.DistributorTypeGovernment},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, newSessionRequest(http.MethodGet, "/api/distributors?type=all", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	records, ok := payload["distributors"].([]any)
	require.True(t, ok)
	assert.Len(t, records, 2)
}

func TestDistributorHandlers_List_InvalidTypeFilter(t *testing.T) {
	h, _ := newDistributorHandlers(t)
	session := farmerSession()

	rec := httptest.NewRecorder()
	h.List(rec, newSessionRequest(http.MethodGet, "/api/distributors?type=Cooperative", nil, session))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "invalid_filter", payload["error"])
}

func TestDistributorHandlers_ListOwn_ScopesToAdmin(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := adminSession()

	repo.EXPECT().
		ListByAdmin(gomock.Any(), session.PrincipalID, 50, 0).
		Return([]*model.DistributorRecord{{ID: "dist-1", AdminID: session.PrincipalID}}, nil)

	rec := httptest.NewRecorder()
	h.ListOwn(rec, newSessionRequest(http.MethodGet, "/api/admin/distributors", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDistributorHandlers_GetByID_NotFound(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := farmerSession()

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrDistributorNotFound)

	r := newSessionRequest(http.MethodGet, "/api/distributors/missing", nil, session)
	r.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.GetByID(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "distributor_not_found", payload["error"])
}

func TestDistributorHandlers_Update_OwnershipReadsAsNotFound(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := adminSession()

	repo.EXPECT().
		Update(gomock.Any(), "dist-1", session.PrincipalID, gomock.Any()).
		Return(nil, data.ErrDistributorNotFound)

	body := `{"contact":"updated"}`
	r := newSessionRequest(http.MethodPut, "/api/admin/distributors/dist-1", []byte(body), session)
	r.SetPathValue("id", "dist-1")
	rec := httptest.NewRecorder()
	h.Update(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDistributorHandlers_Delete_NotFound(t *testing.T) {
	h, repo := newDistributorHandlers(t)
	session := adminSession()

	repo.EXPECT().
		Delete(gomock.Any(), "dist-1", session.PrincipalID).
		Return(false, nil)

	r := newSessionRequest(http.MethodDelete, "/api/admin/distributors/dist-1", nil, session)
	r.SetPathValue("id", "dist-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
