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

func newSoilHandlers(t *testing.T) (*SoilHandlers, *mocks.MockSoilRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSoilRepository(ctrl)
	svc, err := service.NewSoilService(service.SoilServiceOptions{Repo: repo})
	require.NoError(t, err)
	return &SoilHandlers{Svc: svc}, repo
}

func TestSoilHandlers_Create(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := adminSession()
	req := testutil.NewSoilRequest().Build()

	repo.EXPECT().
		Create(gomock.Any(), session.PrincipalID, gomock.Any()).
		Return(&model.SoilRecord{ID: "soil-1", SoilType: req.SoilType, AdminID: session.PrincipalID}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.Create(rec, newSessionRequest(http.MethodPost, "/api/admin/soil", body, session))

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "soil-1", payload["id"])
	assert.Equal(t, session.PrincipalID, payload["adminId"])
}

func TestSoilHandlers_Create_ValidationError(t *testing.T) {
	h, _ := newSoilHandlers(t)
	session := adminSession()

	body := `{"soilType":"","characteristics":"x","bestCrops":"y","phLevel":"7"}`
	rec := httptest.NewRecorder()
	h.Create(rec, newSessionRequest(http.MethodPost, "/api/admin/soil", []byte(body), session))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "validation_failed", payload["error"])
}

func TestSoilHandlers_Create_NoSession(t *testing.T) {
	h, _ := newSoilHandlers(t)

	rec := httptest.NewRecorder()
	h.Create(rec, newSessionRequest(http.MethodPost, "/api/admin/soil", []byte(`{}`), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSoilHandlers_List(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := farmerSession()

	repo.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.SoilRecord{
		{ID: "soil-1", SoilType: "Alluvial"},
		{ID: "soil-2", SoilType: "Black"},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, newSessionRequest(http.MethodGet, "/api/soil", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	records, ok := payload["soil"].([]any)
	require.True(t, ok)
	assert.Len(t, records, 2)
	assert.Equal(t, float64(50), payload["limit"])
}

func TestSoilHandlers_List_QueryFilter(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := farmerSession()

	repo.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.SoilRecord{
		{ID: "soil-1", SoilType: "Alluvial", BestCrops: "Rice, Wheat"},
		{ID: "soil-2", SoilType: "Black", BestCrops: "Cotton"},
	}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, newSessionRequest(http.MethodGet, "/api/soil?q=cotton", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	records, ok := payload["soil"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	first, _ := records[0].(map[string]any)
	assert.Equal(t, "soil-2", first["id"])
}

func TestSoilHandlers_ListOwn_ScopesToAdmin(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := adminSession()

	repo.EXPECT().
		ListByAdmin(gomock.Any(), session.PrincipalID, 50, 0).
		Return([]*model.SoilRecord{{ID: "soil-1", AdminID: session.PrincipalID}}, nil)

	rec := httptest.NewRecorder()
	h.ListOwn(rec, newSessionRequest(http.MethodGet, "/api/admin/soil", nil, session))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSoilHandlers_GetByID_NotFound(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := farmerSession()

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrSoilRecordNotFound)

	r := newSessionRequest(http.MethodGet, "/api/soil/missing", nil, session)
	r.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.GetByID(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "soil_record_not_found", payload["error"])
}

func TestSoilHandlers_Update_OwnershipReadsAsNotFound(t *testing.T) {
	h, repo := newSoilHandlers(t)
	session := adminSession()

	repo.EXPECT().
		Update(gomock.Any(), "soil-1", session.PrincipalID, gomock.Any()).
		Return(nil, data.ErrSoilRecordNotFound)

	body := `{"characteristics":"updated"}`
	r := newSessionRequest(http.MethodPut, "/api/admin/soil/soil-1", []byte(body), session)
	r.SetPathValue("id", "soil-1")
	rec := httptest.NewRecorder()
	h.Update(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSoilHandlers_Update_EmptyRequest(t *testing.T) {
	h, _ := newSoilHandlers(t)
	session := adminSession()

	r := newSessionRequest(http.MethodPut, "/api/admin/soil/soil-1", []byte(`{}`), session)
	r.SetPathValue("id", "soil-1")
	rec := httptest.NewRecorder()
	h.Update(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "validation_failed", payload["error"])
}

func TestSoilHandlers_Delete(t *testing.T) {
	tests := []struct {
		name       string
		deleted    bool
		wantStatus int
	}{
		{"owned record deleted", true, http.StatusOK},
		{"missing or foreign record", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newSoilHandlers(t)
			session := adminSession()

			repo.EXPECT().
				Delete(gomock.Any(), "soil-1", session.PrincipalID).
				Return(tt.deleted, nil)

			r := newSessionRequest(http.MethodDelete, "/api/admin/soil/soil-1", nil, session)
			r.SetPathValue("id", "soil-1")
			rec := httptest.NewRecorder()
			h.Delete(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
