package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
	errors2 "github.com/wso2/record-reconciliation-service/internal/system/errors"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

func TestMain(m *testing.M) {
	if err := log.Init("error"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// fakeReconciliationService is a test double for the reconciliation service.
type fakeReconciliationService struct {
	getByEmail   func(ctx context.Context, email string) (*model.UnifiedRecord, error)
	searchByName func(ctx context.Context, query string) ([]model.UnifiedRecord, error)
	sync         func(ctx context.Context, email string) (*model.SyncResult, error)
}

func (f *fakeReconciliationService) GetByEmail(ctx context.Context, email string) (*model.UnifiedRecord, error) {
	return f.getByEmail(ctx, email)
}

func (f *fakeReconciliationService) SearchByName(ctx context.Context, query string) ([]model.UnifiedRecord, error) {
	return f.searchByName(ctx, query)
}

func (f *fakeReconciliationService) Sync(ctx context.Context, email string) (*model.SyncResult, error) {
	return f.sync(ctx, email)
}

func TestHandleGetRecord_Success(t *testing.T) {
	svc := &fakeReconciliationService{
		getByEmail: func(ctx context.Context, email string) (*model.UnifiedRecord, error) {
			return &model.UnifiedRecord{
				Email:       email,
				Name:        "Anna Schmidt",
				Address:     "Hauptstr. 1",
				LastUpdated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				Metadata: model.Provenance{
					Sources: []model.Source{model.SourceA, model.SourceB},
					Fields:  map[string]model.FieldProvenance{},
				},
			}, nil
		},
	}
	h := NewRecordHandler(svc)

	recorder := httptest.NewRecorder()
	h.HandleGetRecord(recorder, httptest.NewRequest(http.MethodGet, "/records?email=anna@example.com", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body model.UnifiedRecord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "anna@example.com", body.Email)
	assert.Equal(t, "Anna Schmidt", body.Name)
}

func TestHandleGetRecord_MissingEmailParam(t *testing.T) {
	h := NewRecordHandler(&fakeReconciliationService{})

	recorder := httptest.NewRecorder()
	h.HandleGetRecord(recorder, httptest.NewRequest(http.MethodGet, "/records", nil))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, errors2.MISSING_QUERY_PARAM.Code, body["code"])
}

func TestHandleGetRecord_NotFound(t *testing.T) {
	svc := &fakeReconciliationService{
		getByEmail: func(ctx context.Context, email string) (*model.UnifiedRecord, error) {
			return nil, errors2.NewClientError(errors2.RECORD_NOT_FOUND, http.StatusNotFound)
		},
	}
	h := NewRecordHandler(svc)

	recorder := httptest.NewRecorder()
	h.HandleGetRecord(recorder, httptest.NewRequest(http.MethodGet, "/records?email=ghost@x.de", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, errors2.RECORD_NOT_FOUND.Code, body["code"])
}

func TestHandleGetRecord_ServerErrorHidesDetails(t *testing.T) {
	svc := &fakeReconciliationService{
		getByEmail: func(ctx context.Context, email string) (*model.UnifiedRecord, error) {
			return nil, errors2.NewServerError(errors2.MERGE_INPUTS_ABSENT, nil)
		},
	}
	h := NewRecordHandler(svc)

	recorder := httptest.NewRecorder()
	h.HandleGetRecord(recorder, httptest.NewRequest(http.MethodGet, "/records?email=anna@example.com", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["trace_id"])
}

func TestHandleSearchRecords_Success(t *testing.T) {
	svc := &fakeReconciliationService{
		searchByName: func(ctx context.Context, query string) ([]model.UnifiedRecord, error) {
			return []model.UnifiedRecord{
				{Email: "max@firma.de", Name: "Max Mustermann"},
			}, nil
		},
	}
	h := NewRecordHandler(svc)

	recorder := httptest.NewRecorder()
	h.HandleSearchRecords(recorder, httptest.NewRequest(http.MethodGet, "/records/search?name=Mustermann", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body []model.UnifiedRecord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "max@firma.de", body[0].Email)
}

func TestHandleSearchRecords_MissingNameParam(t *testing.T) {
	h := NewRecordHandler(&fakeReconciliationService{})

	recorder := httptest.NewRecorder()
	h.HandleSearchRecords(recorder, httptest.NewRequest(http.MethodGet, "/records/search", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleSyncCheck_Success(t *testing.T) {
	svc := &fakeReconciliationService{
		sync: func(ctx context.Context, email string) (*model.SyncResult, error) {
			return &model.SyncResult{
				Email:         email,
				Status:        model.SyncStatusInSync,
				Conflicts:     []model.FieldConflictEntry{},
				MatchedFields: []string{model.FieldEmail, model.FieldName},
			}, nil
		},
	}
	h := NewRecordHandler(svc)

	recorder := httptest.NewRecorder()
	h.HandleSyncCheck(recorder, httptest.NewRequest(http.MethodGet, "/sync?email=anna@example.com", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body model.SyncResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.SyncStatusInSync, body.Status)
	assert.Contains(t, body.MatchedFields, model.FieldEmail)
}

func TestHandleSyncCheck_MissingEmailParam(t *testing.T) {
	h := NewRecordHandler(&fakeReconciliationService{})

	recorder := httptest.NewRecorder()
	h.HandleSyncCheck(recorder, httptest.NewRequest(http.MethodGet, "/sync", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
