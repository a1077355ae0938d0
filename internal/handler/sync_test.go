package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSyncService is a mock implementation of the SyncService interface
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncAll(ctx context.Context) (*models.SyncSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncSummary), args.Error(1)
}

func (m *MockSyncService) SyncRegion(ctx context.Context, provinceCode, subRegionCode string) (*models.SyncSummary, error) {
	args := m.Called(ctx, provinceCode, subRegionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SyncSummary), args.Error(1)
}

func TestSyncHandler_Sync(t *testing.T) {
	summary := &models.SyncSummary{
		RunID:        "run-1",
		SyncedCount:  120,
		TotalFetched: 125,
		FailedCount:  5,
		Regions:      []models.SyncRegionResult{{ProvinceCode: "11", SubRegionCode: "11680", Fetched: 125, Synced: 120, Failed: 5}},
	}

	tests := []struct {
		name           string
		query          url.Values
		setupMock      func(m *MockSyncService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name:  "single region",
			query: url.Values{"province_code": {"11"}, "sub_region_code": {"11680"}},
			setupMock: func(m *MockSyncService) {
				m.On("SyncRegion", mock.Anything, "11", "11680").Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   summary,
		},
		{
			name:  "all configured regions",
			query: url.Values{},
			setupMock: func(m *MockSyncService) {
				m.On("SyncAll", mock.Anything).Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   summary,
		},
		{
			name:           "sub-region without province",
			query:          url.Values{"sub_region_code": {"11680"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "sub_region_code requires province_code"},
		},
		{
			name:  "sync already running",
			query: url.Values{"province_code": {"11"}},
			setupMock: func(m *MockSyncService) {
				m.On("SyncRegion", mock.Anything, "11", "").Return(nil, models.ErrSyncInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "store sync already in progress"},
		},
		{
			name:  "storage lost mid-run",
			query: url.Values{},
			setupMock: func(m *MockSyncService) {
				m.On("SyncAll", mock.Anything).Return(summary, models.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   gin.H{"error": "storage unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSyncService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			handler := NewSyncHandler(mockSvc)

			w := serve(handler.Sync, http.MethodPost, "/api/stores/sync", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, toJSON(t, tt.expectedBody), w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
