package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStoreService is a mock implementation of the StoreService interface
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) Nearby(ctx context.Context, lat, lon, radiusKm float64, businessType string, limit int) ([]models.StoreWithDistance, error) {
	args := m.Called(ctx, lat, lon, radiusKm, businessType, limit)
	return args.Get(0).([]models.StoreWithDistance), args.Error(1)
}

func (m *MockStoreService) ByRegion(ctx context.Context, f models.StoreFilter, page, pageSize int) (*models.StorePage, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StorePage), args.Error(1)
}

func (m *MockStoreService) Statistics(ctx context.Context, province, city string, topN int) (*models.StoreStatistics, error) {
	args := m.Called(ctx, province, city, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreStatistics), args.Error(1)
}

func TestStoreHandler_Nearby(t *testing.T) {
	stores := []models.StoreWithDistance{
		{
			StoreRecord: models.StoreRecord{
				StoreNumber:    "MA010120220800001234",
				StoreName:      "스타벅스 강남역점",
				BusinessName:   "카페",
				Latitude:       37.4990,
				Longitude:      127.0276,
				BusinessStatus: models.BusinessStatusOpen,
			},
			DistanceKm: 0.12,
		},
	}

	tests := []struct {
		name           string
		query          url.Values
		setupMock      func(m *MockStoreService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name:           "missing coordinates",
			query:          url.Values{"lat": {"37.4979"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude format",
			query:          url.Values{"lat": {"north"}, "lon": {"127.0276"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid latitude format"},
		},
		{
			name:           "invalid radius format",
			query:          url.Values{"lat": {"37.4979"}, "lon": {"127.0276"}, "radius_km": {"far"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid radius_km format"},
		},
		{
			name:  "default radius",
			query: url.Values{"lat": {"37.4979"}, "lon": {"127.0276"}},
			setupMock: func(m *MockStoreService) {
				m.On("Nearby", mock.Anything, 37.4979, 127.0276, 1.0, "", 0).Return(stores, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   stores,
		},
		{
			name:  "all parameters",
			query: url.Values{"lat": {"37.4979"}, "lon": {"127.0276"}, "radius_km": {"0.5"}, "business_type": {"카페"}, "limit": {"10"}},
			setupMock: func(m *MockStoreService) {
				m.On("Nearby", mock.Anything, 37.4979, 127.0276, 0.5, "카페", 10).Return([]models.StoreWithDistance{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.StoreWithDistance{},
		},
		{
			name:  "coordinates out of range",
			query: url.Values{"lat": {"95"}, "lon": {"127.0276"}},
			setupMock: func(m *MockStoreService) {
				m.On("Nearby", mock.Anything, 95.0, 127.0276, 1.0, "", 0).
					Return([]models.StoreWithDistance(nil), &models.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid latitude: must be between -90 and 90"},
		},
		{
			name:  "storage unavailable",
			query: url.Values{"lat": {"37.4979"}, "lon": {"127.0276"}},
			setupMock: func(m *MockStoreService) {
				m.On("Nearby", mock.Anything, 37.4979, 127.0276, 1.0, "", 0).
					Return([]models.StoreWithDistance(nil), fmt.Errorf("service: failed: %w", models.ErrStorageUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   gin.H{"error": "storage unavailable"},
		},
		{
			name:  "service error",
			query: url.Values{"lat": {"37.4979"}, "lon": {"127.0276"}},
			setupMock: func(m *MockStoreService) {
				m.On("Nearby", mock.Anything, 37.4979, 127.0276, 1.0, "", 0).Return([]models.StoreWithDistance(nil), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockStoreService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			handler := NewStoreHandler(mockSvc)

			w := serve(handler.Nearby, http.MethodGet, "/api/stores/nearby", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, toJSON(t, tt.expectedBody), w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestStoreHandler_ByRegion(t *testing.T) {
	filter := models.StoreFilter{Province: "서울특별시", City: "강남구", District: "역삼", BusinessType: "카페"}
	page := &models.StorePage{
		Items:      []models.StoreRecord{{StoreNumber: "1", StoreName: "가게"}},
		Pagination: models.Pagination{Page: 2, PageSize: 1, TotalCount: 3, TotalPages: 3},
	}

	tests := []struct {
		name           string
		query          url.Values
		setupMock      func(m *MockStoreService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name:           "invalid page",
			query:          url.Values{"page": {"two"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid page format"},
		},
		{
			name: "filters and paging forwarded",
			query: url.Values{
				"province": {"서울특별시"}, "city": {"강남구"}, "district": {"역삼"}, "business_type": {"카페"},
				"page": {"2"}, "pageSize": {"1"},
			},
			setupMock: func(m *MockStoreService) {
				m.On("ByRegion", mock.Anything, filter, 2, 1).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   page,
		},
		{
			name:  "defaults",
			query: url.Values{},
			setupMock: func(m *MockStoreService) {
				m.On("ByRegion", mock.Anything, models.StoreFilter{}, 1, 0).Return(&models.StorePage{Items: []models.StoreRecord{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &models.StorePage{Items: []models.StoreRecord{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockStoreService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			handler := NewStoreHandler(mockSvc)

			w := serve(handler.ByRegion, http.MethodGet, "/api/stores/region", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, toJSON(t, tt.expectedBody), w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestStoreHandler_Statistics(t *testing.T) {
	stats := &models.StoreStatistics{
		TotalStores:    100,
		ByBusinessType: []models.BusinessTypeStat{{BusinessName: "카페", Count: 40, Percentage: 40}},
		ByRegion:       []models.RegionStat{{Region: "강남구", Count: 100}},
	}

	mockSvc := new(MockStoreService)
	mockSvc.On("Statistics", mock.Anything, "서울특별시", "", 5).Return(stats, nil)
	handler := NewStoreHandler(mockSvc)

	w := serve(handler.Statistics, http.MethodGet, "/api/stores/statistics", url.Values{"province": {"서울특별시"}, "top": {"5"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, toJSON(t, stats), w.Body.String())
	mockSvc.AssertExpectations(t)
}
