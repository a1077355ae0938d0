package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDemographicService is a mock implementation of the DemographicService interface
type MockDemographicService struct {
	mock.Mock
}

func (m *MockDemographicService) Provinces(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDemographicService) Cities(ctx context.Context, province string) ([]string, error) {
	args := m.Called(ctx, province)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDemographicService) Districts(ctx context.Context, province, city string) ([]string, error) {
	args := m.Called(ctx, province, city)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDemographicService) Population(ctx context.Context, f models.PopulationFilter, page, pageSize int) (*models.PopulationPage, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PopulationPage), args.Error(1)
}

func (m *MockDemographicService) AgeDistribution(ctx context.Context, f models.PopulationFilter) (*models.AgeDistribution, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AgeDistribution), args.Error(1)
}

func TestDemographicHandler_Lists(t *testing.T) {
	tests := []struct {
		name           string
		handler        func(h *DemographicHandler) gin.HandlerFunc
		query          url.Values
		setupMock      func(m *MockDemographicService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name:    "provinces",
			handler: func(h *DemographicHandler) gin.HandlerFunc { return h.Provinces },
			setupMock: func(m *MockDemographicService) {
				m.On("Provinces", mock.Anything).Return([]string{"경기도", "서울특별시"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"경기도", "서울특별시"},
		},
		{
			name:           "cities without province",
			handler:        func(h *DemographicHandler) gin.HandlerFunc { return h.Cities },
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'province'"},
		},
		{
			name:    "cities",
			handler: func(h *DemographicHandler) gin.HandlerFunc { return h.Cities },
			query:   url.Values{"province": {"서울특별시"}},
			setupMock: func(m *MockDemographicService) {
				m.On("Cities", mock.Anything, "서울특별시").Return([]string{"강남구"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"강남구"},
		},
		{
			name:           "districts without city",
			handler:        func(h *DemographicHandler) gin.HandlerFunc { return h.Districts },
			query:          url.Values{"province": {"서울특별시"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameters 'province' and 'city'"},
		},
		{
			name:    "districts service error",
			handler: func(h *DemographicHandler) gin.HandlerFunc { return h.Districts },
			query:   url.Values{"province": {"서울특별시"}, "city": {"강남구"}},
			setupMock: func(m *MockDemographicService) {
				m.On("Districts", mock.Anything, "서울특별시", "강남구").Return([]string(nil), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockDemographicService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			handler := NewDemographicHandler(mockSvc)

			w := serve(tt.handler(handler), http.MethodGet, "/api/demographics", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, toJSON(t, tt.expectedBody), w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestDemographicHandler_Population(t *testing.T) {
	date := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	result := &models.PopulationPage{
		Items:      []models.PopulationRecord{{AdministrativeCode: "1168051000", ReferenceDate: date, City: "강남구", TotalPopulation: 20000}},
		Pagination: models.Pagination{Page: 1, PageSize: 20, TotalCount: 1, TotalPages: 1},
	}

	tests := []struct {
		name           string
		query          url.Values
		setupMock      func(m *MockDemographicService)
		expectedStatus int
		expectedBody   any
	}{
		{
			name:           "invalid reference date",
			query:          url.Values{"reference_date": {"20251231"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid reference_date format, expected YYYY-MM-DD"},
		},
		{
			name:  "filtered by date",
			query: url.Values{"city": {"강남구"}, "reference_date": {"2025-12-31"}},
			setupMock: func(m *MockDemographicService) {
				m.On("Population", mock.Anything, models.PopulationFilter{City: "강남구", ReferenceDate: &date}, 1, 0).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   result,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockDemographicService)
			if tt.setupMock != nil {
				tt.setupMock(mockSvc)
			}
			handler := NewDemographicHandler(mockSvc)

			w := serve(handler.Population, http.MethodGet, "/api/demographics/population", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, toJSON(t, tt.expectedBody), w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestDemographicHandler_AgeDistribution(t *testing.T) {
	dist := &models.AgeDistribution{}
	dist.Add(models.PopulationRecord{Male: [11]int64{0, 0, 100}, Female: [11]int64{0, 0, 120}})

	mockSvc := new(MockDemographicService)
	mockSvc.On("AgeDistribution", mock.Anything, models.PopulationFilter{Province: "서울특별시", District: "역삼"}).Return(dist, nil)
	handler := NewDemographicHandler(mockSvc)

	w := serve(handler.AgeDistribution, http.MethodGet, "/api/demographics/age-distribution", url.Values{"province": {"서울특별시"}, "district": {"역삼"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, toJSON(t, dist), w.Body.String())
	mockSvc.AssertExpectations(t)
}
