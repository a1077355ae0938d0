package service

import (
	"context"
	"math"
	"testing"

	"market-insight-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStoreRepository is a mock implementation of the StoreRepository interface
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindOpenStoresInBox(ctx context.Context, box models.BoundingBox, businessType string) ([]models.StoreRecord, error) {
	args := m.Called(ctx, box, businessType)
	return args.Get(0).([]models.StoreRecord), args.Error(1)
}

func (m *MockStoreRepository) FindStoresByRegion(ctx context.Context, f models.StoreFilter, limit, offset int) ([]models.StoreRecord, error) {
	args := m.Called(ctx, f, limit, offset)
	return args.Get(0).([]models.StoreRecord), args.Error(1)
}

func (m *MockStoreRepository) CountStores(ctx context.Context, f models.StoreFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoreRepository) CountByBusinessType(ctx context.Context, f models.StoreFilter, limit int) ([]models.BusinessTypeStat, error) {
	args := m.Called(ctx, f, limit)
	return args.Get(0).([]models.BusinessTypeStat), args.Error(1)
}

func (m *MockStoreRepository) CountBySubRegion(ctx context.Context, f models.StoreFilter, limit int) ([]models.RegionStat, error) {
	args := m.Called(ctx, f, limit)
	return args.Get(0).([]models.RegionStat), args.Error(1)
}

// fakeStatsCache keeps statistics in memory
type fakeStatsCache struct {
	entries map[string]models.StoreStatistics
}

func (c *fakeStatsCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.entries[key]
	if ok {
		*dst.(*models.StoreStatistics) = v
	}
	return ok, nil
}

func (c *fakeStatsCache) SetJSON(ctx context.Context, key string, v any) error {
	c.entries[key] = *v.(*models.StoreStatistics)
	return nil
}

const (
	gangnamLat = 37.4979
	gangnamLon = 127.0276
)

// storeNorthOf places a store distanceKm due north of Gangnam station.
func storeNorthOf(number string, distanceKm float64) models.StoreRecord {
	return models.StoreRecord{
		StoreNumber:    number,
		StoreName:      "store " + number,
		BusinessName:   "카페",
		Latitude:       gangnamLat + distanceKm/(models.EarthRadiusKm*math.Pi/180),
		Longitude:      gangnamLon,
		BusinessStatus: models.BusinessStatusOpen,
	}
}

func TestStoreService_Nearby(t *testing.T) {
	fixtures := []models.StoreRecord{
		storeNorthOf("S4", 1.2),
		storeNorthOf("S2", 0.5),
		storeNorthOf("S5", 3.0),
		storeNorthOf("S1", 0.2),
		storeNorthOf("S3", 0.9),
	}

	mockRepo := new(MockStoreRepository)
	mockRepo.On("FindOpenStoresInBox", mock.Anything, mock.AnythingOfType("models.BoundingBox"), "").Return(fixtures, nil)
	service := NewStoreService(mockRepo, nil)

	results, err := service.Nearby(context.Background(), gangnamLat, gangnamLon, 1.0, "", 10)
	require.NoError(t, err)

	require.Len(t, results, 3)
	expected := []struct {
		number   string
		distance float64
	}{{"S1", 0.2}, {"S2", 0.5}, {"S3", 0.9}}
	for i, e := range expected {
		assert.Equal(t, e.number, results[i].StoreNumber)
		assert.InDelta(t, e.distance, results[i].DistanceKm, 1e-6)
	}
	mockRepo.AssertExpectations(t)
}

func TestStoreService_Nearby_BoundingBox(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("FindOpenStoresInBox", mock.Anything, mock.MatchedBy(func(box models.BoundingBox) bool {
		latDelta := 2.0 / 111.0
		return math.Abs(box.MaxLat-gangnamLat-latDelta) < 1e-9 &&
			math.Abs(gangnamLat-box.MinLat-latDelta) < 1e-9 &&
			box.MaxLon-gangnamLon > latDelta
	}), "카페").Return([]models.StoreRecord{}, nil)
	service := NewStoreService(mockRepo, nil)

	results, err := service.Nearby(context.Background(), gangnamLat, gangnamLon, 2.0, "카페", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_Nearby_Filters(t *testing.T) {
	closed := storeNorthOf("C1", 0.1)
	closed.BusinessStatus = models.BusinessStatusClosed
	fixtures := []models.StoreRecord{closed, storeNorthOf("S1", 0.3), storeNorthOf("S2", 0.4), storeNorthOf("S3", 0.6)}

	tests := []struct {
		name        string
		lat         float64
		radius      float64
		limit       int
		expected    []string
		expectError bool
		callsRepo   bool
	}{
		{name: "invalid latitude", lat: 91, radius: 1, expectError: true},
		{name: "zero radius", lat: gangnamLat, radius: 0, expected: []string{}},
		{name: "negative radius", lat: gangnamLat, radius: -1, expected: []string{}},
		{name: "closed stores excluded", lat: gangnamLat, radius: 1, limit: 10, expected: []string{"S1", "S2", "S3"}, callsRepo: true},
		{name: "limit applied after ordering", lat: gangnamLat, radius: 1, limit: 2, expected: []string{"S1", "S2"}, callsRepo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStoreRepository)
			if tt.callsRepo {
				mockRepo.On("FindOpenStoresInBox", mock.Anything, mock.Anything, "").Return(fixtures, nil)
			}
			service := NewStoreService(mockRepo, nil)

			results, err := service.Nearby(context.Background(), tt.lat, gangnamLon, tt.radius, "", tt.limit)

			if tt.expectError {
				assert.True(t, models.IsValidation(err))
				return
			}
			require.NoError(t, err)
			numbers := []string{}
			for _, r := range results {
				numbers = append(numbers, r.StoreNumber)
				assert.LessOrEqual(t, r.DistanceKm, tt.radius)
			}
			assert.Equal(t, tt.expected, numbers)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStoreService_Nearby_RepositoryError(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("FindOpenStoresInBox", mock.Anything, mock.Anything, "").Return([]models.StoreRecord(nil), assert.AnError)
	service := NewStoreService(mockRepo, nil)

	_, err := service.Nearby(context.Background(), gangnamLat, gangnamLon, 1, "", 10)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStoreService_ByRegion(t *testing.T) {
	filter := models.StoreFilter{Province: "서울특별시", City: "강남구", BusinessType: "카페"}
	all := []models.StoreRecord{
		{StoreNumber: "1", StoreName: "가"}, {StoreNumber: "2", StoreName: "나"}, {StoreNumber: "3", StoreName: "다"},
		{StoreNumber: "4", StoreName: "라"}, {StoreNumber: "5", StoreName: "마"},
	}

	mockRepo := new(MockStoreRepository)
	mockRepo.On("CountStores", mock.Anything, filter).Return(int64(len(all)), nil)
	mockRepo.On("FindStoresByRegion", mock.Anything, filter, 2, 0).Return(all[0:2], nil)
	mockRepo.On("FindStoresByRegion", mock.Anything, filter, 2, 2).Return(all[2:4], nil)
	mockRepo.On("FindStoresByRegion", mock.Anything, filter, 2, 4).Return(all[4:], nil)
	service := NewStoreService(mockRepo, nil)

	var collected []models.StoreRecord
	for page := 1; page <= 3; page++ {
		result, err := service.ByRegion(context.Background(), filter, page, 2)
		require.NoError(t, err)
		assert.Equal(t, models.Pagination{Page: page, PageSize: 2, TotalCount: 5, TotalPages: 3}, result.Pagination)
		collected = append(collected, result.Items...)
	}
	assert.Equal(t, all, collected)

	result, err := service.ByRegion(context.Background(), filter, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, int64(5), result.Pagination.TotalCount)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "FindStoresByRegion", 3)
}

func TestStoreService_ByRegion_HugePage(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("CountStores", mock.Anything, models.StoreFilter{}).Return(int64(5), nil)
	service := NewStoreService(mockRepo, nil)

	page := math.MaxInt/20 + 2
	result, err := service.ByRegion(context.Background(), models.StoreFilter{}, page, 20)
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, models.Pagination{Page: page, PageSize: 20, TotalCount: 5, TotalPages: 1}, result.Pagination)
	mockRepo.AssertNotCalled(t, "FindStoresByRegion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreService_ByRegion_Defaults(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("CountStores", mock.Anything, models.StoreFilter{}).Return(int64(1), nil)
	mockRepo.On("FindStoresByRegion", mock.Anything, models.StoreFilter{}, defaultPageSize, 0).Return([]models.StoreRecord{{StoreNumber: "1"}}, nil)
	service := NewStoreService(mockRepo, nil)

	result, err := service.ByRegion(context.Background(), models.StoreFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, defaultPageSize, result.Pagination.PageSize)
	assert.Len(t, result.Items, 1)
}

func TestStoreService_Statistics(t *testing.T) {
	filter := models.StoreFilter{Province: "서울특별시"}
	mockRepo := new(MockStoreRepository)
	mockRepo.On("CountStores", mock.Anything, filter).Return(int64(200), nil).Once()
	mockRepo.On("CountByBusinessType", mock.Anything, filter, 2).Return([]models.BusinessTypeStat{
		{BusinessName: "카페", Count: 50},
		{BusinessName: "한식", Count: 30},
	}, nil).Once()
	mockRepo.On("CountBySubRegion", mock.Anything, filter, 2).Return([]models.RegionStat{
		{Region: "강남구", Count: 120},
		{Region: "마포구", Count: 80},
	}, nil).Once()

	cache := &fakeStatsCache{entries: map[string]models.StoreStatistics{}}
	service := NewStoreService(mockRepo, cache)

	stats, err := service.Statistics(context.Background(), "서울특별시", "", 2)
	require.NoError(t, err)

	assert.Equal(t, int64(200), stats.TotalStores)
	assert.Equal(t, []models.BusinessTypeStat{
		{BusinessName: "카페", Count: 50, Percentage: 25},
		{BusinessName: "한식", Count: 30, Percentage: 15},
	}, stats.ByBusinessType)
	assert.Equal(t, "강남구", stats.ByRegion[0].Region)

	cached, err := service.Statistics(context.Background(), "서울특별시", "", 2)
	require.NoError(t, err)
	assert.Equal(t, stats, cached)

	mockRepo.AssertExpectations(t)
}

func TestStoreService_Statistics_Error(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("CountStores", mock.Anything, models.StoreFilter{}).Return(int64(0), assert.AnError)
	service := NewStoreService(mockRepo, nil)

	_, err := service.Statistics(context.Background(), "", "", 0)
	assert.Error(t, err)
}
