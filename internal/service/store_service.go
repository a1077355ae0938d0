package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"

	"market-insight-api/internal/metrics"
	"market-insight-api/internal/models"
)

const (
	defaultNearbyLimit = 50
	maxNearbyLimit     = 500
	defaultPageSize    = 20
	maxPageSize        = 100
	defaultTopN        = 10
	maxTopN            = 50
)

// StoreRepository is the read side of the store catalog
type StoreRepository interface {
	FindOpenStoresInBox(ctx context.Context, box models.BoundingBox, businessType string) ([]models.StoreRecord, error)
	FindStoresByRegion(ctx context.Context, f models.StoreFilter, limit, offset int) ([]models.StoreRecord, error)
	CountStores(ctx context.Context, f models.StoreFilter) (int64, error)
	CountByBusinessType(ctx context.Context, f models.StoreFilter, limit int) ([]models.BusinessTypeStat, error)
	CountBySubRegion(ctx context.Context, f models.StoreFilter, limit int) ([]models.RegionStat, error)
}

// StatsCache caches statistics responses
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
}

// StoreService answers proximity, region and statistics queries over open stores
type StoreService struct {
	repo  StoreRepository
	cache StatsCache
}

// NewStoreService creates a new store query service. cache may be nil.
func NewStoreService(repo StoreRepository, cache StatsCache) *StoreService {
	return &StoreService{repo: repo, cache: cache}
}

// Nearby returns open stores within radiusKm of (lat, lon), nearest first.
// A bounding box narrows candidates in storage; exact haversine distance decides membership.
func (s *StoreService) Nearby(ctx context.Context, lat, lon, radiusKm float64, businessType string, limit int) ([]models.StoreWithDistance, error) {
	center, err := models.NewCoordinates(lat, lon)
	if err != nil {
		return nil, err
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		return []models.StoreWithDistance{}, nil
	}
	if limit <= 0 {
		limit = defaultNearbyLimit
	}
	limit = min(limit, maxNearbyLimit)

	candidates, err := s.repo.FindOpenStoresInBox(ctx, center.BoundingBoxAround(radiusKm), businessType)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find stores near coordinates: %w", err)
	}

	results := make([]models.StoreWithDistance, 0, len(candidates))
	for _, store := range candidates {
		if store.BusinessStatus != models.BusinessStatusOpen {
			continue
		}
		coords, err := store.Coordinates()
		if err != nil {
			continue
		}
		if d := center.DistanceTo(coords); d <= radiusKm {
			results = append(results, models.StoreWithDistance{StoreRecord: store, DistanceKm: d})
		}
	}

	slices.SortStableFunc(results, func(a, b models.StoreWithDistance) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.StoreNumber, b.StoreNumber)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ByRegion returns one page of open stores ordered by name. Pages past the
// end are empty but still report the total count.
func (s *StoreService) ByRegion(ctx context.Context, f models.StoreFilter, page, pageSize int) (*models.StorePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	total, err := s.repo.CountStores(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count stores: %w", err)
	}

	result := &models.StorePage{
		Items:      []models.StoreRecord{},
		Pagination: models.NewPagination(page, pageSize, total),
	}

	offset, ok := result.Pagination.Offset()
	if !ok {
		return result, nil
	}

	items, err := s.repo.FindStoresByRegion(ctx, f, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find stores by region: %w", err)
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

// Statistics returns the top business types and sub-regions among open stores
func (s *StoreService) Statistics(ctx context.Context, province, city string, topN int) (*models.StoreStatistics, error) {
	if topN <= 0 {
		topN = defaultTopN
	}
	topN = min(topN, maxTopN)

	key := province + "|" + city + "|" + strconv.Itoa(topN)
	if s.cache != nil {
		var cached models.StoreStatistics
		found, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("statistics cache read failed")
		}
		if found {
			metrics.CacheResultsTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.CacheResultsTotal.WithLabelValues("miss").Inc()
	}

	f := models.StoreFilter{Province: province, City: city}
	total, err := s.repo.CountStores(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count stores: %w", err)
	}
	byType, err := s.repo.CountByBusinessType(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("service: failed to aggregate business types: %w", err)
	}
	byRegion, err := s.repo.CountBySubRegion(ctx, f, topN)
	if err != nil {
		return nil, fmt.Errorf("service: failed to aggregate regions: %w", err)
	}

	for i := range byType {
		if total > 0 {
			byType[i].Percentage = round(float64(byType[i].Count)/float64(total)*100, 2)
		}
	}
	if byType == nil {
		byType = []models.BusinessTypeStat{}
	}
	if byRegion == nil {
		byRegion = []models.RegionStat{}
	}

	stats := &models.StoreStatistics{TotalStores: total, ByBusinessType: byType, ByRegion: byRegion}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, stats); err != nil {
			log.Warn().Err(err).Msg("statistics cache write failed")
		}
	}
	return stats, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
