package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"market-insight-api/internal/models"
)

// maxAggregatedRecords bounds how many census rows one rollup reads
const maxAggregatedRecords = 1000

// PopulationRepository is the read side of the census data
type PopulationRepository interface {
	ListProvinces(ctx context.Context) ([]string, error)
	ListCities(ctx context.Context, province string) ([]string, error)
	ListDistricts(ctx context.Context, province, city string) ([]string, error)
	FindPopulation(ctx context.Context, f models.PopulationFilter, limit, offset int) ([]models.PopulationRecord, error)
	CountPopulation(ctx context.Context, f models.PopulationFilter) (int64, error)
	TopPopulationRecords(ctx context.Context, limit int) ([]models.PopulationRecord, error)
}

// DemographicService looks up and rolls up census population data
type DemographicService struct {
	repo PopulationRepository
}

// NewDemographicService creates a new demographic service
func NewDemographicService(repo PopulationRepository) *DemographicService {
	return &DemographicService{repo: repo}
}

func (s *DemographicService) Provinces(ctx context.Context) ([]string, error) {
	provinces, err := s.repo.ListProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list provinces: %w", err)
	}
	return provinces, nil
}

func (s *DemographicService) Cities(ctx context.Context, province string) ([]string, error) {
	cities, err := s.repo.ListCities(ctx, province)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *DemographicService) Districts(ctx context.Context, province, city string) ([]string, error) {
	districts, err := s.repo.ListDistricts(ctx, province, city)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list districts: %w", err)
	}
	return districts, nil
}

// Population returns one page of census records, most recent first
func (s *DemographicService) Population(ctx context.Context, f models.PopulationFilter, page, pageSize int) (*models.PopulationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	total, err := s.repo.CountPopulation(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count population records: %w", err)
	}

	result := &models.PopulationPage{
		Items:      []models.PopulationRecord{},
		Pagination: models.NewPagination(page, pageSize, total),
	}
	offset, ok := result.Pagination.Offset()
	if !ok {
		return result, nil
	}

	items, err := s.repo.FindPopulation(ctx, f, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find population records: %w", err)
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

// AgeDistribution sums male and female population per age bracket over the
// matching records. Only the most recent record of each administrative code counts.
func (s *DemographicService) AgeDistribution(ctx context.Context, f models.PopulationFilter) (*models.AgeDistribution, error) {
	records, err := s.repo.FindPopulation(ctx, f, maxAggregatedRecords, 0)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load population records: %w", err)
	}

	dist := &models.AgeDistribution{}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.AdministrativeCode] {
			continue
		}
		seen[r.AdministrativeCode] = true
		dist.Add(r)
	}
	return dist, nil
}

// RegionPopulations returns up to limit districts of the latest census
// period, most populated first.
func (s *DemographicService) RegionPopulations(ctx context.Context, limit int) ([]models.RegionPopulation, error) {
	records, err := s.repo.TopPopulationRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load top regions: %w", err)
	}

	type regionKey struct{ province, city, district string }
	index := make(map[regionKey]int)
	regions := []models.RegionPopulation{}
	for _, r := range records {
		key := regionKey{r.Province, r.City, r.District}
		i, ok := index[key]
		if !ok {
			i = len(regions)
			index[key] = i
			regions = append(regions, models.RegionPopulation{Province: r.Province, City: r.City, District: r.District})
		}
		byAge := r.ByAge()
		for b := range byAge {
			regions[i].ByAge[b] += byAge[b]
		}
		regions[i].Total += r.TotalPopulation
	}

	slices.SortStableFunc(regions, func(a, b models.RegionPopulation) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return regions, nil
}
