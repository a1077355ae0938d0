package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"market-insight-api/internal/metrics"
	"market-insight-api/internal/models"
)

const (
	candidateRegions   = 20
	recommendedRegions = 5
	baseScoreWeight    = 70.0
	ageBonusWeight     = 30.0
)

// DemographicSource provides census rollups to the recommendation engine
type DemographicSource interface {
	AgeDistribution(ctx context.Context, f models.PopulationFilter) (*models.AgeDistribution, error)
	RegionPopulations(ctx context.Context, limit int) ([]models.RegionPopulation, error)
}

// StoreCounter counts open stores matching a filter
type StoreCounter interface {
	CountStores(ctx context.Context, f models.StoreFilter) (int64, error)
}

// RecommendationService computes target-customer, location and timing
// recommendations. Each one first runs a live stage over census data; when
// that stage fails or has too little data, the FallbackSynthesizer produces a
// result of the same shape with lower confidence. Callers never see data errors.
type RecommendationService struct {
	demographics DemographicSource
	stores       StoreCounter
	fallback     *FallbackSynthesizer
	now          func() time.Time
}

// NewRecommendationService creates a new recommendation service.
// stores may be nil, in which case location candidates carry no competitor counts.
func NewRecommendationService(demographics DemographicSource, stores StoreCounter) *RecommendationService {
	return &RecommendationService{
		demographics: demographics,
		stores:       stores,
		fallback:     NewFallbackSynthesizer(),
		now:          time.Now,
	}
}

// TargetCustomer ranks age brackets for businessType in region
func (s *RecommendationService) TargetCustomer(ctx context.Context, businessType, region string) (*models.TargetCustomerAnalysis, error) {
	if strings.TrimSpace(businessType) == "" {
		return nil, &models.ValidationError{Field: "business_type", Reason: "is required"}
	}

	result, err := s.analyzeTargetLive(ctx, businessType, region)
	if err != nil {
		log.Warn().Err(err).Str("business_type", businessType).Str("region", region).Msg("target customer analysis falling back")
		result = s.fallback.TargetCustomer(businessType, region)
	}
	metrics.RecommendationsTotal.WithLabelValues("target_customer", string(result.DataSource)).Inc()
	return result, nil
}

func (s *RecommendationService) analyzeTargetLive(ctx context.Context, businessType, region string) (*models.TargetCustomerAnalysis, error) {
	dist, err := s.demographics.AgeDistribution(ctx, models.PopulationFilter{Region: region})
	if err != nil {
		return nil, err
	}
	if dist == nil || dist.RecordCount == 0 || dist.Total <= 0 {
		return nil, models.ErrInsufficientData
	}

	category := categorize(businessType)
	weighted, weightedTotal := weightedBuckets(dist, category)
	if weightedTotal <= 0 {
		return nil, models.ErrInsufficientData
	}

	ranked := make([]models.AgeBucket, models.AgeBucketCount)
	for i := range ranked {
		ranked[i] = models.AgeBucket(i)
	}
	slices.SortStableFunc(ranked, func(a, b models.AgeBucket) int {
		return cmp.Compare(weighted[b], weighted[a])
	})
	primary, secondary := ranked[0], ranked[1]

	return &models.TargetCustomerAnalysis{
		BusinessType:    businessType,
		Region:          region,
		PrimaryTarget:   primary.Label(),
		PrimaryShare:    round(weighted[primary]/weightedTotal*100, 1),
		SecondaryTarget: secondary.Label(),
		SecondaryShare:  round(weighted[secondary]/weightedTotal*100, 1),
		Confidence:      liveTargetConfidence(dist.RecordCount),
		Strategies:      strategiesFor(category, primary),
		RecordsAnalyzed: dist.RecordCount,
		DataSource:      models.DataSourceLive,
	}, nil
}

// weightedBuckets scales each bracket's population by how strongly the
// category draws from it.
func weightedBuckets(dist *models.AgeDistribution, category businessCategory) ([models.AgeBucketCount]float64, float64) {
	weights := weightsFor(category)
	var weighted [models.AgeBucketCount]float64
	var total float64
	for i := range weighted {
		weighted[i] = float64(dist.Combined[i]) * weights[i]
		total += weighted[i]
	}
	return weighted, total
}

// liveTargetConfidence grows with the number of census records and is capped.
// Its floor stays above every fallback confidence.
func liveTargetConfidence(records int) float64 {
	return round(math.Min(0.6+0.05*float64(records), 0.95), 2)
}

// OptimalLocation ranks the most populated districts for businessType.
// targetAge is optional; without it the business type's core bracket is used.
func (s *RecommendationService) OptimalLocation(ctx context.Context, businessType string, budget int64, targetAge string) (*models.LocationRecommendation, error) {
	if strings.TrimSpace(businessType) == "" {
		return nil, &models.ValidationError{Field: "business_type", Reason: "is required"}
	}
	if budget < 0 {
		return nil, &models.ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	target, hasTarget, err := parseTargetAge(targetAge)
	if err != nil {
		return nil, err
	}

	result, err := s.recommendLocationLive(ctx, businessType, budget, target, hasTarget)
	if err != nil {
		log.Warn().Err(err).Str("business_type", businessType).Msg("location recommendation falling back")
		result = s.fallback.Location(businessType, budget, target, hasTarget)
	}
	metrics.RecommendationsTotal.WithLabelValues("location", string(result.DataSource)).Inc()
	return result, nil
}

func (s *RecommendationService) recommendLocationLive(ctx context.Context, businessType string, budget int64, target models.AgeBucket, hasTarget bool) (*models.LocationRecommendation, error) {
	regions, err := s.demographics.RegionPopulations(ctx, candidateRegions)
	if err != nil {
		return nil, err
	}

	category := categorize(businessType)
	bonusBucket, hasBonus := target, hasTarget
	if !hasBonus {
		bonusBucket, hasBonus = peakBucket(category)
	}

	var maxPop, maxTarget int64
	for _, r := range regions {
		maxPop = max(maxPop, r.Total)
		maxTarget = max(maxTarget, r.ByAge[bonusBucket])
	}
	if maxPop <= 0 {
		return nil, models.ErrInsufficientData
	}

	type ranked struct {
		region    models.RegionPopulation
		candidate models.LocationCandidate
	}
	all := make([]ranked, 0, len(regions))
	for _, r := range regions {
		score := baseScoreWeight * float64(r.Total) / float64(maxPop)
		if hasBonus && maxTarget > 0 {
			score += ageBonusWeight * float64(r.ByAge[bonusBucket]) / float64(maxTarget)
		}
		all = append(all, ranked{region: r, candidate: models.LocationCandidate{
			Area:        r.Area(),
			Score:       round(score, 1),
			ExpectedROI: expectedROI(score),
			Population:  r.Total,
		}})
	}

	slices.SortStableFunc(all, func(a, b ranked) int {
		return cmp.Compare(b.candidate.Score, a.candidate.Score)
	})
	if len(all) > recommendedRegions {
		all = all[:recommendedRegions]
	}

	candidates := make([]models.LocationCandidate, len(all))
	for i, r := range all {
		candidates[i] = r.candidate
		s.addCompetition(ctx, &candidates[i], r.region, businessType)
	}

	result := &models.LocationRecommendation{
		BusinessType: businessType,
		Budget:       budget,
		Locations:    candidates,
		Confidence:   round(math.Min(0.55+0.02*float64(len(regions)), 0.9), 2),
		DataSource:   models.DataSourceLive,
	}
	if hasTarget {
		result.TargetAge = target.Label()
	}
	return result, nil
}

// addCompetition attaches the number of open stores of the same business type
// in the candidate's area. Count failures leave the candidate without it.
func (s *RecommendationService) addCompetition(ctx context.Context, c *models.LocationCandidate, r models.RegionPopulation, businessType string) {
	if s.stores == nil {
		return
	}
	count, err := s.stores.CountStores(ctx, models.StoreFilter{
		Province:     r.Province,
		City:         r.City,
		District:     r.District,
		BusinessType: businessType,
	})
	if err != nil {
		log.Warn().Err(err).Str("area", c.Area).Msg("competitor count unavailable")
		return
	}
	c.Competitors = &count
	if r.Total > 0 {
		c.StoresPerThousand = round(float64(count)*1000/float64(r.Total), 2)
	}
}

// expectedROI maps a score in [0, 100] to a percentage that rises with the
// score and stays within [5, 25).
func expectedROI(score float64) float64 {
	return round(5+20*(1-math.Exp(-math.Max(score, 0)/50)), 1)
}

// MarketingTiming suggests days and hours to run promotions for businessType,
// refined by targetAge when given.
func (s *RecommendationService) MarketingTiming(ctx context.Context, targetAge, businessType string) (*models.MarketingTiming, error) {
	if strings.TrimSpace(businessType) == "" {
		return nil, &models.ValidationError{Field: "business_type", Reason: "is required"}
	}
	target, hasTarget, err := parseTargetAge(targetAge)
	if err != nil {
		return nil, err
	}

	result, err := s.timingLive(ctx, businessType, target, hasTarget)
	if err != nil {
		log.Warn().Err(err).Str("business_type", businessType).Msg("marketing timing falling back")
		result = s.fallback.Timing(businessType, target, hasTarget, s.now())
	}
	metrics.RecommendationsTotal.WithLabelValues("marketing_timing", string(result.DataSource)).Inc()
	return result, nil
}

// timingLive refines the category's hours for the requested bracket or,
// without one, for the bracket that dominates the census weighted by the category.
func (s *RecommendationService) timingLive(ctx context.Context, businessType string, target models.AgeBucket, hasTarget bool) (*models.MarketingTiming, error) {
	category := categorize(businessType)
	profile, ok := timingByCategory[category]
	if !ok {
		return nil, fmt.Errorf("no timing profile for %q: %w", businessType, models.ErrInsufficientData)
	}

	dist, err := s.demographics.AgeDistribution(ctx, models.PopulationFilter{})
	if err != nil {
		return nil, err
	}
	if dist == nil || dist.RecordCount == 0 || dist.Total <= 0 {
		return nil, models.ErrInsufficientData
	}
	weighted, weightedTotal := weightedBuckets(dist, category)
	if weightedTotal <= 0 {
		return nil, models.ErrInsufficientData
	}

	audience, confidence := target, 0.8
	if !hasTarget {
		audience, confidence = dominantBucket(weighted), 0.75
	}
	result := buildTiming(businessType, category, profile, audience, true, s.now(), confidence, models.DataSourceLive)
	if hasTarget {
		result.TargetAge = target.Label()
	}
	return result, nil
}

func dominantBucket(weighted [models.AgeBucketCount]float64) models.AgeBucket {
	best := 0
	for i := range weighted {
		if weighted[i] > weighted[best] {
			best = i
		}
	}
	return models.AgeBucket(best)
}

// buildTiming fills a timing result from profile. When hasAudience is set the
// audience bracket's hours come first.
func buildTiming(businessType string, category businessCategory, profile timingProfile, audience models.AgeBucket, hasAudience bool, now time.Time, confidence float64, source models.DataSource) *models.MarketingTiming {
	hours := slices.Clone(profile.hours)
	result := &models.MarketingTiming{
		BusinessType: businessType,
		BestDays:     slices.Clone(profile.days),
		SeasonalNote: seasonalNote(category, season(now.Month())),
		Confidence:   confidence,
		DataSource:   source,
	}
	if hasAudience {
		result.Audience = audience.Label()
		hours = mergeHours(hoursByAge[audience], hours)
	}
	result.BestHours = hours
	return result
}

// mergeHours puts age-specific slots first and keeps at most three distinct slots.
func mergeHours(preferred, base []string) []string {
	out := make([]string, 0, 3)
	for _, h := range append(slices.Clone(preferred), base...) {
		if len(out) == 3 {
			break
		}
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

// season returns 0 for spring through 3 for winter.
func season(m time.Month) int {
	return ((int(m) + 9) % 12) / 3
}

func parseTargetAge(targetAge string) (models.AgeBucket, bool, error) {
	if strings.TrimSpace(targetAge) == "" {
		return 0, false, nil
	}
	b, ok := models.ParseAgeBucket(targetAge)
	if !ok {
		return 0, false, &models.ValidationError{Field: "target_age", Reason: "must be an age bracket such as 20대"}
	}
	return b, true, nil
}
