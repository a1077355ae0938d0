package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"market-insight-api/internal/metrics"
	"market-insight-api/internal/models"
	"market-insight-api/internal/storeapi"
)

// StoreFetcher reads pages of stores from the upstream registry
type StoreFetcher interface {
	FetchStores(ctx context.Context, q storeapi.RegionQuery) (*storeapi.Page, error)
}

// StoreWriter persists stores. It is the only mutation path of the catalog.
type StoreWriter interface {
	UpsertStore(ctx context.Context, s models.StoreRecord) (bool, error)
	AcquireSyncLock(ctx context.Context) (func(), error)
}

// CacheInvalidator drops derived data after the catalog changes
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SyncOptions controls crawl size and pacing
type SyncOptions struct {
	PageSize     int
	MaxPerRegion int
	RegionDelay  time.Duration
	Regions      []storeapi.Region
}

// SyncService crawls administrative regions and upserts their stores.
// Regions are processed one at a time, and records within a region are
// written sequentially.
type SyncService struct {
	fetcher StoreFetcher
	writer  StoreWriter
	cache   CacheInvalidator
	opts    SyncOptions
	limiter *rate.Limiter
	mu      sync.Mutex
	now     func() time.Time
}

// NewSyncService creates a new store synchronizer
func NewSyncService(fetcher StoreFetcher, writer StoreWriter, cache CacheInvalidator, opts SyncOptions) *SyncService {
	if opts.PageSize <= 0 || opts.PageSize > storeapi.MaxPageSize {
		opts.PageSize = storeapi.MaxPageSize
	}
	if opts.MaxPerRegion <= 0 {
		opts.MaxPerRegion = opts.PageSize
	}
	if opts.Regions == nil {
		opts.Regions = storeapi.SeoulDistricts
	}

	limit := rate.Inf
	if opts.RegionDelay > 0 {
		limit = rate.Every(opts.RegionDelay)
	}

	return &SyncService{
		fetcher: fetcher,
		writer:  writer,
		cache:   cache,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// SyncAll crawls every configured region
func (s *SyncService) SyncAll(ctx context.Context) (*models.SyncSummary, error) {
	return s.run(ctx, s.opts.Regions)
}

// SyncRegion crawls a single province, or one sub-region of it
func (s *SyncService) SyncRegion(ctx context.Context, provinceCode, subRegionCode string) (*models.SyncSummary, error) {
	if provinceCode == "" {
		return nil, &models.ValidationError{Field: "province_code", Reason: "is required"}
	}
	return s.run(ctx, []storeapi.Region{{ProvinceCode: provinceCode, SubRegionCode: subRegionCode}})
}

func (s *SyncService) run(ctx context.Context, regions []storeapi.Region) (*models.SyncSummary, error) {
	if !s.mu.TryLock() {
		return nil, models.ErrSyncInProgress
	}
	defer s.mu.Unlock()

	release, err := s.writer.AcquireSyncLock(ctx)
	if err != nil {
		if errors.Is(err, models.ErrSyncInProgress) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to acquire sync lock: %w", err)
	}
	defer release()

	summary := &models.SyncSummary{
		RunID:     uuid.New().String(),
		StartedAt: s.now(),
		Regions:   make([]models.SyncRegionResult, 0, len(regions)),
	}
	logger := log.With().Str("run_id", summary.RunID).Logger()
	logger.Info().Int("regions", len(regions)).Msg("store sync started")

	defer func() {
		summary.FinishedAt = s.now()
		if s.cache != nil && summary.SyncedCount > 0 {
			if err := s.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
				logger.Warn().Err(err).Msg("failed to invalidate statistics cache")
			}
		}
	}()

	for _, region := range regions {
		if err := s.limiter.Wait(ctx); err != nil {
			return summary, fmt.Errorf("service: sync interrupted: %w", err)
		}

		result, err := s.syncRegion(ctx, region)
		summary.TotalFetched += result.Fetched
		summary.SyncedCount += result.Synced
		summary.FailedCount += result.Failed

		if err != nil {
			result.Error = err.Error()
			summary.Regions = append(summary.Regions, result)

			if errors.Is(err, models.ErrStorageUnavailable) {
				logger.Error().Err(err).Str("region", region.Label()).Msg("storage unavailable, aborting store sync")
				return summary, fmt.Errorf("service: store sync aborted: %w", err)
			}
			if ctx.Err() != nil {
				return summary, fmt.Errorf("service: sync interrupted: %w", ctx.Err())
			}
			metrics.RegionsFailedTotal.Inc()
			logger.Warn().Err(err).Str("region", region.Label()).Int("synced", result.Synced).Msg("region sync failed, continuing")
			continue
		}

		summary.Regions = append(summary.Regions, result)
		logger.Info().
			Str("region", region.Label()).
			Str("name", region.Name).
			Int("fetched", result.Fetched).
			Int("synced", result.Synced).
			Int("failed", result.Failed).
			Msg("region synced")
	}

	logger.Info().
		Int("total_fetched", summary.TotalFetched).
		Int("synced", summary.SyncedCount).
		Int("failed", summary.FailedCount).
		Msg("store sync finished")
	return summary, nil
}

// syncRegion pages through one region up to MaxPerRegion records. Per-record
// failures are counted; storage loss and upstream failures end the region.
func (s *SyncService) syncRegion(ctx context.Context, region storeapi.Region) (models.SyncRegionResult, error) {
	result := models.SyncRegionResult{ProvinceCode: region.ProvinceCode, SubRegionCode: region.SubRegionCode}

	for pageNo := 1; result.Fetched < s.opts.MaxPerRegion; pageNo++ {
		page, err := s.fetcher.FetchStores(ctx, storeapi.RegionQuery{
			ProvinceCode:  region.ProvinceCode,
			SubRegionCode: region.SubRegionCode,
			Page:          pageNo,
			PageSize:      s.opts.PageSize,
		})
		if err != nil {
			return result, err
		}

		records := page.Records
		if remaining := s.opts.MaxPerRegion - result.Fetched; len(records) > remaining {
			records = records[:remaining]
		}
		result.Fetched += len(records)

		for _, rec := range records {
			if _, err := s.writer.UpsertStore(ctx, rec); err != nil {
				if errors.Is(err, models.ErrStorageUnavailable) {
					return result, err
				}
				if ctx.Err() != nil {
					return result, ctx.Err()
				}
				result.Failed++
				metrics.StoresFailedTotal.Inc()
				log.Warn().Err(err).Str("store_number", rec.StoreNumber).Msg("failed to upsert store")
				continue
			}
			result.Synced++
			metrics.StoresSyncedTotal.Inc()
		}

		served := len(page.Records) + page.Discarded
		if served < s.opts.PageSize || pageNo*s.opts.PageSize >= page.TotalCount {
			break
		}
	}

	return result, nil
}
