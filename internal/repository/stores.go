package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"market-insight-api/internal/models"
)

const storeColumns = `id, store_number, store_name, branch_name, business_code, business_name,
	latitude, longitude, jibun_address, road_address, province, city, district,
	building_name, floor, room, open_date, close_date, business_status,
	standard_industry_code, commercial_category_code, created_at, updated_at`

// UpsertStore inserts a store or, when store_number already exists, updates its
// mutable fields. created_at is never touched on update. It reports whether a
// new row was inserted.
func (r *Repository) UpsertStore(ctx context.Context, s models.StoreRecord) (bool, error) {
	sql := `
		INSERT INTO stores (
			store_number, store_name, branch_name, business_code, business_name,
			latitude, longitude, jibun_address, road_address, province, city, district,
			building_name, floor, room, open_date, close_date, business_status,
			standard_industry_code, commercial_category_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (store_number) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			business_code = EXCLUDED.business_code,
			business_name = EXCLUDED.business_name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			business_status = EXCLUDED.business_status,
			updated_at = now()
		RETURNING (xmax = 0) AS inserted
	`

	status := s.BusinessStatus
	if status == "" {
		status = models.BusinessStatusOpen
	}

	var inserted bool
	err := r.db.QueryRow(ctx, sql,
		s.StoreNumber, s.StoreName, s.BranchName, s.BusinessCode, s.BusinessName,
		s.Latitude, s.Longitude, s.JibunAddress, s.RoadAddress, s.Province, s.City, s.District,
		s.BuildingName, s.Floor, s.Room, s.OpenDate, s.CloseDate, string(status),
		s.StandardIndustryCode, s.CommercialCategoryCode,
	).Scan(&inserted)
	if err != nil {
		return false, classify(&models.PersistenceError{StoreNumber: s.StoreNumber, Err: err})
	}
	return inserted, nil
}

// FindStoreByNumber returns the store with the given store_number, or nil.
func (r *Repository) FindStoreByNumber(ctx context.Context, storeNumber string) (*models.StoreRecord, error) {
	rows, err := r.db.Query(ctx, "SELECT "+storeColumns+" FROM stores WHERE store_number = $1", storeNumber)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to query store: %w", err))
	}
	stores, err := collectStores(rows)
	if err != nil || len(stores) == 0 {
		return nil, err
	}
	return &stores[0], nil
}

// FindOpenStoresInBox returns open stores inside the bounding box, optionally
// restricted to business names containing businessType.
func (r *Repository) FindOpenStoresInBox(ctx context.Context, box models.BoundingBox, businessType string) ([]models.StoreRecord, error) {
	p := where().
		eq(colBusinessStatus, string(models.BusinessStatusOpen)).
		between(colLatitude, box.MinLat, box.MaxLat).
		between(colLongitude, box.MinLon, box.MaxLon).
		containsIfSet(colBusinessName, businessType)

	rows, err := r.db.Query(ctx, "SELECT "+storeColumns+" FROM stores"+p.sql(), p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to execute bounding box query: %w", err))
	}
	return collectStores(rows)
}

func openStoresWhere(f models.StoreFilter) *predicate {
	return where().
		eq(colBusinessStatus, string(models.BusinessStatusOpen)).
		eqIfSet(colProvince, f.Province).
		eqIfSet(colCity, f.City).
		containsIfSet(colDistrict, f.District).
		containsIfSet(colBusinessName, f.BusinessType)
}

// FindStoresByRegion returns one page of open stores ordered by store_name.
func (r *Repository) FindStoresByRegion(ctx context.Context, f models.StoreFilter, limit, offset int) ([]models.StoreRecord, error) {
	p := openStoresWhere(f)
	sql := "SELECT " + storeColumns + " FROM stores" + p.sql() +
		" ORDER BY store_name, store_number LIMIT " + p.arg(limit) + " OFFSET " + p.arg(max(offset, 0))

	rows, err := r.db.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to execute region query: %w", err))
	}
	return collectStores(rows)
}

// CountStores counts open stores matching the filter.
func (r *Repository) CountStores(ctx context.Context, f models.StoreFilter) (int64, error) {
	p := openStoresWhere(f)
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM stores"+p.sql(), p.args...).Scan(&count); err != nil {
		return 0, classify(fmt.Errorf("repository: failed to count stores: %w", err))
	}
	return count, nil
}

// CountByBusinessType returns the limit most common business names among open stores.
func (r *Repository) CountByBusinessType(ctx context.Context, f models.StoreFilter, limit int) ([]models.BusinessTypeStat, error) {
	p := openStoresWhere(f)
	sql := "SELECT business_name, COUNT(*) AS cnt FROM stores" + p.sql() +
		" GROUP BY business_name ORDER BY cnt DESC, business_name LIMIT " + p.arg(limit)

	rows, err := r.db.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to count by business type: %w", err))
	}
	defer rows.Close()

	stats := []models.BusinessTypeStat{}
	for rows.Next() {
		var s models.BusinessTypeStat
		if err := rows.Scan(&s.BusinessName, &s.Count); err != nil {
			return nil, fmt.Errorf("repository: failed to scan business type stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("repository: error iterating rows: %w", err))
	}
	return stats, nil
}

// CountBySubRegion returns the limit largest sub-regions one level below the
// filter: provinces when unfiltered, cities within a province, districts within a city.
func (r *Repository) CountBySubRegion(ctx context.Context, f models.StoreFilter, limit int) ([]models.RegionStat, error) {
	group := colProvince
	switch {
	case f.City != "":
		group = colDistrict
	case f.Province != "":
		group = colCity
	}

	p := openStoresWhere(f)
	sql := "SELECT " + string(group) + ", COUNT(*) AS cnt FROM stores" + p.sql() +
		" GROUP BY " + string(group) + " ORDER BY cnt DESC, " + string(group) + " LIMIT " + p.arg(limit)

	rows, err := r.db.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to count by region: %w", err))
	}
	defer rows.Close()

	stats := []models.RegionStat{}
	for rows.Next() {
		var s models.RegionStat
		if err := rows.Scan(&s.Region, &s.Count); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("repository: error iterating rows: %w", err))
	}
	return stats, nil
}

func collectStores(rows pgx.Rows) ([]models.StoreRecord, error) {
	defer rows.Close()

	stores := []models.StoreRecord{}
	for rows.Next() {
		var s models.StoreRecord
		var status string
		err := rows.Scan(
			&s.ID,
			&s.StoreNumber,
			&s.StoreName,
			&s.BranchName,
			&s.BusinessCode,
			&s.BusinessName,
			&s.Latitude,
			&s.Longitude,
			&s.JibunAddress,
			&s.RoadAddress,
			&s.Province,
			&s.City,
			&s.District,
			&s.BuildingName,
			&s.Floor,
			&s.Room,
			&s.OpenDate,
			&s.CloseDate,
			&status,
			&s.StandardIndustryCode,
			&s.CommercialCategoryCode,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan store: %w", err)
		}
		s.BusinessStatus = models.BusinessStatus(status)
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("repository: error iterating rows: %w", err))
	}
	return stores, nil
}
