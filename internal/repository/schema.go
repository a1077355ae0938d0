package repository

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id BIGSERIAL PRIMARY KEY,
		store_number VARCHAR(64) NOT NULL,
		store_name VARCHAR(255) NOT NULL,
		branch_name VARCHAR(255) NOT NULL DEFAULT '',
		business_code VARCHAR(32) NOT NULL DEFAULT '',
		business_name VARCHAR(255) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		jibun_address VARCHAR(512) NOT NULL DEFAULT '',
		road_address VARCHAR(512) NOT NULL DEFAULT '',
		province VARCHAR(64) NOT NULL DEFAULT '',
		city VARCHAR(64) NOT NULL DEFAULT '',
		district VARCHAR(64) NOT NULL DEFAULT '',
		building_name VARCHAR(255) NOT NULL DEFAULT '',
		floor VARCHAR(32) NOT NULL DEFAULT '',
		room VARCHAR(32) NOT NULL DEFAULT '',
		open_date DATE,
		close_date DATE,
		business_status VARCHAR(16) NOT NULL DEFAULT 'open',
		standard_industry_code VARCHAR(32) NOT NULL DEFAULT '',
		commercial_category_code VARCHAR(32) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS stores_store_number_idx ON stores (store_number)`,
	`CREATE INDEX IF NOT EXISTS stores_status_region_idx ON stores (business_status, province, city, district)`,
	`CREATE INDEX IF NOT EXISTS stores_status_business_idx ON stores (business_status, business_name)`,
	`CREATE INDEX IF NOT EXISTS stores_status_location_idx ON stores (business_status, latitude, longitude)`,
	`CREATE TABLE IF NOT EXISTS population_records (
		id BIGSERIAL PRIMARY KEY,
		administrative_code VARCHAR(16) NOT NULL,
		reference_date DATE NOT NULL,
		province VARCHAR(64) NOT NULL DEFAULT '',
		city VARCHAR(64) NOT NULL DEFAULT '',
		district VARCHAR(64) NOT NULL DEFAULT '',
		male_by_age BIGINT[] NOT NULL,
		female_by_age BIGINT[] NOT NULL,
		total_male BIGINT NOT NULL DEFAULT 0,
		total_female BIGINT NOT NULL DEFAULT 0,
		total_population BIGINT NOT NULL DEFAULT 0,
		UNIQUE (administrative_code, reference_date)
	)`,
	`CREATE INDEX IF NOT EXISTS population_region_idx ON population_records (province, city, district, reference_date DESC)`,
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("repository: failed to apply schema: %w", err)
		}
	}
	return nil
}
