package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"market-insight-api/internal/models"
)

const populationColumns = `id, administrative_code, reference_date, province, city, district,
	male_by_age, female_by_age, total_male, total_female, total_population`

// ListProvinces returns the distinct provinces with population data
func (r *Repository) ListProvinces(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, colProvince, where())
}

// ListCities returns the distinct cities, optionally within a province
func (r *Repository) ListCities(ctx context.Context, province string) ([]string, error) {
	return r.distinct(ctx, colCity, where().eqIfSet(colProvince, province))
}

// ListDistricts returns the distinct districts, optionally within a province and city
func (r *Repository) ListDistricts(ctx context.Context, province, city string) ([]string, error) {
	return r.distinct(ctx, colDistrict, where().eqIfSet(colProvince, province).eqIfSet(colCity, city))
}

func (r *Repository) distinct(ctx context.Context, col column, p *predicate) ([]string, error) {
	p.conds = append(p.conds, string(col)+" <> ''")
	sql := "SELECT DISTINCT " + string(col) + " FROM population_records" + p.sql() + " ORDER BY " + string(col)

	rows, err := r.db.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to list %s: %w", col, err))
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to collect %s: %w", col, err))
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func populationWhere(f models.PopulationFilter) *predicate {
	p := where().
		eqIfSet(colProvince, f.Province).
		eqIfSet(colCity, f.City).
		containsIfSet(colDistrict, f.District)
	if f.Region != "" {
		p.or(func(o *predicate) {
			o.eq(colProvince, f.Region).eq(colCity, f.Region).containsIfSet(colDistrict, f.Region)
		})
	}
	if f.ReferenceDate != nil {
		p.eq(colReferenceDate, *f.ReferenceDate)
	}
	return p
}

// FindPopulation returns population records, most recent first
func (r *Repository) FindPopulation(ctx context.Context, f models.PopulationFilter, limit, offset int) ([]models.PopulationRecord, error) {
	p := populationWhere(f)
	sql := "SELECT " + populationColumns + " FROM population_records" + p.sql() +
		" ORDER BY reference_date DESC, administrative_code LIMIT " + p.arg(limit) + " OFFSET " + p.arg(max(offset, 0))

	rows, err := r.db.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to execute population query: %w", err))
	}
	return collectPopulation(rows)
}

// CountPopulation counts population records matching the filter
func (r *Repository) CountPopulation(ctx context.Context, f models.PopulationFilter) (int64, error) {
	p := populationWhere(f)
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM population_records"+p.sql(), p.args...).Scan(&count); err != nil {
		return 0, classify(fmt.Errorf("repository: failed to count population: %w", err))
	}
	return count, nil
}

// TopPopulationRecords returns the most populated records of the latest reference period
func (r *Repository) TopPopulationRecords(ctx context.Context, limit int) ([]models.PopulationRecord, error) {
	sql := `
		SELECT ` + populationColumns + `
		FROM population_records
		WHERE reference_date = (SELECT MAX(reference_date) FROM population_records)
		ORDER BY total_population DESC, administrative_code
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, classify(fmt.Errorf("repository: failed to execute top population query: %w", err))
	}
	return collectPopulation(rows)
}

// CopyPopulation bulk loads population records
func (r *Repository) CopyPopulation(ctx context.Context, records []models.PopulationRecord) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"population_records"},
		[]string{"administrative_code", "reference_date", "province", "city", "district",
			"male_by_age", "female_by_age", "total_male", "total_female", "total_population"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			p := records[i]
			p.Normalize()
			return []any{p.AdministrativeCode, p.ReferenceDate, p.Province, p.City, p.District,
				p.Male[:], p.Female[:], p.TotalMale, p.TotalFemale, p.TotalPopulation}, nil
		}),
	)
	if err != nil {
		return 0, classify(fmt.Errorf("repository: failed to copy population records: %w", err))
	}
	return n, nil
}

func collectPopulation(rows pgx.Rows) ([]models.PopulationRecord, error) {
	defer rows.Close()

	records := []models.PopulationRecord{}
	for rows.Next() {
		var p models.PopulationRecord
		var male, female []int64
		err := rows.Scan(
			&p.ID,
			&p.AdministrativeCode,
			&p.ReferenceDate,
			&p.Province,
			&p.City,
			&p.District,
			&male,
			&female,
			&p.TotalMale,
			&p.TotalFemale,
			&p.TotalPopulation,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan population record: %w", err)
		}
		copy(p.Male[:], male)
		copy(p.Female[:], female)
		p.Normalize()
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(fmt.Errorf("repository: error iterating rows: %w", err))
	}
	return records, nil
}
