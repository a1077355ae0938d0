package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"market-insight-api/internal/models"
)

// Column layout: administrative_code, reference_date, province, city,
// district, then eleven male bracket counts and eleven female bracket counts.
const (
	colMaleStart   = 5
	colFemaleStart = colMaleStart + models.AgeBucketCount
	populationCols = colFemaleStart + models.AgeBucketCount
)

func parsePopulationCSV(r io.Reader) ([]models.PopulationRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.PopulationRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec, err := parsePopulationRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parsePopulationRow(row []string) (models.PopulationRecord, error) {
	if len(row) < populationCols {
		return models.PopulationRecord{}, fmt.Errorf("invalid record length: %d, expected at least %d columns", len(row), populationCols)
	}

	code := strings.TrimSpace(row[0])
	if code == "" {
		return models.PopulationRecord{}, errors.New("missing administrative code")
	}
	date, err := parseReferenceDate(row[1])
	if err != nil {
		return models.PopulationRecord{}, err
	}

	rec := models.PopulationRecord{
		AdministrativeCode: code,
		ReferenceDate:      date,
		Province:           strings.TrimSpace(row[2]),
		City:               strings.TrimSpace(row[3]),
		District:           strings.TrimSpace(row[4]),
	}
	for i := 0; i < models.AgeBucketCount; i++ {
		if rec.Male[i], err = parseCount(row[colMaleStart+i]); err != nil {
			return models.PopulationRecord{}, fmt.Errorf("male %s: %w", models.AgeBucket(i).Label(), err)
		}
		if rec.Female[i], err = parseCount(row[colFemaleStart+i]); err != nil {
			return models.PopulationRecord{}, fmt.Errorf("female %s: %w", models.AgeBucket(i).Label(), err)
		}
	}
	rec.Normalize()
	return rec, nil
}

// parseReferenceDate accepts 2006-01-02, 20060102 and 200601 (first of month).
func parseReferenceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.DateOnly, "20060102", "200601"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid reference date: %q", s)
}

// parseCount reads a non-negative count; census exports use thousands separators.
func parseCount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count: %q", s)
	}
	return n, nil
}
