package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAgeBucket(t *testing.T) {
	tests := []struct {
		input    string
		expected AgeBucket
		ok       bool
	}{
		{input: "20대", expected: 2, ok: true},
		{input: "10세미만", expected: 0, ok: true},
		{input: "100세이상", expected: 10, ok: true},
		{input: "30", expected: 3, ok: true},
		{input: "45", expected: 4, ok: true},
		{input: "40s", expected: 4, ok: true},
		{input: " 60대 ", expected: 6, ok: true},
		{input: "120", expected: 10, ok: true},
		{input: "", ok: false},
		{input: "-10", ok: false},
		{input: "young", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, ok := ParseAgeBucket(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, b)
			}
		})
	}
}

func TestAgeBucket_Label(t *testing.T) {
	assert.Equal(t, "20대", AgeBucket(2).Label())
	assert.Equal(t, "100세이상", AgeBucket(10).Label())
	assert.Empty(t, AgeBucket(11).Label())
	assert.Empty(t, AgeBucket(-1).Label())
}

func TestPopulationRecord_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		record PopulationRecord
		male   int64
		female int64
	}{
		{
			name:   "totals derived from brackets",
			record: PopulationRecord{Male: [AgeBucketCount]int64{10, 20}, Female: [AgeBucketCount]int64{5, 5, 5}},
			male:   30,
			female: 15,
		},
		{
			name:   "reported totals kept",
			record: PopulationRecord{Male: [AgeBucketCount]int64{10}, TotalMale: 12, TotalFemale: 8, TotalPopulation: 999},
			male:   12,
			female: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.Normalize()
			assert.Equal(t, tt.male, tt.record.TotalMale)
			assert.Equal(t, tt.female, tt.record.TotalFemale)
			assert.Equal(t, tt.male+tt.female, tt.record.TotalPopulation)
		})
	}
}

func TestRegionPopulation_Area(t *testing.T) {
	assert.Equal(t, "서울특별시 강남구 역삼1동", RegionPopulation{Province: "서울특별시", City: "강남구", District: "역삼1동"}.Area())
	assert.Equal(t, "서울특별시", RegionPopulation{Province: "서울특별시"}.Area())
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: 20, TotalCount: 41, TotalPages: 3}, NewPagination(1, 20, 41))
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
}

func TestPagination_Offset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		total      int64
		wantOffset int
		wantOK     bool
	}{
		{name: "first page", page: 1, total: 41, wantOffset: 0, wantOK: true},
		{name: "last page", page: 3, total: 41, wantOffset: 40, wantOK: true},
		{name: "past the end", page: 4, total: 41, wantOK: false},
		{name: "empty result", page: 1, total: 0, wantOK: false},
		{name: "overflowing page", page: math.MaxInt/20 + 2, total: 41, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, ok := NewPagination(tt.page, 20, tt.total).Offset()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
