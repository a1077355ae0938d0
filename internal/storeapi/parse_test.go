package storeapi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"market-insight-api/internal/models"
)

func errorsAs[T error](err error, target *T) bool {
	return errors.As(err, target)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		expected *time.Time
	}{
		{in: "20240229", expected: ptr(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))},
		{in: "20230229", expected: nil},
		{in: "2024-02-29", expected: nil},
		{in: "", expected: nil},
		{in: "2024", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDate(tt.in))
		})
	}
}

func TestParseStatus(t *testing.T) {
	closed := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, models.BusinessStatusOpen, parseStatus("", nil))
	assert.Equal(t, models.BusinessStatusOpen, parseStatus("영업", nil))
	assert.Equal(t, models.BusinessStatusClosed, parseStatus("폐업", nil))
	assert.Equal(t, models.BusinessStatusSuspended, parseStatus("휴업", nil))
	assert.Equal(t, models.BusinessStatusClosed, parseStatus("", &closed))
}

func TestRawStore_ToRecord_Discard(t *testing.T) {
	tests := []struct {
		name string
		raw  rawStore
		keep bool
	}{
		{name: "complete", raw: rawStore{StoreNumber: "1", StoreName: "a", Longitude: "127", Latitude: "37"}, keep: true},
		{name: "missing number", raw: rawStore{StoreName: "a", Longitude: "127", Latitude: "37"}},
		{name: "missing name", raw: rawStore{StoreNumber: "1", Longitude: "127", Latitude: "37"}},
		{name: "missing longitude", raw: rawStore{StoreNumber: "1", StoreName: "a", Latitude: "37"}},
		{name: "unparsable latitude", raw: rawStore{StoreNumber: "1", StoreName: "a", Longitude: "127", Latitude: "north"}},
		{name: "out of range latitude", raw: rawStore{StoreNumber: "1", StoreName: "a", Longitude: "127", Latitude: "137"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.raw.toRecord()
			assert.Equal(t, tt.keep, ok)
		})
	}
}

func ptr[T any](v T) *T { return &v }
