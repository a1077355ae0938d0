package models

import "time"

// BusinessStatus is the lifecycle state of a storefront. Closure is a soft state; records are never deleted.
type BusinessStatus string

const (
	BusinessStatusOpen      BusinessStatus = "open"
	BusinessStatusClosed    BusinessStatus = "closed"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

// StoreRecord is a single storefront from the commercial registry.
type StoreRecord struct {
	ID                     int64          `json:"id"`
	StoreNumber            string         `json:"store_number"`
	StoreName              string         `json:"store_name"`
	BranchName             string         `json:"branch_name,omitempty"`
	BusinessCode           string         `json:"business_code"`
	BusinessName           string         `json:"business_name"`
	Latitude               float64        `json:"latitude"`
	Longitude              float64        `json:"longitude"`
	JibunAddress           string         `json:"jibun_address"`
	RoadAddress            string         `json:"road_address"`
	Province               string         `json:"province"`
	City                   string         `json:"city"`
	District               string         `json:"district"`
	BuildingName           string         `json:"building_name,omitempty"`
	Floor                  string         `json:"floor,omitempty"`
	Room                   string         `json:"room,omitempty"`
	OpenDate               *time.Time     `json:"open_date,omitempty"`
	CloseDate              *time.Time     `json:"close_date,omitempty"`
	BusinessStatus         BusinessStatus `json:"business_status"`
	StandardIndustryCode   string         `json:"standard_industry_code"`
	CommercialCategoryCode string         `json:"commercial_category_code"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// Coordinates returns the store location.
func (s StoreRecord) Coordinates() (Coordinates, error) {
	return NewCoordinates(s.Latitude, s.Longitude)
}

// StoreWithDistance is a store paired with its distance from a query center.
type StoreWithDistance struct {
	StoreRecord
	DistanceKm float64 `json:"distance_km"`
}

// Pagination describes a page of results.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes TotalPages for the given page parameters.
func NewPagination(page, pageSize int, total int64) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{Page: page, PageSize: pageSize, TotalCount: total, TotalPages: pages}
}

// Offset returns the row offset of the page. ok is false when the page lies
// past the last one, in which case the page is empty.
func (p Pagination) Offset() (offset int, ok bool) {
	if p.Page < 1 || p.Page > p.TotalPages {
		return 0, false
	}
	return (p.Page - 1) * p.PageSize, true
}

// StorePage is a page of stores.
type StorePage struct {
	Items      []StoreRecord `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// StoreFilter selects open stores by region and business type.
// District and BusinessType are substring matches.
type StoreFilter struct {
	Province     string
	City         string
	District     string
	BusinessType string
}

// BusinessTypeStat is one row of the business type breakdown.
type BusinessTypeStat struct {
	BusinessName string  `json:"business_name"`
	Count        int64   `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// RegionStat is one row of the sub-region breakdown.
type RegionStat struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// StoreStatistics aggregates open stores in a region.
type StoreStatistics struct {
	TotalStores    int64              `json:"total_stores"`
	ByBusinessType []BusinessTypeStat `json:"byBusinessType"`
	ByRegion       []RegionStat       `json:"byRegion"`
}

// SyncRegionResult is the outcome of syncing one region.
type SyncRegionResult struct {
	ProvinceCode  string `json:"province_code"`
	SubRegionCode string `json:"sub_region_code,omitempty"`
	Fetched       int    `json:"fetched"`
	Synced        int    `json:"synced"`
	Failed        int    `json:"failed"`
	Error         string `json:"error,omitempty"`
}

// SyncSummary aggregates a synchronizer run.
type SyncSummary struct {
	RunID        string             `json:"run_id"`
	SyncedCount  int                `json:"syncedCount"`
	TotalFetched int                `json:"totalFetched"`
	FailedCount  int                `json:"failedCount"`
	Regions      []SyncRegionResult `json:"regions"`
	StartedAt    time.Time          `json:"started_at"`
	FinishedAt   time.Time          `json:"finished_at"`
}
