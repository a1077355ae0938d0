package models

// DataSource records whether a recommendation was computed from live data or synthesized.
type DataSource string

const (
	DataSourceLive     DataSource = "live"
	DataSourceFallback DataSource = "fallback"
)

// TargetCustomerAnalysis ranks age brackets for a business type in a region.
type TargetCustomerAnalysis struct {
	BusinessType    string     `json:"business_type"`
	Region          string     `json:"region"`
	PrimaryTarget   string     `json:"primaryTarget"`
	PrimaryShare    float64    `json:"primaryShare"`
	SecondaryTarget string     `json:"secondaryTarget"`
	SecondaryShare  float64    `json:"secondaryShare"`
	Confidence      float64    `json:"confidence"`
	Strategies      []string   `json:"strategies"`
	RecordsAnalyzed int        `json:"records_analyzed"`
	DataSource      DataSource `json:"data_source"`
}

// LocationCandidate is one ranked area.
type LocationCandidate struct {
	Area        string  `json:"area"`
	Score       float64 `json:"score"`
	ExpectedROI float64 `json:"expectedROI"`
	Population  int64   `json:"population"`
	// Competitors counts open stores of the same business type in the area.
	// Nil when the store catalog could not be read.
	Competitors       *int64  `json:"competitors,omitempty"`
	StoresPerThousand float64 `json:"storesPerThousand,omitempty"`
}

// LocationRecommendation ranks candidate areas for a business type.
type LocationRecommendation struct {
	BusinessType string              `json:"business_type"`
	Budget       int64               `json:"budget"`
	TargetAge    string              `json:"target_age,omitempty"`
	Locations    []LocationCandidate `json:"locations"`
	Confidence   float64             `json:"confidence"`
	DataSource   DataSource          `json:"data_source"`
}

// MarketingTiming suggests when to run promotions.
type MarketingTiming struct {
	BusinessType string     `json:"business_type"`
	TargetAge    string     `json:"target_age,omitempty"`
	Audience     string     `json:"audience,omitempty"`
	BestDays     []string   `json:"bestDays"`
	BestHours    []string   `json:"bestHours"`
	SeasonalNote string     `json:"seasonalNote"`
	Confidence   float64    `json:"confidence"`
	DataSource   DataSource `json:"data_source"`
}
