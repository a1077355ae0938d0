package service

import (
	"time"

	"market-insight-api/internal/models"
)

// Fallback confidences stay below the lowest live confidence so callers can
// rank synthesized answers under computed ones.
const (
	fallbackTargetConfidence   = 0.3
	fallbackLocationConfidence = 0.3
	fallbackTimingConfidence   = 0.4
)

var fallbackLocationScores = []float64{82, 76, 71, 66, 61}

// FallbackSynthesizer builds rule-based recommendations from static
// business-type and age tables. Results are deterministic and tagged as fallback.
type FallbackSynthesizer struct{}

// NewFallbackSynthesizer creates a new fallback synthesizer
func NewFallbackSynthesizer() *FallbackSynthesizer {
	return &FallbackSynthesizer{}
}

// TargetCustomer returns the assumed customer mix of the business type
func (f *FallbackSynthesizer) TargetCustomer(businessType, region string) *models.TargetCustomerAnalysis {
	category := categorize(businessType)
	targets, ok := fallbackTargets[category]
	if !ok {
		targets = fallbackTargets[categoryGeneral]
	}

	return &models.TargetCustomerAnalysis{
		BusinessType:    businessType,
		Region:          region,
		PrimaryTarget:   targets[0].bucket.Label(),
		PrimaryShare:    targets[0].share,
		SecondaryTarget: targets[1].bucket.Label(),
		SecondaryShare:  targets[1].share,
		Confidence:      fallbackTargetConfidence,
		Strategies:      strategiesFor(category, targets[0].bucket),
		DataSource:      models.DataSourceFallback,
	}
}

// Location returns well-known commercial districts for the business type
func (f *FallbackSynthesizer) Location(businessType string, budget int64, target models.AgeBucket, hasTarget bool) *models.LocationRecommendation {
	areas, ok := fallbackAreas[categorize(businessType)]
	if !ok {
		areas = fallbackAreas[categoryGeneral]
	}

	locations := make([]models.LocationCandidate, 0, len(areas))
	for i, area := range areas {
		score := fallbackLocationScores[min(i, len(fallbackLocationScores)-1)]
		locations = append(locations, models.LocationCandidate{
			Area:        area,
			Score:       score,
			ExpectedROI: expectedROI(score),
		})
	}

	result := &models.LocationRecommendation{
		BusinessType: businessType,
		Budget:       budget,
		Locations:    locations,
		Confidence:   fallbackLocationConfidence,
		DataSource:   models.DataSourceFallback,
	}
	if hasTarget {
		result.TargetAge = target.Label()
	}
	return result
}

// Timing returns general retail timing, refined by target age when given
func (f *FallbackSynthesizer) Timing(businessType string, target models.AgeBucket, hasTarget bool, now time.Time) *models.MarketingTiming {
	result := buildTiming(businessType, categorize(businessType), genericTiming, target, hasTarget, now, fallbackTimingConfidence, models.DataSourceFallback)
	if hasTarget {
		result.TargetAge = target.Label()
	}
	return result
}
