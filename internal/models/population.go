package models

import (
	"strconv"
	"strings"
	"time"
)

// AgeBucketCount is the number of age brackets in census data.
const AgeBucketCount = 11

// AgeBucket indexes an age bracket: 0 is under 10, 1 is teens, ... 10 is 100 and over.
type AgeBucket int

var ageBucketLabels = [AgeBucketCount]string{
	"10세미만", "10대", "20대", "30대", "40대", "50대", "60대", "70대", "80대", "90대", "100세이상",
}

// Label returns the Korean bracket label, e.g. "20대".
func (b AgeBucket) Label() string {
	if b < 0 || int(b) >= AgeBucketCount {
		return ""
	}
	return ageBucketLabels[b]
}

// ParseAgeBucket accepts a bracket label ("20대") or a decade number ("20", "20s").
func ParseAgeBucket(s string) (AgeBucket, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i, l := range ageBucketLabels {
		if s == l {
			return AgeBucket(i), true
		}
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "s"), "대")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	if n >= 100 {
		return AgeBucket(AgeBucketCount - 1), true
	}
	return AgeBucket(n / 10), true
}

// PopulationRecord is one census row for an administrative area and reference period.
type PopulationRecord struct {
	ID                 int64                 `json:"id"`
	AdministrativeCode string                `json:"administrative_code"`
	ReferenceDate      time.Time             `json:"reference_date"`
	Province           string                `json:"province"`
	City               string                `json:"city"`
	District           string                `json:"district"`
	Male               [AgeBucketCount]int64 `json:"male_by_age"`
	Female             [AgeBucketCount]int64 `json:"female_by_age"`
	TotalMale          int64                 `json:"total_male"`
	TotalFemale        int64                 `json:"total_female"`
	TotalPopulation    int64                 `json:"total_population"`
}

// Normalize fills missing gender totals from the age brackets and recomputes
// TotalPopulation as TotalMale+TotalFemale.
func (p *PopulationRecord) Normalize() {
	if p.TotalMale <= 0 {
		p.TotalMale = sum(p.Male[:])
	}
	if p.TotalFemale <= 0 {
		p.TotalFemale = sum(p.Female[:])
	}
	p.TotalPopulation = p.TotalMale + p.TotalFemale
}

// ByAge returns male+female per bracket.
func (p PopulationRecord) ByAge() [AgeBucketCount]int64 {
	var out [AgeBucketCount]int64
	for i := range out {
		out[i] = p.Male[i] + p.Female[i]
	}
	return out
}

func sum(v []int64) int64 {
	var t int64
	for _, n := range v {
		t += n
	}
	return t
}

// PopulationFilter selects population records. Region matches province or city
// exactly, or a district substring.
type PopulationFilter struct {
	Province      string
	City          string
	District      string
	Region        string
	ReferenceDate *time.Time
}

// PopulationPage is a page of population records.
type PopulationPage struct {
	Items      []PopulationRecord `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// AgeDistribution is a per-bracket population rollup.
type AgeDistribution struct {
	RecordCount int                    `json:"record_count"`
	Total       int64                  `json:"total"`
	Male        [AgeBucketCount]int64  `json:"male"`
	Female      [AgeBucketCount]int64  `json:"female"`
	Combined    [AgeBucketCount]int64  `json:"combined"`
	Labels      [AgeBucketCount]string `json:"labels"`
}

// Add accumulates a record into the distribution.
func (d *AgeDistribution) Add(p PopulationRecord) {
	d.RecordCount++
	for i := 0; i < AgeBucketCount; i++ {
		d.Male[i] += p.Male[i]
		d.Female[i] += p.Female[i]
		d.Combined[i] += p.Male[i] + p.Female[i]
		d.Total += p.Male[i] + p.Female[i]
	}
	d.Labels = ageBucketLabels
}

// RegionPopulation is the population of one district with its per-bracket breakdown.
type RegionPopulation struct {
	Province string                `json:"province"`
	City     string                `json:"city"`
	District string                `json:"district"`
	Total    int64                 `json:"total"`
	ByAge    [AgeBucketCount]int64 `json:"by_age"`
}

// Area returns a display name for the region.
func (r RegionPopulation) Area() string {
	return strings.TrimSpace(strings.Join(nonEmpty(r.Province, r.City, r.District), " "))
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
