package service

import (
	"slices"
	"strings"

	"market-insight-api/internal/models"
)

type businessCategory string

const (
	categoryCafe        businessCategory = "cafe"
	categoryRestaurant  businessCategory = "restaurant"
	categoryBar         businessCategory = "bar"
	categoryConvenience businessCategory = "convenience"
	categoryBeauty      businessCategory = "beauty"
	categoryAcademy     businessCategory = "academy"
	categoryFitness     businessCategory = "fitness"
	categoryGeneral     businessCategory = "general"
)

// categoryKeywords is checked in order; the first matching keyword wins.
var categoryKeywords = []struct {
	category businessCategory
	keywords []string
}{
	{categoryCafe, []string{"카페", "커피", "베이커리", "디저트", "cafe", "coffee"}},
	{categoryBar, []string{"주점", "호프", "술집", "포차", "bar", "pub"}},
	{categoryConvenience, []string{"편의점", "convenience"}},
	{categoryBeauty, []string{"미용", "헤어", "네일", "뷰티", "beauty", "salon"}},
	{categoryAcademy, []string{"학원", "교습", "academy"}},
	{categoryFitness, []string{"헬스", "피트니스", "요가", "필라테스", "gym", "fitness"}},
	{categoryRestaurant, []string{"음식점", "식당", "레스토랑", "한식", "중식", "일식", "양식", "분식", "치킨", "restaurant"}},
}

func categorize(businessType string) businessCategory {
	bt := strings.ToLower(strings.TrimSpace(businessType))
	for _, c := range categoryKeywords {
		for _, k := range c.keywords {
			if strings.Contains(bt, k) {
				return c.category
			}
		}
	}
	return categoryGeneral
}

type ageWeights [models.AgeBucketCount]float64

// ageWeightsByCategory scales bracket population by how likely each bracket is to be a customer.
var ageWeightsByCategory = map[businessCategory]ageWeights{
	categoryCafe:        {0.3, 1.2, 1.5, 1.3, 1.0, 0.8, 0.6, 0.4, 0.3, 0.2, 0.1},
	categoryRestaurant:  {0.8, 0.7, 0.9, 1.4, 1.4, 1.1, 0.9, 0.7, 0.5, 0.3, 0.2},
	categoryBar:         {0, 0.1, 1.6, 1.4, 1.1, 0.8, 0.5, 0.3, 0.1, 0.1, 0},
	categoryConvenience: {0.6, 1.3, 1.4, 1.2, 1.0, 0.9, 0.8, 0.6, 0.4, 0.3, 0.2},
	categoryBeauty:      {0.3, 1.0, 1.5, 1.4, 1.2, 1.0, 0.7, 0.4, 0.2, 0.1, 0.1},
	categoryAcademy:     {1.3, 1.6, 0.8, 0.9, 1.0, 0.4, 0.2, 0.1, 0, 0, 0},
	categoryFitness:     {0.1, 0.9, 1.5, 1.4, 1.2, 0.9, 0.6, 0.3, 0.1, 0, 0},
}

var uniformWeights = ageWeights{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

func weightsFor(c businessCategory) ageWeights {
	if w, ok := ageWeightsByCategory[c]; ok {
		return w
	}
	return uniformWeights
}

// peakBucket is the bracket a category weighs highest, if it has a preference.
func peakBucket(c businessCategory) (models.AgeBucket, bool) {
	w, ok := ageWeightsByCategory[c]
	if !ok {
		return 0, false
	}
	best := 0
	for i := range w {
		if w[i] > w[best] {
			best = i
		}
	}
	return models.AgeBucket(best), true
}

var strategiesByCategory = map[businessCategory]map[models.AgeBucket][]string{
	categoryCafe: {
		1: {"Offer student discounts during exam seasons", "Build shareable seasonal drinks for short-form video"},
		2: {"Design photogenic seating and signature drinks for social media", "Run app stamp cards and SNS check-in events", "Provide outlets and Wi-Fi for study and remote work"},
		3: {"Run weekday morning take-out sets for commuters", "Offer subscription passes for regular office customers"},
		4: {"Add quiet seating and dessert pairings for meetings", "Promote family-size take-out bundles on weekends"},
	},
	categoryRestaurant: {
		2: {"Launch single-portion menus and late lunch deals", "Partner with delivery apps with review events"},
		3: {"Offer weekday lunch sets for office workers", "Promote kid-friendly menus for young families"},
		4: {"Prepare family set menus and group reservations", "Run loyalty points for repeat household visits"},
		5: {"Emphasize healthy and traditional menus", "Offer reservations for gatherings and celebrations"},
	},
	categoryBar: {
		2: {"Run weekday happy hours and themed nights", "Use SNS events for group bookings"},
		3: {"Offer after-work set menus for teams", "Provide private rooms for company dinners"},
	},
	categoryBeauty: {
		2: {"Promote trend styles through before/after posts", "Offer first-visit discounts through booking apps"},
		3: {"Offer membership packages with scheduled visits", "Open early and late slots for working customers"},
	},
	categoryAcademy: {
		0: {"Target parents with trial classes and progress reports", "Coordinate schedules with nearby elementary schools"},
		1: {"Run exam-focused intensive courses", "Share achievement cases with parent communities"},
	},
	categoryFitness: {
		2: {"Offer body-profile challenges and short-term passes", "Partner with nearby universities for student rates"},
		3: {"Sell lunch-time express sessions to office workers", "Offer couple and corporate memberships"},
	},
}

var defaultStrategies = map[businessCategory][]string{
	categoryCafe:        {"Keep a consistent signature menu", "Collect reviews on map services"},
	categoryRestaurant:  {"Optimize delivery menus and packaging", "Collect reviews on map services"},
	categoryBar:         {"Promote weekend events on SNS", "Offer group reservation discounts"},
	categoryConvenience: {"Stock items matched to nearby households", "Run 1+1 promotions on fast-moving goods"},
	categoryBeauty:      {"Offer booking-app first-visit discounts", "Share portfolio posts regularly"},
	categoryAcademy:     {"Run free level tests", "Send regular progress reports to parents"},
	categoryFitness:     {"Offer free trial sessions", "Run member referral rewards"},
	categoryGeneral:     {"Register on map and review services", "Run opening promotions for local residents", "Collect customer feedback to tune the offer"},
}

func strategiesFor(c businessCategory, top models.AgeBucket) []string {
	if byAge, ok := strategiesByCategory[c]; ok {
		if s, ok := byAge[top]; ok {
			return slices.Clone(s)
		}
	}
	if s, ok := defaultStrategies[c]; ok {
		return slices.Clone(s)
	}
	return slices.Clone(defaultStrategies[categoryGeneral])
}

type timingProfile struct {
	days  []string
	hours []string
}

var timingByCategory = map[businessCategory]timingProfile{
	categoryCafe:        {days: []string{"Saturday", "Sunday", "Friday"}, hours: []string{"08:00-10:00", "14:00-17:00"}},
	categoryRestaurant:  {days: []string{"Friday", "Saturday", "Sunday"}, hours: []string{"11:30-13:30", "18:00-20:00"}},
	categoryBar:         {days: []string{"Thursday", "Friday", "Saturday"}, hours: []string{"19:00-22:00", "22:00-01:00"}},
	categoryConvenience: {days: []string{"Friday", "Saturday", "Sunday"}, hours: []string{"07:00-09:00", "21:00-24:00"}},
	categoryBeauty:      {days: []string{"Saturday", "Sunday", "Wednesday"}, hours: []string{"10:00-13:00", "18:00-20:00"}},
	categoryAcademy:     {days: []string{"Monday", "Tuesday", "Wednesday"}, hours: []string{"15:00-18:00", "19:00-21:00"}},
	categoryFitness:     {days: []string{"Monday", "Tuesday", "Wednesday"}, hours: []string{"06:00-08:00", "19:00-22:00"}},
}

var genericTiming = timingProfile{
	days:  []string{"Friday", "Saturday", "Sunday"},
	hours: []string{"12:00-14:00", "18:00-20:00"},
}

// hoursByAge lists when each bracket is most reachable; it refines category hours.
var hoursByAge = map[models.AgeBucket][]string{
	1: {"16:00-19:00", "21:00-23:00"},
	2: {"20:00-23:00", "12:00-14:00"},
	3: {"12:00-13:00", "19:00-21:00"},
	4: {"12:00-13:00", "20:00-22:00"},
	5: {"09:00-11:00", "19:00-21:00"},
	6: {"08:00-10:00", "15:00-17:00"},
}

var seasonalNotes = map[businessCategory][4]string{
	categoryCafe:       {"Spring: push seasonal blossom menus and terrace seating", "Summer: lead with iced drinks and bingsu", "Autumn: promote seasonal lattes and study-friendly hours", "Winter: feature hot drinks, cakes and year-end gift sets"},
	categoryRestaurant: {"Spring: promote outing and picnic take-out sets", "Summer: add cold noodle and stamina menus", "Autumn: feature harvest ingredients and group gatherings", "Winter: promote year-end party reservations and hot soups"},
	categoryBar:        {"Spring: run new-semester and new-hire gathering deals", "Summer: open terrace and cold beer promotions", "Autumn: feature seasonal snacks and sports viewing events", "Winter: push year-end party packages"},
}

var genericSeasonalNotes = [4]string{
	"Spring: run new-season opening promotions",
	"Summer: adjust hours for evening foot traffic",
	"Autumn: target returning routines with loyalty offers",
	"Winter: plan year-end and holiday campaigns",
}

func seasonalNote(c businessCategory, season int) string {
	if notes, ok := seasonalNotes[c]; ok {
		return notes[season]
	}
	return genericSeasonalNotes[season]
}

// fallbackTargets is the assumed customer mix when no census data is available.
var fallbackTargets = map[businessCategory][2]struct {
	bucket models.AgeBucket
	share  float64
}{
	categoryCafe:        {{2, 35}, {3, 25}},
	categoryRestaurant:  {{3, 28}, {4, 26}},
	categoryBar:         {{2, 40}, {3, 30}},
	categoryConvenience: {{2, 25}, {3, 22}},
	categoryBeauty:      {{2, 32}, {3, 28}},
	categoryAcademy:     {{1, 45}, {0, 30}},
	categoryFitness:     {{2, 34}, {3, 30}},
	categoryGeneral:     {{3, 22}, {4, 21}},
}

// fallbackAreas are well-known Seoul commercial districts per category.
var fallbackAreas = map[businessCategory][]string{
	categoryCafe:       {"서울특별시 마포구 서교동", "서울특별시 성동구 성수동", "서울특별시 강남구 역삼동", "서울특별시 종로구 삼청동", "서울특별시 용산구 한남동"},
	categoryRestaurant: {"서울특별시 강남구 역삼동", "서울특별시 영등포구 여의도동", "서울특별시 중구 명동", "서울특별시 송파구 잠실동", "서울특별시 마포구 연남동"},
	categoryBar:        {"서울특별시 마포구 서교동", "서울특별시 용산구 이태원동", "서울특별시 강남구 신사동", "서울특별시 종로구 익선동", "서울특별시 광진구 화양동"},
	categoryAcademy:    {"서울특별시 강남구 대치동", "서울특별시 양천구 목동", "서울특별시 노원구 중계동", "서울특별시 송파구 잠실동", "서울특별시 서초구 반포동"},
	categoryGeneral:    {"서울특별시 강남구 역삼동", "서울특별시 송파구 잠실동", "서울특별시 마포구 서교동", "서울특별시 영등포구 여의도동", "서울특별시 중구 명동"},
}
