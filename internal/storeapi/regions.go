package storeapi

// Region is an administrative sub-division crawled as one unit.
type Region struct {
	ProvinceCode  string
	SubRegionCode string
	Name          string
}

// SeoulProvinceCode is the ctprvnCd of Seoul.
const SeoulProvinceCode = "11"

// SeoulDistricts lists the 25 autonomous districts of Seoul by signguCd.
var SeoulDistricts = []Region{
	{SeoulProvinceCode, "11110", "종로구"},
	{SeoulProvinceCode, "11140", "중구"},
	{SeoulProvinceCode, "11170", "용산구"},
	{SeoulProvinceCode, "11200", "성동구"},
	{SeoulProvinceCode, "11215", "광진구"},
	{SeoulProvinceCode, "11230", "동대문구"},
	{SeoulProvinceCode, "11260", "중랑구"},
	{SeoulProvinceCode, "11290", "성북구"},
	{SeoulProvinceCode, "11305", "강북구"},
	{SeoulProvinceCode, "11320", "도봉구"},
	{SeoulProvinceCode, "11350", "노원구"},
	{SeoulProvinceCode, "11380", "은평구"},
	{SeoulProvinceCode, "11410", "서대문구"},
	{SeoulProvinceCode, "11440", "마포구"},
	{SeoulProvinceCode, "11470", "양천구"},
	{SeoulProvinceCode, "11500", "강서구"},
	{SeoulProvinceCode, "11530", "구로구"},
	{SeoulProvinceCode, "11545", "금천구"},
	{SeoulProvinceCode, "11560", "영등포구"},
	{SeoulProvinceCode, "11590", "동작구"},
	{SeoulProvinceCode, "11620", "관악구"},
	{SeoulProvinceCode, "11650", "서초구"},
	{SeoulProvinceCode, "11680", "강남구"},
	{SeoulProvinceCode, "11710", "송파구"},
	{SeoulProvinceCode, "11740", "강동구"},
}

// Label returns the most specific code of the region.
func (r Region) Label() string {
	if r.SubRegionCode != "" {
		return r.SubRegionCode
	}
	return r.ProvinceCode
}
