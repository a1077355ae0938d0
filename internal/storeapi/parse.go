package storeapi

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"market-insight-api/internal/models"
)

const (
	resultCodeOK     = "00"
	resultCodeNoData = "03"
)

type envelope struct {
	Header struct {
		ResultCode string `json:"resultCode"`
		ResultMsg  string `json:"resultMsg"`
	} `json:"header"`
	Body *struct {
		Items      json.RawMessage `json:"items"`
		TotalCount text            `json:"totalCount"`
		PageNo     text            `json:"pageNo"`
		NumOfRows  text            `json:"numOfRows"`
	} `json:"body"`
}

// text accepts a JSON string, number or null. Numbers keep their literal form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(strings.TrimSpace(s))
	default:
		*t = text(b)
	}
	return nil
}

func (t text) int() int {
	n, err := strconv.Atoi(string(t))
	if err != nil {
		return 0
	}
	return n
}

// rawStore mirrors one item of the registry response.
type rawStore struct {
	StoreNumber    text `json:"bizesId"`
	StoreName      text `json:"bizesNm"`
	BranchName     text `json:"brchNm"`
	CategoryCode   text `json:"indsLclsCd"`
	BusinessCode   text `json:"indsSclsCd"`
	BusinessName   text `json:"indsSclsNm"`
	IndustryCode   text `json:"ksicCd"`
	ProvinceName   text `json:"ctprvnNm"`
	CityName       text `json:"signguNm"`
	AdminDongName  text `json:"adongNm"`
	LegalDongName  text `json:"ldongNm"`
	JibunAddress   text `json:"lnoAdr"`
	RoadAddress    text `json:"rdnmAdr"`
	BuildingName   text `json:"bldNm"`
	Floor          text `json:"flrInfo"`
	Room           text `json:"hoInfo"`
	Longitude      text `json:"lon"`
	Latitude       text `json:"lat"`
	OpenDate       text `json:"opnYmd"`
	CloseDate      text `json:"clsYmd"`
	BusinessStatus text `json:"bsnStusNm"`
}

// decodeItems accepts a bare list, {"item": [...]}, {"item": {...}} or an empty value.
func decodeItems(raw json.RawMessage) ([]rawStore, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var items []rawStore
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &models.ParseError{Reason: "items list", Err: err}
		}
		return items, nil
	case '{':
		var wrapped struct {
			Item json.RawMessage `json:"item"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, &models.ParseError{Reason: "items object", Err: err}
		}
		item := bytes.TrimSpace(wrapped.Item)
		if len(item) == 0 || bytes.Equal(item, []byte("null")) {
			return nil, nil
		}
		if item[0] == '[' {
			return decodeItems(item)
		}
		var single rawStore
		if err := json.Unmarshal(item, &single); err != nil {
			return nil, &models.ParseError{Reason: "single item", Err: err}
		}
		return []rawStore{single}, nil
	default:
		return nil, &models.ParseError{Reason: "unexpected items shape"}
	}
}

// toRecord maps an upstream item to a StoreRecord. It reports false when the
// item lacks a store number, a name or usable coordinates.
func (r rawStore) toRecord() (models.StoreRecord, bool) {
	lon := parseFloat(string(r.Longitude))
	lat := parseFloat(string(r.Latitude))
	if r.StoreNumber == "" || r.StoreName == "" || lon == nil || lat == nil {
		return models.StoreRecord{}, false
	}
	if _, err := models.NewCoordinates(*lat, *lon); err != nil {
		return models.StoreRecord{}, false
	}

	district := string(r.AdminDongName)
	if district == "" {
		district = string(r.LegalDongName)
	}

	rec := models.StoreRecord{
		StoreNumber:            string(r.StoreNumber),
		StoreName:              string(r.StoreName),
		BranchName:             string(r.BranchName),
		BusinessCode:           string(r.BusinessCode),
		BusinessName:           string(r.BusinessName),
		Latitude:               *lat,
		Longitude:              *lon,
		JibunAddress:           string(r.JibunAddress),
		RoadAddress:            string(r.RoadAddress),
		Province:               string(r.ProvinceName),
		City:                   string(r.CityName),
		District:               district,
		BuildingName:           string(r.BuildingName),
		Floor:                  string(r.Floor),
		Room:                   string(r.Room),
		OpenDate:               parseDate(string(r.OpenDate)),
		CloseDate:              parseDate(string(r.CloseDate)),
		StandardIndustryCode:   string(r.IndustryCode),
		CommercialCategoryCode: string(r.CategoryCode),
	}
	rec.BusinessStatus = parseStatus(string(r.BusinessStatus), rec.CloseDate)
	return rec, true
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseDate parses an 8-digit YYYYMMDD date.
func parseDate(s string) *time.Time {
	if len(s) != 8 {
		return nil
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return nil
	}
	return &t
}

func parseStatus(s string, closeDate *time.Time) models.BusinessStatus {
	switch {
	case strings.Contains(s, "폐업"):
		return models.BusinessStatusClosed
	case strings.Contains(s, "휴업"):
		return models.BusinessStatusSuspended
	case s == "" && closeDate != nil:
		return models.BusinessStatusClosed
	default:
		return models.BusinessStatusOpen
	}
}
