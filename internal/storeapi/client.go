package storeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"market-insight-api/internal/metrics"
	"market-insight-api/internal/models"
)

// MaxPageSize is the largest numOfRows the registry accepts.
const MaxPageSize = 1000

const storeListPath = "/storeListInDong"

// RegionQuery selects one page of stores in a province or one of its sub-regions.
type RegionQuery struct {
	ProvinceCode  string
	SubRegionCode string
	Page          int
	PageSize      int
}

// Page is one parsed page of the registry response.
type Page struct {
	TotalCount int
	Records    []models.StoreRecord
	// Discarded counts items dropped for missing id, name or coordinates.
	Discarded int
}

// Client fetches storefront records from the national commercial registry.
type Client struct {
	baseURL    string
	serviceKey string
	timeout    time.Duration
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a registry client. Each call is bounded by timeout.
func NewClient(baseURL, serviceKey string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "store-registry",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// the caller giving up is not evidence the registry is down
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		timeout:    timeout,
		httpClient: httpClient,
		cb:         cb,
	}
}

// FetchStores requests one page of stores for a region and parses it.
// Network, HTTP and result-code failures are returned as *models.UpstreamUnavailableError,
// malformed payloads as *models.ParseError.
func (c *Client) FetchStores(ctx context.Context, q RegionQuery) (*Page, error) {
	if q.ProvinceCode == "" {
		return nil, &models.ValidationError{Field: "province_code", Reason: "is required"}
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	region := q.ProvinceCode
	if q.SubRegionCode != "" {
		region = q.SubRegionCode
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.get(ctx, q)
	})
	if err != nil {
		kind := "http"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			kind = "breaker_open"
		}
		metrics.UpstreamFailuresTotal.WithLabelValues(kind).Inc()
		return nil, &models.UpstreamUnavailableError{Region: region, Err: err}
	}

	page, err := parsePage(body)
	if err != nil {
		var upErr *models.UpstreamUnavailableError
		if errors.As(err, &upErr) {
			upErr.Region = region
			metrics.UpstreamFailuresTotal.WithLabelValues("result_code").Inc()
		} else {
			metrics.UpstreamFailuresTotal.WithLabelValues("parse").Inc()
		}
		return nil, err
	}

	if page.Discarded > 0 {
		metrics.RecordsDiscardedTotal.Add(float64(page.Discarded))
		log.Debug().Str("region", region).Int("discarded", page.Discarded).Msg("discarded incomplete store records")
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, q RegionQuery) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	if q.SubRegionCode != "" {
		params.Set("divId", "signguCd")
		params.Set("key", q.SubRegionCode)
	} else {
		params.Set("divId", "ctprvnCd")
		params.Set("key", q.ProvinceCode)
	}
	params.Set("pageNo", strconv.Itoa(q.Page))
	params.Set("numOfRows", strconv.Itoa(q.PageSize))
	params.Set("type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+storeListPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	metrics.UpstreamRequestsTotal.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.UpstreamDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	log.Debug().Str("key", params.Get("key")).Int("page", q.Page).Int("bytes", len(body)).Msg("store registry response")
	return body, nil
}

func parsePage(body []byte) (*Page, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &models.ParseError{Reason: "envelope", Err: err}
	}

	switch env.Header.ResultCode {
	case resultCodeOK, "":
	case resultCodeNoData:
		return &Page{}, nil
	default:
		return nil, &models.UpstreamUnavailableError{
			Err: fmt.Errorf("result code %s: %s", env.Header.ResultCode, env.Header.ResultMsg),
		}
	}
	if env.Body == nil {
		return nil, &models.ParseError{Reason: "missing body"}
	}

	items, err := decodeItems(env.Body.Items)
	if err != nil {
		return nil, err
	}

	page := &Page{TotalCount: env.Body.TotalCount.int()}
	for _, item := range items {
		rec, ok := item.toRecord()
		if !ok {
			page.Discarded++
			continue
		}
		page.Records = append(page.Records, rec)
	}
	return page, nil
}
