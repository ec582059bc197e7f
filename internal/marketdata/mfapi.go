package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financogram/internal/portfolio"
)

// DefaultMFAPIBaseURL is the public mfapi.in endpoint.
const DefaultMFAPIBaseURL = "https://api.mfapi.in"

// mfapiDateLayout is the dd-mm-yyyy layout mfapi uses for NAV dates.
const mfapiDateLayout = "02-01-2006"

// Scheme is an entry of the mutual fund scheme list.
type Scheme struct {
	Code int    `json:"schemeCode"`
	Name string `json:"schemeName"`
}

// SchemeMeta describes a mutual fund scheme.
type SchemeMeta struct {
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
	SchemeCode     int    `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
}

// NAVPoint is the NAV of a scheme on one date.
type NAVPoint struct {
	Date time.Time       `json:"date"`
	NAV  decimal.Decimal `json:"nav"`
}

// SchemeDetail is a scheme with its NAV history, newest first.
type SchemeDetail struct {
	Meta    SchemeMeta
	History []NAVPoint
}

type mfapiSchemeResponse struct {
	Meta SchemeMeta `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// MFAPIClient reads mutual fund schemes and NAVs from mfapi.in.
type MFAPIClient struct {
	client
	quotes *Cache[string, portfolio.Quote]
}

// NewMFAPIClient creates a client for baseURL. Quotes served to LookupNAV
// are cached for quoteTTL.
func NewMFAPIClient(baseURL string, quoteTTL time.Duration, opts ...Option) *MFAPIClient {
	if baseURL == "" {
		baseURL = DefaultMFAPIBaseURL
	}
	return &MFAPIClient{
		client: newClient("mfapi", strings.TrimRight(baseURL, "/"), opts),
		quotes: NewCache[string, portfolio.Quote](quoteTTL),
	}
}

// ListSchemes returns a window of the scheme list.
func (c *MFAPIClient) ListSchemes(ctx context.Context, limit, offset int) ([]Scheme, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var schemes []Scheme
	if err := c.getJSON(ctx, "scheme list", "/mf", q, &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// Scheme returns the metadata and full NAV history of a scheme. A scheme
// without any NAV is reported as ErrNotFound, and an unparsable NAV or date
// as ErrMalformed.
func (c *MFAPIClient) Scheme(ctx context.Context, code string) (*SchemeDetail, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, &FetchError{Source: c.source, Key: code, Err: ErrNotFound}
	}

	var raw mfapiSchemeResponse
	if err := c.getJSON(ctx, code, "/mf/"+url.PathEscape(code), nil, &raw); err != nil {
		return nil, err
	}
	if len(raw.Data) == 0 {
		return nil, &FetchError{Source: c.source, Key: code, Err: ErrNotFound}
	}

	detail := &SchemeDetail{Meta: raw.Meta, History: make([]NAVPoint, 0, len(raw.Data))}
	for _, p := range raw.Data {
		nav, err := decimal.NewFromString(strings.TrimSpace(p.NAV))
		if err != nil {
			return nil, &FetchError{Source: c.source, Key: code, Err: fmt.Errorf("%w: nav %q", ErrMalformed, p.NAV)}
		}
		date, err := time.Parse(mfapiDateLayout, p.Date)
		if err != nil {
			return nil, &FetchError{Source: c.source, Key: code, Err: fmt.Errorf("%w: date %q", ErrMalformed, p.Date)}
		}
		detail.History = append(detail.History, NAVPoint{Date: date, NAV: nav})
	}
	return detail, nil
}

// LookupNAV returns the latest and previous NAV of a scheme. A scheme with a
// single NAV reports it as both.
func (c *MFAPIClient) LookupNAV(ctx context.Context, fundID string) (portfolio.Quote, error) {
	if q, ok := c.quotes.Get(fundID); ok {
		return q, nil
	}

	detail, err := c.Scheme(ctx, fundID)
	if err != nil {
		return portfolio.Quote{}, err
	}

	q := portfolio.Quote{Current: detail.History[0].NAV, Previous: detail.History[0].NAV}
	if len(detail.History) > 1 {
		q.Previous = detail.History[1].NAV
	}
	if err := q.Validate(); err != nil {
		return portfolio.Quote{}, &FetchError{Source: c.source, Key: fundID, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	c.quotes.Set(fundID, q)
	return q, nil
}

var _ portfolio.NAVLookup = (*MFAPIClient)(nil)
