package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apperrors "financogram/internal/errors"
	"financogram/internal/listing"
	"financogram/internal/marketdata"
	"financogram/internal/portfolio"
)

const (
	catalogueKey = "catalogue"

	defaultBuildTimeout = 2 * time.Minute
)

var fundFields = listing.Fields[Fund]{
	Search:   func(f Fund) []string { return []string{f.Name, f.FundHouse, f.ID} },
	Category: func(f Fund) string { return f.Category },
	Sort: map[string]func(a, b Fund) int{
		"name":     listing.Text(func(f Fund) string { return f.Name }),
		"category": listing.Text(func(f Fund) string { return f.Category }),
		"nav":      func(a, b Fund) int { return a.NAV.Cmp(b.NAV) },
	},
}

// FundServiceConfig controls how the catalogue is built.
type FundServiceConfig struct {
	Limit       int
	Offset      int
	Concurrency int
	CacheTTL    time.Duration
	PageSize    int
	// BuildTimeout bounds a catalogue rebuild, which outlives the request
	// that triggered it.
	BuildTimeout time.Duration
}

// fundService builds the mutual fund catalogue from the scheme list.
type fundService struct {
	source SchemeSource
	cfg    FundServiceConfig
	cache  *marketdata.Cache[string, []Fund]
	group  singleflight.Group
	log    *zap.SugaredLogger
}

// NewFundService creates a new FundServicer.
func NewFundService(source SchemeSource, cfg FundServiceConfig, log *zap.SugaredLogger) FundServicer {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = portfolio.DefaultConcurrency
	}
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = defaultBuildTimeout
	}
	return &fundService{
		source: source,
		cfg:    cfg,
		cache:  marketdata.NewCache[string, []Fund](cfg.CacheTTL),
		log:    log,
	}
}

// ListFunds returns a page of the catalogue.
func (s *fundService) ListFunds(ctx context.Context, q listing.Query) (*FundList, error) {
	funds, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}

	q.PageRequest.Defaults(s.cfg.PageSize)
	page, err := listing.FilterSortPaginate(funds, q, fundFields)
	if err != nil {
		return nil, err
	}
	return &FundList{PageResponse: *page, Categories: categories(funds)}, nil
}

// GetFund returns one scheme with its full NAV history, oldest first.
func (s *fundService) GetFund(ctx context.Context, id string) (*FundDetail, error) {
	detail, err := s.source.Scheme(ctx, id)
	if err != nil {
		if errors.Is(err, marketdata.ErrNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, err)
	}

	history := slices.Clone(detail.History)
	slices.SortStableFunc(history, func(a, b marketdata.NAVPoint) int { return a.Date.Compare(b.Date) })

	return &FundDetail{
		Fund:       newFund(id, detail),
		SchemeType: detail.Meta.SchemeType,
		History:    history,
	}, nil
}

// catalogue returns the cached catalogue, rebuilding it at most once at a
// time when it has expired. The rebuild runs detached from ctx so that a
// cancelled caller neither aborts it for the other waiters nor leaves a
// partial catalogue behind.
func (s *fundService) catalogue(ctx context.Context) ([]Fund, error) {
	if funds, ok := s.cache.Get(catalogueKey); ok {
		return funds, nil
	}

	ch := s.group.DoChan(catalogueKey, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.BuildTimeout)
		defer cancel()

		funds, err := s.build(buildCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(catalogueKey, funds)
		return funds, nil
	})

	select {
	case <-ctx.Done():
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Fund), nil
	}
}

// build fetches the scheme list and the latest NAV of every scheme. Schemes
// that cannot be fetched are left out. A build that was cut short, or that
// could not price a single scheme, fails instead of yielding a catalogue.
func (s *fundService) build(ctx context.Context) ([]Fund, error) {
	schemes, err := s.source.ListSchemes(ctx, s.cfg.Limit, s.cfg.Offset)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, err)
	}

	funds := make([]*Fund, len(schemes))
	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, scheme := range schemes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			detail, err := s.source.Scheme(ctx, code)
			if err != nil {
				s.log.Debugw("Dropping scheme from catalogue", "scheme", code, "error", err)
				return
			}
			f := newFund(code, detail)
			funds[i] = &f
		}(i, strconv.Itoa(scheme.Code))
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, fmt.Errorf("catalogue build interrupted: %w", err))
	}

	out := make([]Fund, 0, len(funds))
	for _, f := range funds {
		if f != nil {
			out = append(out, *f)
		}
	}
	if len(out) == 0 && len(schemes) > 0 {
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, fmt.Errorf("none of %d schemes could be fetched", len(schemes)))
	}
	s.log.Infow("Built fund catalogue", "schemes", len(schemes), "funds", len(out))
	return out, nil
}

func newFund(id string, detail *marketdata.SchemeDetail) Fund {
	f := Fund{
		ID:        id,
		Name:      detail.Meta.SchemeName,
		FundHouse: detail.Meta.FundHouse,
		Category:  detail.Meta.SchemeCategory,
		RiskLevel: portfolio.RiskForCategory(detail.Meta.SchemeCategory),
	}
	if len(detail.History) > 0 {
		f.NAV = detail.History[0].NAV
		f.NAVDate = detail.History[0].Date
	}
	return f
}

// categories returns the distinct non-empty categories, sorted.
func categories(funds []Fund) []string {
	out := make([]string, 0)
	for _, f := range funds {
		if f.Category != "" && !slices.Contains(out, f.Category) {
			out = append(out, f.Category)
		}
	}
	slices.Sort(out)
	return out
}
