package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "financogram/internal/errors"
	"financogram/internal/listing"
	"financogram/internal/marketdata"
	"financogram/internal/pagination"
)

// NewsCategories maps each news category to the keywords that place an
// article in it.
var NewsCategories = map[string][]string{
	"markets": {"market", "trading", "sensex", "nifty"},
	"stocks":  {"stock", "shares", "equity", "ipo"},
	"economy": {"economy", "gdp", "inflation", "interest"},
	"tech":    {"tech", "technology", "startup", "fintech"},
}

// newsFetchTimeout bounds a feed refresh, which outlives the request that
// triggered it.
const newsFetchTimeout = 30 * time.Second

var newsFields = listing.Fields[marketdata.Article]{
	Search:        func(a marketdata.Article) []string { return []string{a.Title, a.Description} },
	MatchCategory: matchNewsCategory,
	Sort: map[string]func(a, b marketdata.Article) int{
		"published_at": func(a, b marketdata.Article) int { return a.PublishedAt.Compare(b.PublishedAt) },
		"title":        listing.Text(func(a marketdata.Article) string { return a.Title }),
		"source":       listing.Text(func(a marketdata.Article) string { return a.Source }),
	},
}

// matchNewsCategory reports whether the article's title or description
// mentions a keyword of category. Unknown categories match nothing.
func matchNewsCategory(a marketdata.Article, category string) bool {
	keywords, ok := NewsCategories[strings.ToLower(category)]
	if !ok {
		return false
	}
	text := strings.ToLower(a.Title + " " + a.Description)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// newsService serves the market news feed.
type newsService struct {
	source   HeadlineSource
	query    string
	cache    *marketdata.Cache[string, []marketdata.Article]
	group    singleflight.Group
	pageSize int
}

// NewNewsService creates a new NewsServicer searching for query.
func NewNewsService(source HeadlineSource, query string, ttl time.Duration, pageSize int) NewsServicer {
	return &newsService{
		source:   source,
		query:    query,
		cache:    marketdata.NewCache[string, []marketdata.Article](ttl),
		pageSize: pageSize,
	}
}

// ListNews returns a page of articles, newest first unless another order is
// requested.
func (s *newsService) ListNews(ctx context.Context, q listing.Query) (*pagination.PageResponse[marketdata.Article], error) {
	articles, err := s.articles(ctx)
	if err != nil {
		return nil, err
	}

	q.PageRequest.Defaults(s.pageSize)
	return listing.FilterSortPaginate(articles, q, newsFields)
}

func (s *newsService) articles(ctx context.Context) ([]marketdata.Article, error) {
	if articles, ok := s.cache.Get(s.query); ok {
		return articles, nil
	}

	ch := s.group.DoChan(s.query, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), newsFetchTimeout)
		defer cancel()

		articles, err := s.source.Everything(fetchCtx, s.query)
		if err != nil {
			return nil, err
		}
		s.cache.Set(s.query, articles)
		return articles, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		if errors.Is(res.Err, marketdata.ErrMissingAPIKey) {
			return nil, apperrors.WithMessage(apperrors.ErrLookupFailure, "News feed is not configured")
		}
		return nil, apperrors.Wrap(apperrors.ErrLookupFailure, res.Err)
	}
	return res.Val.([]marketdata.Article), nil
}
