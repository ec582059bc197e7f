package marketdata

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultNewsAPIBaseURL is the NewsAPI host.
	DefaultNewsAPIBaseURL = "https://newsapi.org"
	newsPageSize          = 100
)

// ErrMissingAPIKey is returned when the news client has no API key.
var ErrMissingAPIKey = errors.New("news API key is not configured")

// Article is a news headline.
type Article struct {
	Source      string    `json:"source"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type newsResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// NewsClient searches headlines on NewsAPI.
type NewsClient struct {
	client
	apiKey string
}

// NewNewsClient creates a NewsAPI client authenticating with apiKey.
func NewNewsClient(baseURL, apiKey string, opts ...Option) *NewsClient {
	if baseURL == "" {
		baseURL = DefaultNewsAPIBaseURL
	}
	c := &NewsClient{
		client: newClient("newsapi", strings.TrimRight(baseURL, "/"), opts),
		apiKey: apiKey,
	}
	c.header.Set("X-Api-Key", apiKey)
	return c
}

// Everything returns the newest English articles matching query.
func (c *NewsClient) Everything(ctx context.Context, query string) ([]Article, error) {
	if c.apiKey == "" {
		return nil, &FetchError{Source: c.source, Key: query, Err: ErrMissingAPIKey}
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(newsPageSize))

	var resp newsResponse
	if err := c.getJSON(ctx, query, "/v2/everything", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, &FetchError{Source: c.source, Key: query, Err: errors.New(resp.Code + ": " + resp.Message)}
	}

	articles := make([]Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		articles = append(articles, Article{
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
