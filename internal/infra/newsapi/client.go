package newsapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/maviles7/dailydose/internal/observability/metrics"
	"github.com/maviles7/dailydose/internal/usecase/ingest"
)

// Client fetches top headlines from a configured news provider.
// It implements the ingest.HeadlineFetcher interface: any upstream failure
// is logged, counted, and reported as an empty batch. There is no retry,
// backoff, or circuit breaking on this path; the next scheduled run is the
// retry.
//
// Thread safety: Client is safe for concurrent use.
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Client with the given configuration.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), 1),
	}
}

// theNewsAPIResponse is the thenewsapi.com top-headlines payload.
type theNewsAPIResponse struct {
	Data []struct {
		Source      string   `json:"source"`
		Author      string   `json:"author"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		URL         string   `json:"url"`
		ImageURL    string   `json:"image_url"`
		PublishedAt string   `json:"published_at"`
		Snippet     string   `json:"snippet"`
		Categories  []string `json:"categories"`
	} `json:"data"`
}

// newsAPIResponse is the newsapi.org top-headlines payload.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// FetchTop fetches the current top headlines from the configured provider.
// This method implements the ingest.HeadlineFetcher interface.
func (c *Client) FetchTop(ctx context.Context) []ingest.Headline {
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		c.warnAndCount("transport_error", start, "outbound rate limiter", err)
		return nil
	}

	body, ok := c.doRequest(ctx, start)
	if !ok {
		return nil
	}

	headlines, err := c.decode(body)
	if err != nil {
		c.warnAndCount("decode_error", start, "decode response", err)
		return nil
	}

	duration := time.Since(start)
	metrics.RecordNewsFetch(c.config.Provider, "success", duration, len(headlines))
	slog.Info("fetched top headlines",
		slog.String("provider", c.config.Provider),
		slog.Int("headlines", len(headlines)),
		slog.Duration("duration", duration))

	return headlines
}

// doRequest executes the HTTP GET and returns the bounded response body.
func (c *Client) doRequest(ctx context.Context, start time.Time) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(), nil)
	if err != nil {
		c.warnAndCount("transport_error", start, "create request", err)
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.warnAndCount("transport_error", start, "execute request", err)
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.warnAndCount("http_error", start, "unexpected status "+strconv.Itoa(resp.StatusCode), nil)
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodySize))
	if err != nil {
		c.warnAndCount("transport_error", start, "read response body", err)
		return nil, false
	}

	return body, true
}

// buildURL assembles the provider endpoint with the API key and filters as
// query parameters. Each provider names its parameters differently.
func (c *Client) buildURL() string {
	q := url.Values{}

	switch c.config.Provider {
	case ProviderNewsAPI:
		q.Set("apiKey", c.config.APIKey)
		q.Set("country", c.config.Locale)
		q.Set("pageSize", strconv.Itoa(c.config.Limit))
	default:
		q.Set("api_token", c.config.APIKey)
		q.Set("locale", c.config.Locale)
		q.Set("limit", strconv.Itoa(c.config.Limit))
	}

	return c.config.BaseURL + "?" + q.Encode()
}

// decode parses the provider payload into raw headlines.
func (c *Client) decode(body []byte) ([]ingest.Headline, error) {
	if c.config.Provider == ProviderNewsAPI {
		var payload newsAPIResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}

		headlines := make([]ingest.Headline, 0, len(payload.Articles))
		for _, a := range payload.Articles {
			headlines = append(headlines, ingest.Headline{
				SourceName:  a.Source.Name,
				Author:      a.Author,
				Title:       a.Title,
				Description: a.Description,
				URL:         a.URL,
				ImageURL:    a.URLToImage,
				PublishedAt: a.PublishedAt,
				Content:     a.Content,
			})
		}
		return headlines, nil
	}

	var payload theNewsAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	headlines := make([]ingest.Headline, 0, len(payload.Data))
	for _, d := range payload.Data {
		headlines = append(headlines, ingest.Headline{
			SourceName:  d.Source,
			Author:      d.Author,
			Title:       d.Title,
			Description: d.Description,
			URL:         d.URL,
			ImageURL:    d.ImageURL,
			PublishedAt: d.PublishedAt,
			Content:     d.Snippet,
			Categories:  d.Categories,
		})
	}
	return headlines, nil
}

// warnAndCount logs a fetch failure and records the failure metric.
// The API key never appears in log output.
func (c *Client) warnAndCount(result string, start time.Time, msg string, err error) {
	metrics.RecordNewsFetch(c.config.Provider, result, time.Since(start), 0)
	slog.Warn("news fetch failed",
		slog.String("provider", c.config.Provider),
		slog.String("reason", msg),
		slog.Any("error", err))
}
