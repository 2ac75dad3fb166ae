// Standalone diagnostic for the upstream news provider and the article
// store. Run it against a configured environment to answer "is ingestion
// broken because of the provider, the network, or the database?".
//
// Usage:
//
//	NEWS_API_KEY=... DATABASE_URL=... go run scripts/diagnose_provider.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ProviderDiagnostic is the result of probing the provider endpoint.
type ProviderDiagnostic struct {
	Provider     string `json:"provider"`
	Endpoint     string `json:"endpoint"`
	Status       string `json:"status"` // "OK", "HTTP_ERROR", "PARSE_ERROR", "EMPTY", "TIMEOUT"
	HTTPCode     int    `json:"http_code"`
	ItemCount    int    `json:"item_count"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

// StoreDiagnostic summarizes the state of the article store.
type StoreDiagnostic struct {
	Status        string `json:"status"` // "OK", "UNREACHABLE", "SKIPPED"
	Sources       int    `json:"sources"`
	Articles      int    `json:"articles"`
	LatestArticle string `json:"latest_article,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

type report struct {
	Provider ProviderDiagnostic `json:"provider"`
	Store    StoreDiagnostic    `json:"store"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out := report{
		Provider: probeProvider(ctx),
		Store:    probeStore(ctx),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if out.Provider.Status != "OK" || (out.Store.Status != "OK" && out.Store.Status != "SKIPPED") {
		os.Exit(1)
	}
}

func probeProvider(ctx context.Context) ProviderDiagnostic {
	provider := envOr("NEWS_API_PROVIDER", "thenewsapi")
	apiKey := os.Getenv("NEWS_API_KEY")

	diag := ProviderDiagnostic{Provider: provider}
	if apiKey == "" {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = "NEWS_API_KEY is not set"
		return diag
	}

	endpoint, err := buildEndpoint(provider, apiKey)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	// Never print the API key.
	diag.Endpoint = redactQuery(endpoint)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	diag.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		diag.Status = "TIMEOUT"
		diag.ErrorMessage = err.Error()
		return diag
	}
	defer func() { _ = resp.Body.Close() }()

	diag.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return diag
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	count, err := countItems(provider, body)
	if err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	diag.ItemCount = count
	if count == 0 {
		diag.Status = "EMPTY"
		return diag
	}
	diag.Status = "OK"
	return diag
}

func buildEndpoint(provider, apiKey string) (string, error) {
	locale := envOr("NEWS_API_LOCALE", "us")
	switch provider {
	case "thenewsapi":
		base := envOr("NEWS_API_BASE_URL", "https://api.thenewsapi.com/v1/news/top")
		q := url.Values{}
		q.Set("api_token", apiKey)
		q.Set("locale", locale)
		q.Set("limit", "3")
		return base + "?" + q.Encode(), nil
	case "newsapi":
		base := envOr("NEWS_API_BASE_URL", "https://newsapi.org/v2/top-headlines")
		q := url.Values{}
		q.Set("apiKey", apiKey)
		q.Set("country", locale)
		q.Set("pageSize", "3")
		return base + "?" + q.Encode(), nil
	default:
		return "", fmt.Errorf("unknown provider %q", provider)
	}
}

func countItems(provider string, body []byte) (int, error) {
	switch provider {
	case "thenewsapi":
		var payload struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return 0, err
		}
		return len(payload.Data), nil
	default:
		var payload struct {
			Status   string            `json:"status"`
			Articles []json.RawMessage `json:"articles"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return 0, err
		}
		if payload.Status != "ok" {
			return 0, fmt.Errorf("provider status %q", payload.Status)
		}
		return len(payload.Articles), nil
	}
}

func probeStore(ctx context.Context) StoreDiagnostic {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return StoreDiagnostic{Status: "SKIPPED", ErrorMessage: "DATABASE_URL is not set"}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return StoreDiagnostic{Status: "UNREACHABLE", ErrorMessage: err.Error()}
	}
	defer func() { _ = db.Close() }()

	diag := StoreDiagnostic{}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sources").Scan(&diag.Sources); err != nil {
		return StoreDiagnostic{Status: "UNREACHABLE", ErrorMessage: err.Error()}
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&diag.Articles); err != nil {
		return StoreDiagnostic{Status: "UNREACHABLE", ErrorMessage: err.Error()}
	}

	var latest sql.NullTime
	if err := db.QueryRowContext(ctx, "SELECT MAX(published_at) FROM articles").Scan(&latest); err == nil && latest.Valid {
		diag.LatestArticle = latest.Time.UTC().Format(time.RFC3339)
	}

	diag.Status = "OK"
	return diag
}

func redactQuery(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
