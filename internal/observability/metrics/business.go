package metrics

import (
	"time"
)

// RecordNewsFetch records the outcome of an upstream news API call.
// Result should be one of "success", "http_error", "transport_error", "decode_error".
func RecordNewsFetch(provider, result string, duration time.Duration, headlines int) {
	NewsFetchAttemptsTotal.WithLabelValues(provider, result).Inc()
	NewsFetchDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if result == "success" {
		NewsFetchHeadlines.WithLabelValues(provider).Observe(float64(headlines))
	}
}

// RecordIngestOutcome records the outcome of a single ingested record.
// Result should be one of "inserted", "updated", "skipped", "error".
func RecordIngestOutcome(result string) {
	ArticlesIngestedTotal.WithLabelValues(result).Inc()
}

// RecordIngestRun records the wall-clock duration of a full ingest run.
func RecordIngestRun(duration time.Duration) {
	IngestRunDuration.Observe(duration.Seconds())
}

// RecordContentFetchSuccess records a successful content fetch operation.
func RecordContentFetchSuccess(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordContentFetchFailed records a failed content fetch operation.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordContentFetchSkipped records a skipped content fetch operation.
// This occurs when upstream content is already long enough.
func RecordContentFetchSkipped() {
	ContentFetchAttemptsTotal.WithLabelValues("skipped").Inc()
}

// UpdateArticlesTotal updates the total count of articles in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// UpdateSourcesTotal updates the total count of sources in the database.
func UpdateSourcesTotal(count int) {
	SourcesTotal.Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_articles", "upsert_article").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
