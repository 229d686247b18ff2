package api

// Status is a moderation state of a news item. Each status maps to exactly
// one queue tab; the backend is the only authority over transitions.
type Status string

const (
	StatusNew      Status = "new"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// StatusSuccess is the application-level success marker used by every
// mutation envelope.
const StatusSuccess = "success"

// Recognized settings keys. The backend may return additional keys (it also
// reports the AI model); the console only edits these two.
const (
	KeyFetchInterval = "FETCH_INTERVAL_MINUTES"
	KeyMaxNewsAge    = "MAX_NEWS_AGE_HOURS"
)

// NewsItem is an ingested news entry as the backend reports it.
// ArticleAr stays empty until the item has been approved and an article
// generated for it.
type NewsItem struct {
	ID          string `json:"id"`
	TitleAr     string `json:"title_ar"`
	SummaryAr   string `json:"summary_ar"`
	ArticleAr   string `json:"article_ar"`
	SourceName  string `json:"source_name"`
	OriginalURL string `json:"original_url"`
	PublishedAt string `json:"published_at"`
	Category    string `json:"category"`
	Status      Status `json:"status"`
}

// Source is a configured ingestion origin. Enabled is an integer on the
// wire (the backend stores it as SQLite 0/1), not a bool.
type Source struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Enabled int    `json:"enabled"`
}

// ListResponse is the paginated news listing envelope.
type ListResponse struct {
	Data  []NewsItem `json:"data"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// Counts holds the per-tab item totals.
type Counts struct {
	New      int `json:"new"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// StatusResponse is the plain mutation envelope.
type StatusResponse struct {
	Status string `json:"status"`
}

// ApproveResponse carries the generated article back from an approval.
type ApproveResponse struct {
	Status    string `json:"status"`
	ArticleAr string `json:"article_ar"`
}

// FetchResponse reports how many items a manual fetch added.
type FetchResponse struct {
	Status  string `json:"status"`
	Fetched int    `json:"fetched"`
}

// OK reports application-level success.
func (r *StatusResponse) OK() bool { return r != nil && r.Status == StatusSuccess }
