package queue

import (
	"fmt"
	"time"
)

// timestamp layouts the backend has been seen emitting. Ingestion stores
// whatever the upstream feed provided, so both zoned and naive forms occur.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// TimeAgo renders a published-at timestamp as a coarse relative label.
// Buckets are minutes under an hour, hours under a day, days beyond that.
// A missing or unparseable timestamp renders as "unknown".
func TimeAgo(publishedAt string, now time.Time) string {
	if publishedAt == "" {
		return "unknown"
	}

	var t time.Time
	var err error
	for _, layout := range timeLayouts {
		t, err = time.Parse(layout, publishedAt)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "unknown"
	}

	minutes := int(now.Sub(t).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/1440)
	}
}
