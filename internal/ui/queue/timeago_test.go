package queue

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"absent timestamp", "", "unknown"},
		{"garbage timestamp", "yesterday-ish", "unknown"},
		{"just published", now.Format(time.RFC3339), "0 minutes ago"},
		{"30 minutes", now.Add(-30 * time.Minute).Format(time.RFC3339), "30 minutes ago"},
		{"59 minutes", now.Add(-59 * time.Minute).Format(time.RFC3339), "59 minutes ago"},
		{"exactly an hour", now.Add(-60 * time.Minute).Format(time.RFC3339), "1 hours ago"},
		{"5 hours", now.Add(-5 * time.Hour).Format(time.RFC3339), "5 hours ago"},
		{"23 hours", now.Add(-23 * time.Hour).Format(time.RFC3339), "23 hours ago"},
		{"exactly a day", now.Add(-24 * time.Hour).Format(time.RFC3339), "1 days ago"},
		{"3 days", now.Add(-72 * time.Hour).Format(time.RFC3339), "3 days ago"},
		{"naive layout", now.Add(-2 * time.Hour).Format("2006-01-02T15:04:05"), "2 hours ago"},
		{"future timestamp clamps", now.Add(10 * time.Minute).Format(time.RFC3339), "0 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeAgo(tt.input, now)
			if got != tt.expected {
				t.Errorf("TimeAgo(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
