package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	decisions := []struct {
		itemID string
		title  string
		action Action
	}{
		{"item-1", "عنوان أول", ActionApprove},
		{"item-2", "عنوان ثان", ActionReject},
		{"item-2", "عنوان ثان", ActionRestore},
	}
	for _, d := range decisions {
		if err := j.Record(ctx, d.itemID, d.title, d.action); err != nil {
			t.Fatalf("Record(%s): %v", d.itemID, err)
		}
	}

	entries, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Most recent first
	if entries[0].Action != ActionRestore || entries[0].ItemID != "item-2" {
		t.Errorf("entries[0] = %s %s, want item-2 restore", entries[0].ItemID, entries[0].Action)
	}
	if entries[2].Action != ActionApprove {
		t.Errorf("entries[2].Action = %s, want approve", entries[2].Action)
	}
	if entries[0].Title != "عنوان ثان" {
		t.Errorf("entries[0].Title = %q, want the recorded title", entries[0].Title)
	}
	if entries[0].At.IsZero() {
		t.Error("entries[0].At should be populated")
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := j.Record(ctx, "item", "t", ActionApprove); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}

	// A non-positive limit falls back to the default
	entries, err = j.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries with default limit, want 5", len(entries))
	}
}

func TestCountByAction(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := j.Record(ctx, "a", "t", ActionApprove); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := j.Record(ctx, "b", "t", ActionReject); err != nil {
		t.Fatalf("Record: %v", err)
	}

	counts, err := j.CountByAction(ctx)
	if err != nil {
		t.Fatalf("CountByAction: %v", err)
	}
	if counts[ActionApprove] != 3 {
		t.Errorf("approve count = %d, want 3", counts[ActionApprove])
	}
	if counts[ActionReject] != 1 {
		t.Errorf("reject count = %d, want 1", counts[ActionReject])
	}
	if counts[ActionRestore] != 0 {
		t.Errorf("restore count = %d, want 0", counts[ActionRestore])
	}
}

func TestEmptyJournal(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	entries, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from an empty journal, want 0", len(entries))
	}

	counts, err := j.CountByAction(ctx)
	if err != nil {
		t.Fatalf("CountByAction: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("got %d action groups from an empty journal, want 0", len(counts))
	}
}
