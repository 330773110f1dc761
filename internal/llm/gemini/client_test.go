package gemini

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T, day string) *Client {
	t.Helper()
	now, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatal(err)
	}
	return &Client{
		model:     DefaultModel,
		usageFile: filepath.Join(t.TempDir(), usageName),
		now:       func() time.Time { return now },
	}
}

func TestUsageCounting(t *testing.T) {
	c := newTestClient(t, "2026-03-01")

	c.incrementUsage()
	c.incrementUsage()

	date, count := c.readUsage()
	if date != "2026-03-01" || count != 2 {
		t.Errorf("readUsage() = %q, %d, want 2026-03-01, 2", date, count)
	}
}

func TestUsageResetsOnNewDay(t *testing.T) {
	c := newTestClient(t, "2026-03-02")
	if err := os.WriteFile(c.usageFile, []byte("2026-03-01:1500"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := c.checkUsage(); err != nil {
		t.Errorf("checkUsage() error = %v, want nil on a new day", err)
	}

	c.incrementUsage()
	if _, count := c.readUsage(); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCheckUsage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"noFile", "", false},
		{"belowLimit", "2026-03-01:10", false},
		{"atLimit", "2026-03-01:1500", true},
		{"garbage", "not-a-usage-line", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "2026-03-01")
			if tt.content != "" {
				if err := os.WriteFile(c.usageFile, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}

			err := c.checkUsage()
			if (err != nil) != tt.wantErr {
				t.Errorf("checkUsage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompleteStopsAtDailyLimit(t *testing.T) {
	c := newTestClient(t, "2026-03-01")
	if err := os.WriteFile(c.usageFile, []byte("2026-03-01:1500"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Complete(t.Context(), "system", "user"); err == nil {
		t.Error("Complete() should fail once the daily limit is reached")
	}
}
