package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sync": map[string]any{
			"batchSize":      500,
			"connectTimeout": "15s",
		},
		"scheduler": map[string]any{
			"interval": "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SYNC_BATCHSIZE", want: "sync.batchSize"},
		{envKey: "SYNC_CONNECTTIMEOUT", want: "sync.connectTimeout"},
		{envKey: "SCHEDULER_INTERVAL", want: "scheduler.interval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestSyncConfigOffsetDuration(t *testing.T) {
	tests := []struct {
		offset string
		want   time.Duration
	}{
		{offset: "+05:30", want: 5*time.Hour + 30*time.Minute},
		{offset: "-03:00", want: -3 * time.Hour},
		{offset: "+00:00", want: 0},
		{offset: "8", want: 8 * time.Hour},
		{offset: "", want: 5*time.Hour + 30*time.Minute},        // default
		{offset: "bogus", want: 5*time.Hour + 30*time.Minute},   // fallback
		{offset: "+05:xx", want: 5*time.Hour + 30*time.Minute},  // fallback
	}

	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			cfg := SyncConfig{Offset: tt.offset}
			if got := cfg.OffsetDuration(); got != tt.want {
				t.Fatalf("OffsetDuration(%q) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}
