package fs2dt_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
)

func TestExportConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    fs2dt.ExportConfig
		wantError bool
	}{
		{
			name:   "valid config",
			config: fs2dt.ExportConfig{CatalogPath: "/home/u/photos.db", Limit: "/"},
		},
		{
			name:   "valid dry run",
			config: fs2dt.ExportConfig{CatalogPath: "photos.db", Limit: "/pics", DryRun: true},
		},
		{
			name:      "missing catalog",
			config:    fs2dt.ExportConfig{Limit: "/"},
			wantError: true,
		},
		{
			name:      "missing limit",
			config:    fs2dt.ExportConfig{CatalogPath: "photos.db"},
			wantError: true,
		},
		{
			name:      "force with dry run",
			config:    fs2dt.ExportConfig{CatalogPath: "photos.db", Limit: "/", DryRun: true, Force: true},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, fs2dt.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestExportConfig_TimeLocation(t *testing.T) {
	cfg := fs2dt.ExportConfig{}
	if cfg.TimeLocation() != time.Local {
		t.Error("Expected time.Local when Location is unset")
	}

	cfg.Location = time.UTC
	if cfg.TimeLocation() != time.UTC {
		t.Error("Expected configured location")
	}
}

func TestExportSummary_String(t *testing.T) {
	s := fs2dt.ExportSummary{Photos: 3, Written: 4, Unchanged: 1, Failed: 0}
	want := "3 photos: 4 sidecars written, 1 unchanged, 0 failed"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
