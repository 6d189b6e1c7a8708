package mandel

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 512 || cfg.Height != 512 {
		t.Errorf("size = %dx%d, want 512x512", cfg.Width, cfg.Height)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "output")
	}
	if cfg.IterationLimit != 50 {
		t.Errorf("IterationLimit = %d, want 50", cfg.IterationLimit)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Caption {
		t.Error("Caption should default to false")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	valid.Output = "set.png"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"zero height", func(c *Config) { c.Height = 0 }, ErrInvalidDimensions},
		{"negative width", func(c *Config) { c.Width = -4 }, ErrInvalidDimensions},
		{"too wide", func(c *Config) { c.Width = MaxDimension + 1 }, ErrTooLarge},
		{"max size", func(c *Config) { c.Width, c.Height = MaxDimension, 1 }, nil},
		{"max side both ways", func(c *Config) { c.Width, c.Height = MaxDimension, MaxDimension }, ErrTooLarge},
		{"pixel budget", func(c *Config) { c.Width, c.Height = 8192, 8192 }, nil},
		{"over pixel budget", func(c *Config) { c.Width, c.Height = 8192, 8193 }, ErrTooLarge},
		{"max workers", func(c *Config) { c.Workers = MaxWorkers }, nil},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, ErrTooManyWorkers},
		{"zero workers", func(c *Config) { c.Workers = 0 }, nil},
		{"zero limit", func(c *Config) { c.IterationLimit = 0 }, ErrInvalidLimit},
		{"limit 255", func(c *Config) { c.IterationLimit = 255 }, nil},
		{"missing output", func(c *Config) { c.Output = "" }, ErrMissingOutput},
		{"no extension", func(c *Config) { c.Output = "set" }, ErrUnsupportedFormat},
		{"unknown extension", func(c *Config) { c.Output = "set.xyz" }, ErrUnsupportedFormat},
		{"bmp", func(c *Config) { c.Output = "set.bmp" }, nil},
		{"jpeg", func(c *Config) { c.Output = "set.JPG" }, nil},
		{"jpeg bad quality", func(c *Config) { c.Output = "set.jpg"; c.JPEGQuality = 0 }, ErrInvalidQuality},
		{"png ignores quality", func(c *Config) { c.JPEGQuality = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_OutputPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "set.png"

	want := filepath.Join("output", "set.png")
	if got := cfg.OutputPath(); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}
