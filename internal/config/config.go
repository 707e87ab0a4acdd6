package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	ReportsDir       string
	WorkerPoolSize   int
	RenderQueueSize  int
	ShutdownTimeout  time.Duration
	DisplayUTCOffset int
	MaintenanceMode  bool
	SeedSampleData   bool
	PDFBinaryPath    string
}

const (
	defaultRunAddress       = ":8080"
	defaultReportsDir       = "reports"
	defaultWorkerPoolSize   = 4
	defaultRenderQueueSize  = 32
	defaultShutdownTimeout  = 10 * time.Second
	defaultDisplayUTCOffset = 3
)

// DisplayLocation returns the fixed timezone used for timestamps in rendered reports.
func (c *Config) DisplayLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.DisplayUTCOffset), c.DisplayUTCOffset*3600)
}

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		ReportsDir:       getString(lookup, "REPORTS_DIR", defaultReportsDir),
		WorkerPoolSize:   getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		RenderQueueSize:  getInt(lookup, "RENDER_QUEUE_SIZE", defaultRenderQueueSize),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		DisplayUTCOffset: getInt(lookup, "DISPLAY_UTC_OFFSET", defaultDisplayUTCOffset),
		MaintenanceMode:  getBool(lookup, "MAINTENANCE_MODE", false),
		SeedSampleData:   getBool(lookup, "SEED_SAMPLE_DATA", true),
		PDFBinaryPath:    getString(lookup, "WKHTMLTOPDF_PATH", ""),
	}

	fs := flag.NewFlagSet("reportly", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ReportsDir, "reports-dir", cfg.ReportsDir, "Directory for generated PDF reports")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent render workers")
	fs.IntVar(&cfg.RenderQueueSize, "render-queue", cfg.RenderQueueSize, "Render job queue capacity")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.DisplayUTCOffset, "display-offset", cfg.DisplayUTCOffset, "UTC offset in hours for report timestamps")
	fs.BoolVar(&cfg.MaintenanceMode, "maintenance", cfg.MaintenanceMode, "Serve maintenance payload on all non-docs routes")
	fs.StringVar(&cfg.PDFBinaryPath, "pdf-binary", cfg.PDFBinaryPath, "Path to the wkhtmltopdf binary")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.RenderQueueSize <= 0 {
		cfg.RenderQueueSize = defaultRenderQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ReportsDir == "" {
		cfg.ReportsDir = defaultReportsDir
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
