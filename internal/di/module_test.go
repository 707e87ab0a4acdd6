package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/akalomiris/reportly/internal/app"
	"github.com/akalomiris/reportly/internal/config"
	"github.com/akalomiris/reportly/internal/storage/postgres"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:       ":0",
		DatabaseURI:      "postgres://stub",
		ReportsDir:       t.TempDir(),
		WorkerPoolSize:   1,
		RenderQueueSize:  1,
		ShutdownTimeout:  time.Millisecond,
		DisplayUTCOffset: 3,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.ReportFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected report facade instance")
	}
}
