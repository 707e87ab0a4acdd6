package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Generator exposes the subset of application functionality required by
// the render workers.
type Generator interface {
	Generate(ctx context.Context, uid uuid.UUID) error
}

// ReportGenerator renders queued reports on a bounded worker pool. The
// HTTP path enqueues an identifier and returns; workers run the render
// pipeline in the background.
type ReportGenerator struct {
	generator Generator
	workers   int
	logger    *slog.Logger

	jobs   chan uuid.UUID
	wg     sync.WaitGroup
	cancel context.CancelFunc
	runCtx context.Context
	mu     sync.Mutex
}

// NewReportGenerator constructs the render worker pool.
func NewReportGenerator(generator Generator, workers, queueSize int, logger *slog.Logger) *ReportGenerator {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &ReportGenerator{
		generator: generator,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan uuid.UUID, queueSize),
	}
}

// Start launches background rendering.
func (g *ReportGenerator) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	g.runCtx = runCtx
	g.cancel = cancel

	for i := 0; i < g.workers; i++ {
		g.wg.Add(1)
		go g.worker(runCtx)
	}
}

// Stop cancels in-flight work and waits for all workers to finish.
// Identifiers still queued are abandoned; their report rows stay in a
// non-terminal state for operators to spot.
func (g *ReportGenerator) Stop() {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.mu.Unlock()

	g.wg.Wait()
}

// Enqueue submits a report identifier for rendering. It blocks when the
// queue is full until a slot frees up or a context is done.
func (g *ReportGenerator) Enqueue(ctx context.Context, uid uuid.UUID) error {
	g.mu.Lock()
	runCtx := g.runCtx
	g.mu.Unlock()
	if runCtx == nil {
		runCtx = context.Background()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-runCtx.Done():
		return runCtx.Err()
	case g.jobs <- uid:
		return nil
	}
}

func (g *ReportGenerator) worker(ctx context.Context) {
	defer g.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case uid, ok := <-g.jobs:
			if !ok {
				return
			}
			g.handleReport(ctx, uid)
		}
	}
}

func (g *ReportGenerator) handleReport(ctx context.Context, uid uuid.UUID) {
	if err := g.generator.Generate(ctx, uid); err != nil {
		g.logger.Error("report generation failed",
			slog.String("report", uid.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	g.logger.Info("report rendered", slog.String("report", uid.String()))
}
