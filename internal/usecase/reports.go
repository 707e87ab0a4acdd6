package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akalomiris/reportly/internal/domain/model"
	"github.com/akalomiris/reportly/internal/domain/repository"
)

// ReportStore abstracts durable persistence of rendered report bytes.
type ReportStore interface {
	Put(uid uuid.UUID, content []byte) error
	Get(uid uuid.UUID) ([]byte, error)
	List() ([]string, error)
}

// Renderer turns order views into a PDF document.
type Renderer interface {
	Render(views []model.OrderView, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase coordinates the report lifecycle: request, render, store,
// fetch. The relational row tracks state; the bytes live in the store.
type ReportUseCase struct {
	reports  repository.ReportRepository
	orders   *OrderUseCase
	renderer Renderer
	files    ReportStore
	now      func() time.Time
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(reports repository.ReportRepository, orders *OrderUseCase, renderer Renderer, files ReportStore) *ReportUseCase {
	return &ReportUseCase{
		reports:  reports,
		orders:   orders,
		renderer: renderer,
		files:    files,
		now:      time.Now,
	}
}

// Request mints a fresh report identifier and records it as requested.
// Rendering happens later; the caller gets the identifier immediately.
func (u *ReportUseCase) Request(ctx context.Context) (*model.Report, error) {
	return u.reports.Create(ctx, model.NewReport())
}

// Generate runs the full pipeline for one report: gather orders, render
// the PDF, persist it, and record the terminal state. Any failure marks
// the report failed before propagating.
func (u *ReportUseCase) Generate(ctx context.Context, uid uuid.UUID) error {
	if err := u.reports.UpdateStatus(ctx, uid, model.ReportStatusRendering); err != nil {
		return fmt.Errorf("mark rendering: %w", err)
	}

	views, err := u.orders.GatherOrders(ctx)
	if err != nil {
		u.markFailed(ctx, uid)
		return fmt.Errorf("gather orders: %w", err)
	}

	pdf, err := u.renderer.Render(views, u.now())
	if err != nil {
		u.markFailed(ctx, uid)
		return fmt.Errorf("render report %s: %w", uid, err)
	}

	if err := u.files.Put(uid, pdf); err != nil {
		u.markFailed(ctx, uid)
		return fmt.Errorf("store report %s: %w", uid, err)
	}

	return u.reports.UpdateStatus(ctx, uid, model.ReportStatusAvailable)
}

// Fetch returns the stored bytes for the identifier. ErrNotFound covers
// "still rendering", "failed", and "never requested" alike.
func (u *ReportUseCase) Fetch(ctx context.Context, uid uuid.UUID) ([]byte, error) {
	return u.files.Get(uid)
}

// List enumerates identifiers of every stored report.
func (u *ReportUseCase) List(ctx context.Context) ([]string, error) {
	return u.files.List()
}

// Status exposes the tracked report row for operators.
func (u *ReportUseCase) Status(ctx context.Context, uid uuid.UUID) (*model.Report, error) {
	return u.reports.GetByUID(ctx, uid)
}

func (u *ReportUseCase) markFailed(ctx context.Context, uid uuid.UUID) {
	// Best effort: the originating error is the one worth reporting.
	_ = u.reports.UpdateStatus(ctx, uid, model.ReportStatusFailed)
}
