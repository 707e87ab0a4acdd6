package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akalomiris/reportly/internal/usecase"
)

// RenderScheduler accepts report identifiers for background rendering.
type RenderScheduler interface {
	Enqueue(ctx context.Context, uid uuid.UUID) error
}

// ReportFacade aggregates the report operations exposed over HTTP.
type ReportFacade struct {
	reports   *usecase.ReportUseCase
	scheduler RenderScheduler
}

// NewReportFacade constructs ReportFacade.
func NewReportFacade(reports *usecase.ReportUseCase, scheduler RenderScheduler) *ReportFacade {
	return &ReportFacade{reports: reports, scheduler: scheduler}
}

// QueueReport records a new report and schedules its rendering. The
// identifier is returned immediately; completion is observed by polling
// the artifact.
func (f *ReportFacade) QueueReport(ctx context.Context) (uuid.UUID, error) {
	report, err := f.reports.Request(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("request report: %w", err)
	}
	if err := f.scheduler.Enqueue(ctx, report.UID); err != nil {
		return uuid.Nil, fmt.Errorf("schedule report %s: %w", report.UID, err)
	}
	return report.UID, nil
}

// FetchReport returns stored report bytes by identifier.
func (f *ReportFacade) FetchReport(ctx context.Context, uid uuid.UUID) ([]byte, error) {
	return f.reports.Fetch(ctx, uid)
}

// ListReports enumerates identifiers of every stored report.
func (f *ReportFacade) ListReports(ctx context.Context) ([]string, error) {
	return f.reports.List(ctx)
}
