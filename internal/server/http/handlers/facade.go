package handlers

import (
	"context"

	"github.com/google/uuid"
)

// ReportFacade describes the report operations required by HTTP handlers.
type ReportFacade interface {
	QueueReport(ctx context.Context) (uuid.UUID, error)
	FetchReport(ctx context.Context, uid uuid.UUID) ([]byte, error)
	ListReports(ctx context.Context) ([]string, error)
}
