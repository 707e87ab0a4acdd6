package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akalomiris/reportly/internal/domain/model"
)

// ReportRepository tracks report generation state in the relational store.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) (*model.Report, error)
	GetByUID(ctx context.Context, uid uuid.UUID) (*model.Report, error)
	UpdateStatus(ctx context.Context, uid uuid.UUID, status model.ReportStatus) error
}
