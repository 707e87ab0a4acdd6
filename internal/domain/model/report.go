package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus tracks the rendering lifecycle of a report.
type ReportStatus string

const (
	ReportStatusRequested ReportStatus = "REQUESTED"
	ReportStatusRendering ReportStatus = "RENDERING"
	ReportStatusAvailable ReportStatus = "AVAILABLE"
	ReportStatusFailed    ReportStatus = "FAILED"
)

// Report is the task-tracking record for one requested PDF. The rendered
// bytes never live here; they are stored on disk keyed by UID.
type Report struct {
	UID         uuid.UUID
	CustomerID  *int64
	Status      ReportStatus
	RequestedAt time.Time
	UpdatedAt   time.Time
}

// NewReport mints a report in the initial state.
func NewReport() *Report {
	return &Report{UID: uuid.New(), Status: ReportStatusRequested}
}
