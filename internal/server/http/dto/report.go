package dto

// QueueReportResponse carries the identifier of a freshly queued report.
type QueueReportResponse struct {
	UID string `json:"uid"`
}

// ErrorResponse explains a failed request.
type ErrorResponse struct {
	Reason string `json:"reason"`
}
