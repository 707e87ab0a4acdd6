package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
	"github.com/akalomiris/reportly/internal/server/http/dto"
)

const pdfContentType = "application/pdf"

// ReportHandler manages report-related endpoints.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Queue handles POST /queue-report/. It returns the identifier
// immediately; rendering happens in the background.
func (h *ReportHandler) Queue(c *gin.Context) {
	uid, err := h.facade.QueueReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Reason: "Failed to queue report."})
		return
	}
	c.JSON(http.StatusOK, dto.QueueReportResponse{UID: uid.String()})
}

// List handles GET /reports.
func (h *ReportHandler) List(c *gin.Context) {
	ids, err := h.facade.ListReports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Reason: "Failed to list reports."})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

// Get handles GET /get-report/:uid. A 404 covers "still rendering",
// "failed", and "never requested" alike.
func (h *ReportHandler) Get(c *gin.Context) {
	uid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Reason: "Invalid report id."})
		return
	}

	content, err := h.facade.FetchReport(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Reason: fmt.Sprintf("Report with id %s not found.", uid)})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Reason: "Failed to read report."})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="report.pdf"`)
	c.Data(http.StatusOK, pdfContentType, content)
}
