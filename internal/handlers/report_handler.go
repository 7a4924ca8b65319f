package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pukassein/pukatracker/internal/errors"
	"github.com/pukassein/pukatracker/internal/ledger"
	"github.com/pukassein/pukatracker/internal/services"
)

// ReportHandler handles derived, read-only report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary handles the retrieval of the dashboard summary
// @Summary     Get dashboard summary
// @Description Get the current month's income and expenses, the cash balance, and the outstanding credit card debt
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} services.Summary "Dashboard summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetBudget handles the retrieval of the monthly budget report
// @Summary     Get budget report
// @Description Get per-group budget allocations and spending progress for the current month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Success     200 {object} ledger.BudgetReport "Budget report"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *ReportHandler) GetBudget(c *gin.Context) {
	report, err := h.reportService.GetBudget(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": report})
}

// GetStatistics handles the retrieval of the date-range spending analysis
// @Summary     Get spending statistics
// @Description Get income and expense totals and the per-category expense breakdown over a date range. Defaults to the current month so far.
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       from query string false "Range start, inclusive (RFC3339 or YYYY-MM-DD; default: first of the current month)"
// @Param       to   query string false "Range end, inclusive (RFC3339 or YYYY-MM-DD; default: now)"
// @Success     200 {object} ledger.Statistics "Spending statistics"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics [get]
func (h *ReportHandler) GetStatistics(c *gin.Context) {
	now := time.Now()
	from := ledger.MonthStart(now)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseRangeEnd(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		to = t
	}

	stats, err := h.reportService.GetStatistics(from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// parseRangeEnd parses an inclusive range end. A date-only value covers the
// whole day, so it is pushed to the day's last instant.
func parseRangeEnd(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Nanosecond), nil
}
