package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/report"
	"fluxo/internal/services"
)

// defaultDailyWindow is the number of daily buckets the movement chart
// shows when the caller does not ask for a specific window.
const defaultDailyWindow = 10

// DashboardHandler handles dashboard aggregate requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// parseDashboardRange reads the from/to query parameters and builds the
// aggregation range. When both are absent the range defaults to the
// current calendar month, matching the dashboard's initial view. An
// inverted pair is rejected, never swapped or silently emptied.
func parseDashboardRange(c *gin.Context) (report.DateRange, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if v := c.Query("from"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return report.DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from date, use RFC3339 or YYYY-MM-DD")
		}
		from = t
	}

	if v := c.Query("to"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return report.DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to date, use RFC3339 or YYYY-MM-DD")
		}
		to = t
	}

	return report.NewDateRange(from, to)
}

// parseSettledFilter reads the optional settled query parameter.
// Absent means no status restriction.
func parseSettledFilter(c *gin.Context) (*bool, error) {
	v := c.Query("settled")
	switch v {
	case "":
		return nil, nil
	case "true":
		settled := true
		return &settled, nil
	case "false":
		settled := false
		return &settled, nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid settled, must be true or false")
}

// GetSummary returns income, expenses, and balance for a date range
// @Summary     Get finance summary
// @Description Get income, expense, and balance totals for the authenticated user within a date range
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (RFC3339 or YYYY-MM-DD, default: start of current month)"
// @Param       to   query string false "Range end (RFC3339 or YYYY-MM-DD, default: end of current month)"
// @Success     200 {object} report.Summary "Summary totals"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Unclassifiable transaction kind in source data"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	r, err := parseDashboardRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(userID, r)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown returns expense totals grouped by category
// @Summary     Get expense categories
// @Description Get expense totals grouped by category within a date range, optionally filtered by settled status
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from    query string false "Range start (RFC3339 or YYYY-MM-DD, default: start of current month)"
// @Param       to      query string false "Range end (RFC3339 or YYYY-MM-DD, default: end of current month)"
// @Param       settled query bool   false "Filter by settled status (absent = all)"
// @Success     200 {array} report.CategoryGroup "Category groups"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Unclassifiable transaction kind in source data"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/categories [get]
func (h *DashboardHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	r, err := parseDashboardRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settled, err := parseSettledFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.dashboardService.GetCategoryBreakdown(userID, r, settled)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": groups})
}

// GetDailySeries returns the daily income/expense chart series
// @Summary     Get daily movement series
// @Description Get per-day income and expense totals for the most recent days within a date range
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from   query string false "Range start (RFC3339 or YYYY-MM-DD, default: start of current month)"
// @Param       to     query string false "Range end (RFC3339 or YYYY-MM-DD, default: end of current month)"
// @Param       window query int    false "Number of most recent days to keep (default 10)"
// @Success     200 {array} report.DailyBucket "Daily buckets in chronological order"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Unclassifiable transaction kind in source data"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/daily [get]
func (h *DashboardHandler) GetDailySeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	r, err := parseDashboardRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window := defaultDailyWindow
	if v := c.Query("window"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid window, must be a positive integer"))
			return
		}
		window = parsed
	}

	series, err := h.dashboardService.GetDailySeries(userID, r, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily": series})
}
