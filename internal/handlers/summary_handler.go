package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner/internal/services"
)

// SummaryHandler handles the dashboard aggregation views.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetMonthlySummary handles the period dashboard aggregation.
// @Summary     Get monthly summary
// @Description Get realized and planned totals, balance, spend ratio, and category breakdown for a period
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period key YYYY-MM (default current month)"
// @Success     200 {object} services.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	selected, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetMonthlySummary(userID, selected)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetGoalSeries handles the goal progress chart series.
// @Summary     Get goal progress series
// @Description Get per-goal saved/remaining percentages for the goals chart
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.GoalProgress "Goal progress series"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/goals [get]
func (h *SummaryHandler) GetGoalSeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.summaryService.GetGoalSeries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": series})
}
