package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planner/internal/services"
)

// AlertHandler handles the bill alert list.
type AlertHandler struct {
	alertService services.AlertServicer
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService services.AlertServicer) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// GetBills handles the bill alert list for a period.
// @Summary     Get bills
// @Description Get the period's bills: paid expense transactions plus overdue or soon-due planned expenses
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period key YYYY-MM (default current month)"
// @Success     200 {array} services.Bill "Bills sorted by due date"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *AlertHandler) GetBills(c *gin.Context) {
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

	bills, err := h.alertService.CollectBills(userID, selected, time.Now().UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}
