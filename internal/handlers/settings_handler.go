package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/services"
)

// SettingsHandler handles the couple's planner display settings.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest represents the settings update payload. Empty fields
// are left unchanged.
type UpdateSettingsRequest struct {
	PlannerName    string `json:"planner_name" binding:"max=100"`
	PartnerOneName string `json:"partner_one_name" binding:"max=100"`
	PartnerTwoName string `json:"partner_two_name" binding:"max=100"`
}

// GetSettings handles retrieving the planner settings.
// @Summary     Get settings
// @Description Get the planner name and partner display names
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.PlannerSettings "Planner settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles updating the planner settings.
// @Summary     Update settings
// @Description Update the planner name and partner display names
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Updated settings"
// @Success     200 {object} models.PlannerSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, req.PlannerName, req.PartnerOneName, req.PartnerTwoName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTINGS", "planner_settings", settings.ID, c.ClientIP(),
		map[string]interface{}{"planner_name": req.PlannerName})

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
