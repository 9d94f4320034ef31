package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/money"
	"planner/internal/services"
)

// GoalHandler handles savings goals.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a goal.
// Amounts are decimal strings stored in cents.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required,min=1,max=255"`
	TargetAmount  string              `json:"target_amount" binding:"required"`
	CurrentAmount string              `json:"current_amount"`
	Deadline      *time.Time          `json:"deadline"`
	Priority      models.GoalPriority `json:"priority" binding:"omitempty,goal_priority"`
}

// GoalProgressRequest represents the request payload for adding progress.
type GoalProgressRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a savings goal with a target amount
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	target, err := money.ParseCents(req.TargetAmount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
		return
	}

	var current int64
	if req.CurrentAmount != "" {
		current, err = money.ParseCents(req.CurrentAmount)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
			return
		}
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, target, current, req.Deadline, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "target_amount": target})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing the user's goals.
// @Summary     Get goals
// @Description Get all savings goals in creation order
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Goal "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// AddGoalProgress handles adding saved money to a goal.
// @Summary     Add goal progress
// @Description Increment a goal's saved amount by a positive value
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Goal ID"
// @Param       request body GoalProgressRequest true "Progress amount"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/progress [post]
func (h *GoalHandler) AddGoalProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
		return
	}

	goal, err := h.goalService.AddGoalProgress(userID, goalID, amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_GOAL_PROGRESS", "goal", goalID, c.ClientIP(),
		map[string]interface{}{"amount": amount})

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete goal
// @Description Delete a goal by ID
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_GOAL", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
