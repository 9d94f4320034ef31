package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/money"
	"planner/internal/period"
	"planner/internal/services"
)

// BudgetHandler handles planned budget entries.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetItemRequest represents the request payload for creating or updating a
// budget item. Amount is a decimal string and is stored in cents. Installments
// of two or more expand creation into a monthly batch; it is ignored on update.
type BudgetItemRequest struct {
	Description  string              `json:"description" binding:"required,min=1,max=255"`
	Category     string              `json:"category" binding:"max=100"`
	Amount       string              `json:"amount" binding:"required"`
	Kind         models.MovementKind `json:"kind" binding:"required,movement_kind"`
	Frequency    models.Frequency    `json:"frequency" binding:"required,frequency"`
	DueDate      *time.Time          `json:"due_date"`
	PaidBy       *models.Payer       `json:"paid_by" binding:"omitempty,payer"`
	Installments int                 `json:"installments" binding:"omitempty,min=0,max=120"`
	Period       string              `json:"period" binding:"omitempty,period_key"`
}

// CopyPeriodRequest represents the carry-forward request payload.
type CopyPeriodRequest struct {
	Source string               `json:"source" binding:"required,period_key"`
	Target string               `json:"target" binding:"required,period_key"`
	Flags  *services.CarryFlags `json:"flags"`
}

func (r BudgetItemRequest) toDraft(amount int64) services.BudgetItemDraft {
	return services.BudgetItemDraft{
		Description:  r.Description,
		Category:     r.Category,
		Amount:       amount,
		Kind:         r.Kind,
		Frequency:    r.Frequency,
		DueDate:      r.DueDate,
		PaidBy:       r.PaidBy,
		Installments: r.Installments,
	}
}

// CreateBudgetItems handles the creation of budget items.
// @Summary     Create budget items
// @Description Create a planned entry, expanded into monthly siblings when installments >= 2
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetItemRequest true "Budget item details"
// @Success     201 {array} models.BudgetItem "Created items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items [post]
func (h *BudgetHandler) CreateBudgetItems(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
		return
	}

	selected := period.KeyOf(time.Now().UTC())
	if req.Period != "" {
		selected = period.Key(req.Period)
	}

	items, err := h.budgetService.CreateItems(userID, selected, req.toDraft(amount))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET_ITEMS", "budget_item", items[0].ID, c.ClientIP(),
		map[string]interface{}{"description": req.Description, "amount": amount, "installments": len(items)})

	c.JSON(http.StatusCreated, gin.H{"items": items})
}

// GetBudgetItems handles listing the period's budget items.
// @Summary     Get budget items
// @Description Get the budget items whose due date falls in a period
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period key YYYY-MM (default current month)"
// @Success     200 {array} models.BudgetItem "Budget items"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items [get]
func (h *BudgetHandler) GetBudgetItems(c *gin.Context) {
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

	items, err := h.budgetService.GetPeriodItems(userID, selected)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "period": selected})
}

// UpdateBudgetItem handles editing a single budget item.
// @Summary     Update budget item
// @Description Update one budget item; installment siblings are never affected
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Budget item ID"
// @Param       request body BudgetItemRequest true "Updated item details"
// @Success     200 {object} models.BudgetItem "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input or item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items/{id} [put]
func (h *BudgetHandler) UpdateBudgetItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error()))
		return
	}

	item, err := h.budgetService.UpdateItem(userID, itemID, req.toDraft(amount))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET_ITEM", "budget_item", itemID, c.ClientIP(),
		map[string]interface{}{"description": req.Description})

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ToggleBudgetItemPaid handles flipping an item's paid flag.
// @Summary     Toggle paid
// @Description Flip the paid flag on one budget item
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget item ID"
// @Success     200 {object} models.BudgetItem "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items/{id}/paid [patch]
func (h *BudgetHandler) ToggleBudgetItemPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.budgetService.TogglePaid(userID, itemID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "TOGGLE_BUDGET_ITEM_PAID", "budget_item", itemID, c.ClientIP(),
		map[string]interface{}{"is_paid": item.IsPaid})

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteBudgetItem handles deleting a budget item.
// @Summary     Delete budget item
// @Description Delete one budget item; installment siblings stay
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget item ID"
// @Success     200 {object} MessageResponse "Budget item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items/{id} [delete]
func (h *BudgetHandler) DeleteBudgetItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteItem(userID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET_ITEM", "budget_item", itemID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget item deleted successfully"})
}

// GetSourcePeriods handles listing periods available for carry-forward.
// @Summary     Get source periods
// @Description List earlier periods that hold budget items, most recent first
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       before query string false "Target period key YYYY-MM (default current month)"
// @Success     200 {array} string "Period keys"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items/source-periods [get]
func (h *BudgetHandler) GetSourcePeriods(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	before := period.KeyOf(time.Now().UTC())
	if v := c.Query("before"); v != "" {
		before, err = period.Parse(v)
		if err != nil {
			respondWithError(c, apperrors.ErrInvalidPeriod)
			return
		}
	}

	periods, err := h.budgetService.AvailableSourcePeriods(userID, before)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// CopyFromPeriod handles the carry-forward of budget items between periods.
// @Summary     Carry forward budget items
// @Description Copy flag-selected items from a source period into a target period
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CopyPeriodRequest true "Source, target, and selection flags"
// @Success     201 {array} models.BudgetItem "Cloned items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Source period has no budget items"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-items/copy [post]
func (h *BudgetHandler) CopyFromPeriod(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CopyPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	flags := services.DefaultCarryFlags()
	if req.Flags != nil {
		flags = *req.Flags
	}

	clones, err := h.budgetService.CopyFromPeriod(userID, period.Key(req.Source), period.Key(req.Target), flags)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "COPY_BUDGET_PERIOD", "budget_item", 0, c.ClientIP(),
		map[string]interface{}{"source": req.Source, "target": req.Target, "copied": len(clones)})

	c.JSON(http.StatusCreated, gin.H{"items": clones})
}
