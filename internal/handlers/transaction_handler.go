package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/money"
	"planner/internal/pagination"
	"planner/internal/period"
	"planner/internal/services"
)

// TransactionHandler handles realized money movements.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount is a decimal string ("1234,56" or "1234.56") and is
// stored in cents.
type CreateTransactionRequest struct {
	Description  string              `json:"description" binding:"required,min=1,max=255"`
	Category     string              `json:"category" binding:"max=100"`
	Amount       string              `json:"amount" binding:"required"`
	Kind         models.MovementKind `json:"kind" binding:"required,movement_kind"`
	Frequency    models.Frequency    `json:"frequency" binding:"required,frequency"`
	Date         *time.Time          `json:"date"`
	PaidBy       *models.Payer       `json:"paid_by" binding:"omitempty,payer"`
	BudgetItemID *uint               `json:"budget_item_id"`
	Period       string              `json:"period" binding:"omitempty,period_key"`
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record a realized income or expense movement
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Linked budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
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

	transaction, err := h.transactionService.CreateTransaction(userID, selected, services.TransactionDraft{
		Description:  req.Description,
		Category:     req.Category,
		Amount:       amount,
		Kind:         req.Kind,
		Frequency:    req.Frequency,
		Date:         req.Date,
		PaidBy:       req.PaidBy,
		BudgetItemID: req.BudgetItemID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"description": req.Description, "amount": amount, "kind": req.Kind})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing the period's transactions.
// @Summary     Get transactions
// @Description Get a paginated list of transactions for a period
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period    query string false "Period key YYYY-MM (default current month)"
// @Param       kind      query string false "Filter by kind (income/expense)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var kind *models.MovementKind
	if v := c.Query("kind"); v != "" {
		k := models.MovementKind(v)
		if k != models.MovementKindIncome && k != models.MovementKindExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be 'income' or 'expense'"))
			return
		}
		kind = &k
	}

	result, err := h.transactionService.GetPeriodTransactions(userID, selected, page, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
