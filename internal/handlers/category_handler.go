package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/services"
)

// CategoryHandler handles the category registry.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CreateCategoryRequest represents the request payload for creating a custom
// category.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required,min=1,max=100"`
	Kind models.MovementKind `json:"kind" binding:"required,movement_kind"`
}

// CreateCategory handles the creation of a custom category.
// @Summary     Create a category
// @Description Add a custom category to the registry for one kind
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, req.Kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "kind": req.Kind})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategoryLabels handles listing the merged label registry for a kind.
// @Summary     Get category labels
// @Description Get the predefined labels for a kind followed by the user's custom ones
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string true "Category kind (income/expense)"
// @Success     200 {array} string "Merged labels"
// @Failure     400 {object} ErrorResponse "Invalid kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/labels [get]
func (h *CategoryHandler) GetCategoryLabels(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := models.MovementKind(c.Query("kind"))
	labels, err := h.categoryService.AllLabels(userID, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"labels": labels})
}

// GetCategories handles listing the user's custom categories.
// @Summary     Get custom categories
// @Description Get the user's custom categories, optionally filtered by kind
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Filter by kind (income/expense)"
// @Success     200 {array} models.Category "Custom categories"
// @Failure     400 {object} ErrorResponse "Invalid kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
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

	categories, err := h.categoryService.GetUserCategories(userID, kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
