package services

import (
	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
)

// Predefined category labels per kind, in their fixed display order.
var (
	predefinedExpenseCategories = []string{
		"Housing",
		"Groceries",
		"Transport",
		"Health",
		"Education",
		"Leisure",
		"Clothing",
		"Utilities",
		"Other",
	}
	predefinedIncomeCategories = []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gifts",
		"Other",
	}
)

// categoryService implements the category registry: a fixed predefined list
// merged with the user's custom categories.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory appends a custom category. Custom categories are never
// edited and cannot be removed through the API.
func (s *categoryService) CreateCategory(userID uint, name string, kind models.MovementKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// AllLabels merges the predefined list for the kind with the user's custom
// categories of the same kind, predefined first, custom in creation order.
// A custom label that shadows a predefined one appears twice.
func (s *categoryService) AllLabels(userID uint, kind models.MovementKind) ([]string, error) {
	var predefined []string
	switch kind {
	case models.MovementKindExpense:
		predefined = predefinedExpenseCategories
	case models.MovementKindIncome:
		predefined = predefinedIncomeCategories
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}

	var custom []models.Category
	if err := s.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC, id ASC").Find(&custom).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	labels := make([]string, 0, len(predefined)+len(custom))
	labels = append(labels, predefined...)
	for _, c := range custom {
		labels = append(labels, c.Name)
	}
	return labels, nil
}

// GetUserCategories returns the user's custom categories, optionally filtered
// by kind, in creation order.
func (s *categoryService) GetUserCategories(userID uint, kind *models.MovementKind) ([]models.Category, error) {
	query := s.db.Where("user_id = ?", userID)
	if kind != nil {
		query = query.Where("kind = ?", *kind)
	}

	var categories []models.Category
	if err := query.Order("created_at ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}
