package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/pagination"
	"planner/internal/period"
)

// transactionService handles realized money movements.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and appends one transaction. The date defaults
// to the first day of the selected period when the draft omits it, and the
// category falls back to the uncategorized sentinel.
func (s *transactionService) CreateTransaction(userID uint, selected period.Key, draft TransactionDraft) (*models.Transaction, error) {
	if draft.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if draft.Amount < 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if draft.Kind != models.MovementKindIncome && draft.Kind != models.MovementKindExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}

	date := selected.FirstDay()
	if draft.Date != nil && !draft.Date.IsZero() {
		date = *draft.Date
	}

	category := draft.Category
	if category == "" {
		category = models.UncategorizedLabel
	}

	if draft.BudgetItemID != nil {
		var count int64
		s.db.Model(&models.BudgetItem{}).
			Where("id = ? AND user_id = ?", *draft.BudgetItemID, userID).
			Count(&count)
		if count == 0 {
			return nil, apperrors.ErrBudgetItemNotFound
		}
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Date:         date,
		Description:  draft.Description,
		Category:     category,
		Amount:       draft.Amount,
		Kind:         draft.Kind,
		Frequency:    draft.Frequency,
		PaidBy:       draft.PaidBy,
		BudgetItemID: draft.BudgetItemID,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetPeriodTransactions returns the user's transactions whose date falls in
// the given period, newest first.
func (s *transactionService) GetPeriodTransactions(
	userID uint,
	p period.Key,
	page pagination.PageRequest,
	kind *models.MovementKind,
) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	from := p.FirstDay()
	to := p.Advance(1).FirstDay()

	base := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to)
	if kind != nil {
		base = base.Where("kind = ?", *kind)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("date DESC, id DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID returns a transaction if it belongs to the user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes one transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
