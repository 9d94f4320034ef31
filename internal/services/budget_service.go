package services

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/period"
)

// budgetService handles planned budget entries.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

func validateDraft(draft BudgetItemDraft) error {
	if draft.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if draft.Amount < 0 {
		return apperrors.ErrInvalidAmount
	}
	if draft.Kind != models.MovementKindIncome && draft.Kind != models.MovementKindExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}
	if draft.Frequency != models.FrequencyFixed && draft.Frequency != models.FrequencyVariable {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be fixed or variable")
	}
	return nil
}

// CreateItems appends one budget item, or expands the draft into an
// installment batch when Installments >= 2. The whole batch is inserted in a
// single database transaction. A missing due date defaults to the last day
// of the selected period.
func (s *budgetService) CreateItems(userID uint, selected period.Key, draft BudgetItemDraft) ([]models.BudgetItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	firstDue := selected.LastDay()
	if draft.DueDate != nil && !draft.DueDate.IsZero() {
		firstDue = *draft.DueDate
	}
	if draft.Category == "" {
		draft.Category = models.UncategorizedLabel
	}

	var items []models.BudgetItem
	if draft.Installments >= 2 {
		items = ExpandInstallments(userID, draft, firstDue, draft.Installments)
	} else {
		items = []models.BudgetItem{{
			UserID:      userID,
			Description: draft.Description,
			Category:    draft.Category,
			Amount:      draft.Amount,
			Kind:        draft.Kind,
			Frequency:   draft.Frequency,
			DueDate:     &firstDue,
			PaidBy:      draft.PaidBy,
		}}
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// UpdateItem replaces a single item's fields in place. Installment metadata
// is untouched and siblings are never affected.
func (s *budgetService) UpdateItem(userID, itemID uint, draft BudgetItemDraft) (*models.BudgetItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	category := draft.Category
	if category == "" {
		category = models.UncategorizedLabel
	}

	updates := map[string]interface{}{
		"description": draft.Description,
		"category":    category,
		"amount":      draft.Amount,
		"kind":        draft.Kind,
		"frequency":   draft.Frequency,
	}
	if draft.DueDate != nil && !draft.DueDate.IsZero() {
		updates["due_date"] = *draft.DueDate
	}
	if draft.PaidBy != nil {
		updates["paid_by"] = *draft.PaidBy
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// TogglePaid flips the paid flag on exactly one item. Linked transactions
// and installment siblings are left alone.
func (s *budgetService) TogglePaid(userID, itemID uint) (*models.BudgetItem, error) {
	item, err := s.GetItemByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.IsPaid = !item.IsPaid
	if err := s.db.Model(item).Update("is_paid", item.IsPaid).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// DeleteItem removes one item. There is no batch delete by parent; each
// installment is removed on its own.
func (s *budgetService) DeleteItem(userID, itemID uint) error {
	item, err := s.GetItemByID(userID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetItemByID returns a budget item if it belongs to the user.
func (s *budgetService) GetItemByID(userID, itemID uint) (*models.BudgetItem, error) {
	var item models.BudgetItem
	if err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// GetPeriodItems returns the user's budget items whose due date falls in the
// period. Undated items stay in storage but are never part of a period view.
func (s *budgetService) GetPeriodItems(userID uint, p period.Key) ([]models.BudgetItem, error) {
	from := p.FirstDay()
	to := p.Advance(1).FirstDay()

	var items []models.BudgetItem
	if err := s.db.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, from, to).
		Order("due_date ASC, id ASC").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// AvailableSourcePeriods lists every distinct period strictly earlier than
// the target that has at least one dated budget item, most recent first.
func (s *budgetService) AvailableSourcePeriods(userID uint, before period.Key) ([]period.Key, error) {
	var items []models.BudgetItem
	if err := s.db.Select("due_date").
		Where("user_id = ? AND due_date IS NOT NULL AND due_date < ?", userID, before.FirstDay()).
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	seen := make(map[period.Key]bool)
	for _, item := range items {
		if item.DueDate == nil {
			continue
		}
		seen[period.KeyOf(*item.DueDate)] = true
	}

	keys := make([]period.Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })
	return keys, nil
}

// CopyFromPeriod clones the flag-selected source items into the target
// period. Installment-linked items are skipped: their siblings already cover
// the following months. Clones get fresh identifiers, paid reset to false,
// and the same day-of-month in the target period, clamped to the target
// month's last day.
func (s *budgetService) CopyFromPeriod(userID uint, source, target period.Key, flags CarryFlags) ([]models.BudgetItem, error) {
	sourceItems, err := s.GetPeriodItems(userID, source)
	if err != nil {
		return nil, err
	}
	if len(sourceItems) == 0 {
		return nil, apperrors.ErrEmptySourcePeriod
	}

	var clones []models.BudgetItem
	for _, item := range sourceItems {
		if item.IsInstallment() {
			continue
		}
		if !flags.Includes(item.Kind, item.Frequency, item.IsPaid) {
			continue
		}

		due := target.LastDay()
		if item.DueDate != nil {
			due = target.DayIn(item.DueDate.Day())
		}

		clones = append(clones, models.BudgetItem{
			UserID:      userID,
			Description: item.Description,
			Category:    item.Category,
			Amount:      item.Amount,
			Kind:        item.Kind,
			Frequency:   item.Frequency,
			DueDate:     &due,
			PaidBy:      item.PaidBy,
		})
	}

	if len(clones) == 0 {
		return []models.BudgetItem{}, nil
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&clones).Error
	}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return clones, nil
}
