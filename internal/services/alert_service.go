package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/period"
)

// AlertStatus classifies a due date relative to today.
type AlertStatus string

const (
	AlertOverdue AlertStatus = "overdue"
	AlertDueSoon AlertStatus = "due_soon"
	AlertOK      AlertStatus = "ok"
)

// dueSoonWindowDays is the inclusive look-ahead for due-soon alerts.
const dueSoonWindowDays = 7

// Classify compares a due date against today at day granularity: overdue
// when strictly before today, due_soon from today through today+7 inclusive,
// ok beyond that.
func Classify(dueDate, today time.Time) AlertStatus {
	due := truncateToDay(dueDate)
	now := truncateToDay(today)

	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days < 0:
		return AlertOverdue
	case days <= dueSoonWindowDays:
		return AlertDueSoon
	default:
		return AlertOK
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// alertService builds the bill alert list.
type alertService struct {
	db *gorm.DB
}

// NewAlertService creates a new AlertServicer.
func NewAlertService(db *gorm.DB) AlertServicer {
	return &alertService{db: db}
}

// CollectBills returns the deduplicated, alert-relevant bill list for the
// period. Every dated expense transaction is a paid bill. Unpaid planned
// expenses join only when overdue or due soon; their paid status also checks
// for a realized transaction with the same description (case-insensitive)
// and amount inside the period, so a planned item already covered by a real
// payment is shown settled rather than alarming.
func (s *alertService) CollectBills(userID uint, p period.Key, today time.Time) ([]Bill, error) {
	start := p.FirstDay()
	end := p.Advance(1).FirstDay()

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND kind = ? AND date >= ? AND date < ?",
		userID, models.MovementKindExpense, start, end).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.BudgetItem
	if err := s.db.Where("user_id = ? AND kind = ? AND (due_date IS NULL OR (due_date >= ? AND due_date < ?))",
		userID, models.MovementKindExpense, start, end).
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []Bill

	for _, t := range transactions {
		bills = append(bills, Bill{
			SourceID:    t.ID,
			Source:      "transaction",
			Description: t.Description,
			Amount:      t.Amount,
			DueDate:     t.Date,
			Category:    t.Category,
			Status:      Classify(t.Date, today),
			IsPaid:      true,
		})
	}

	for _, b := range items {
		due := p.LastDay()
		if b.DueDate != nil {
			due = *b.DueDate
		}

		status := Classify(due, today)
		if status == AlertOK {
			continue
		}

		paid := b.IsPaid || s.hasMatchingTransaction(transactions, b, p)
		bills = append(bills, Bill{
			SourceID:    b.ID,
			Source:      "budget",
			Description: b.Description,
			Amount:      b.Amount,
			DueDate:     due,
			Category:    b.Category,
			Status:      status,
			IsPaid:      paid,
		})
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].DueDate.Before(bills[j].DueDate)
	})
	return bills, nil
}

// hasMatchingTransaction reports whether a realized expense matches the
// planned item by description, amount, and period.
func (s *alertService) hasMatchingTransaction(transactions []models.Transaction, item models.BudgetItem, p period.Key) bool {
	for _, t := range transactions {
		if strings.EqualFold(t.Description, item.Description) &&
			t.Amount == item.Amount &&
			p.Contains(t.Date) {
			return true
		}
	}
	return false
}
