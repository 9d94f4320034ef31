package services

import (
	"time"

	"planner/internal/models"
	"planner/internal/period"
	"planner/internal/uuid"
)

// ExpandInstallments splits a budget entry into count dated siblings.
//
// Each sibling carries amount = total/count in cents. Integer division means
// the remainder is NOT redistributed: 100.00 over 3 yields three shares of
// 33.33, summing to 99.99. Due dates advance one calendar month per
// installment, day-of-month clamped in shorter months, and all siblings share
// one parent identifier.
func ExpandInstallments(userID uint, draft BudgetItemDraft, firstDue time.Time, count int) []models.BudgetItem {
	parentID := uuid.New()
	share := draft.Amount / int64(count)

	items := make([]models.BudgetItem, 0, count)
	for i := 0; i < count; i++ {
		due := period.AddMonths(firstDue, i)
		items = append(items, models.BudgetItem{
			UserID:              userID,
			Description:         draft.Description,
			Category:            draft.Category,
			Amount:              share,
			Kind:                draft.Kind,
			Frequency:           draft.Frequency,
			DueDate:             &due,
			PaidBy:              draft.PaidBy,
			InstallmentTotal:    count,
			InstallmentCurrent:  i + 1,
			InstallmentParentID: parentID,
		})
	}
	return items
}
