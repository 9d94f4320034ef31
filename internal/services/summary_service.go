package services

import (
	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/period"
)

// summaryService is the read-only aggregation pass over a period: filtered
// collections in, presentation data out, no side effects.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetMonthlySummary computes the period's realized and planned totals,
// balance, spending ratio, and the expense-by-category breakdown.
//
// Unpaid planned items count toward the totals: they are committed but not
// yet executed cash flow. Once marked paid, an item is assumed superseded by
// a realized transaction and drops out, so nothing is counted twice.
func (s *summaryService) GetMonthlySummary(userID uint, p period.Key) (*MonthlySummary, error) {
	from := p.FirstDay()
	to := p.Advance(1).FirstDay()

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.BudgetItem
	if err := s.db.Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, from, to).
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &MonthlySummary{
		Period:             p,
		ExpensesByCategory: make(map[string]int64),
	}

	for _, t := range transactions {
		switch t.Kind {
		case models.MovementKindIncome:
			summary.RealizedIncome += t.Amount
		case models.MovementKindExpense:
			summary.RealizedExpense += t.Amount
			summary.ExpensesByCategory[t.Category] += t.Amount
		}
	}

	for _, b := range items {
		if b.IsPaid {
			continue
		}
		switch b.Kind {
		case models.MovementKindIncome:
			summary.PlannedUnpaidIncome += b.Amount
		case models.MovementKindExpense:
			summary.PlannedUnpaidExpense += b.Amount
			summary.ExpensesByCategory[b.Category] += b.Amount
		}
	}

	summary.TotalIncome = summary.RealizedIncome + summary.PlannedUnpaidIncome
	summary.TotalExpense = summary.RealizedExpense + summary.PlannedUnpaidExpense
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	if summary.TotalIncome > 0 {
		summary.SpendRatio = float64(summary.TotalExpense) / float64(summary.TotalIncome) * 100
		summary.Encouragement = encouragementFor(summary.SpendRatio)
	}

	return summary, nil
}

// encouragementFor maps the spending ratio to the dashboard's feedback tiers.
func encouragementFor(spendRatio float64) *Encouragement {
	switch {
	case spendRatio <= 80:
		return &Encouragement{Message: "You're doing great!", Tone: "great"}
	case spendRatio <= 90:
		return &Encouragement{Message: "Heads up, spending is climbing!", Tone: "warning"}
	case spendRatio <= 99:
		return &Encouragement{Message: "Be careful!", Tone: "danger"}
	default:
		return &Encouragement{Message: "Stop spending now!", Tone: "critical"}
	}
}

// GetGoalSeries computes the chart series for every goal. Goals are not
// period-scoped, so the series is independent of the selected month.
func (s *summaryService) GetGoalSeries(userID uint) ([]GoalProgress, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	series := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		var saved float64
		if g.TargetAmount > 0 {
			saved = float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
		}
		if saved < 0 {
			saved = 0
		}
		remaining := 100 - saved
		if remaining < 0 {
			remaining = 0
		}
		remainingAmount := g.TargetAmount - g.CurrentAmount
		if remainingAmount < 0 {
			remainingAmount = 0
		}

		// Display percentage caps at 100 even when the goal is overfunded.
		displaySaved := saved
		if displaySaved > 100 {
			displaySaved = 100
		}

		series = append(series, GoalProgress{
			GoalID:           g.ID,
			Name:             g.Name,
			SavedPercent:     displaySaved,
			RemainingPercent: remaining,
			RemainingAmount:  remainingAmount,
			Complete:         g.IsComplete(),
		})
	}
	return series, nil
}
