package services

import (
	"time"

	"planner/internal/models"
	"planner/internal/pagination"
	"planner/internal/period"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// SettingsServicer manages the couple's planner display settings.
type SettingsServicer interface {
	GetSettings(userID uint) (*models.PlannerSettings, error)
	UpdateSettings(userID uint, plannerName, partnerOneName, partnerTwoName string) (*models.PlannerSettings, error)
}

// CategoryServicer defines the contract for the category registry.
type CategoryServicer interface {
	CreateCategory(userID uint, name string, kind models.MovementKind) (*models.Category, error)
	// AllLabels returns the merged registry for a kind: the predefined labels
	// first, in their fixed order, then custom labels in creation order.
	// Duplicates are not removed.
	AllLabels(userID uint, kind models.MovementKind) ([]string, error)
	GetUserCategories(userID uint, kind *models.MovementKind) ([]models.Category, error)
}

// TransactionDraft carries the fields of a transaction to be created.
type TransactionDraft struct {
	Description  string
	Category     string
	Amount       int64
	Kind         models.MovementKind
	Frequency    models.Frequency
	Date         *time.Time
	PaidBy       *models.Payer
	BudgetItemID *uint
}

// TransactionServicer defines the contract for realized money movements.
type TransactionServicer interface {
	// CreateTransaction appends one transaction. A missing date defaults to
	// the first day of the selected period.
	CreateTransaction(userID uint, selected period.Key, draft TransactionDraft) (*models.Transaction, error)
	GetPeriodTransactions(userID uint, p period.Key, page pagination.PageRequest, kind *models.MovementKind) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BudgetItemDraft carries the fields of a budget item to be created or
// edited. Installments >= 2 expands creation into that many sibling items.
type BudgetItemDraft struct {
	Description  string
	Category     string
	Amount       int64
	Kind         models.MovementKind
	Frequency    models.Frequency
	DueDate      *time.Time
	PaidBy       *models.Payer
	Installments int
}

// CarryFlags selects which {kind, frequency} x {paid, unpaid} combinations
// the carry-forward copies from the source period.
type CarryFlags struct {
	FixedExpenseUnpaid    bool `json:"fixed_expense_unpaid"`
	FixedExpensePaid      bool `json:"fixed_expense_paid"`
	VariableExpenseUnpaid bool `json:"variable_expense_unpaid"`
	VariableExpensePaid   bool `json:"variable_expense_paid"`
	FixedIncomeUnpaid     bool `json:"fixed_income_unpaid"`
	FixedIncomePaid       bool `json:"fixed_income_paid"`
	VariableIncomeUnpaid  bool `json:"variable_income_unpaid"`
	VariableIncomePaid    bool `json:"variable_income_paid"`
}

// DefaultCarryFlags copies every unpaid combination and no paid one.
// Already-paid entries are only carried when explicitly enabled.
func DefaultCarryFlags() CarryFlags {
	return CarryFlags{
		FixedExpenseUnpaid:    true,
		VariableExpenseUnpaid: true,
		FixedIncomeUnpaid:     true,
		VariableIncomeUnpaid:  true,
	}
}

// Includes reports whether an item with the given shape is selected.
func (f CarryFlags) Includes(kind models.MovementKind, freq models.Frequency, paid bool) bool {
	switch {
	case kind == models.MovementKindExpense && freq == models.FrequencyFixed:
		if paid {
			return f.FixedExpensePaid
		}
		return f.FixedExpenseUnpaid
	case kind == models.MovementKindExpense && freq == models.FrequencyVariable:
		if paid {
			return f.VariableExpensePaid
		}
		return f.VariableExpenseUnpaid
	case kind == models.MovementKindIncome && freq == models.FrequencyFixed:
		if paid {
			return f.FixedIncomePaid
		}
		return f.FixedIncomeUnpaid
	case kind == models.MovementKindIncome && freq == models.FrequencyVariable:
		if paid {
			return f.VariableIncomePaid
		}
		return f.VariableIncomeUnpaid
	}
	return false
}

// BudgetServicer defines the contract for planned budget entries, including
// installment expansion and period carry-forward.
type BudgetServicer interface {
	// CreateItems appends one budget item, or a full installment batch when
	// the draft asks for two or more installments. A missing due date
	// defaults to the last day of the selected period.
	CreateItems(userID uint, selected period.Key, draft BudgetItemDraft) ([]models.BudgetItem, error)
	// UpdateItem replaces a single item's fields in place. Edits never
	// propagate to installment siblings.
	UpdateItem(userID, itemID uint, draft BudgetItemDraft) (*models.BudgetItem, error)
	TogglePaid(userID, itemID uint) (*models.BudgetItem, error)
	DeleteItem(userID, itemID uint) error
	GetPeriodItems(userID uint, p period.Key) ([]models.BudgetItem, error)
	GetItemByID(userID, itemID uint) (*models.BudgetItem, error)
	// AvailableSourcePeriods lists every period strictly before the target
	// that holds at least one dated budget item.
	AvailableSourcePeriods(userID uint, before period.Key) ([]period.Key, error)
	// CopyFromPeriod clones the selected source items into the target period
	// with fresh identifiers and paid reset. Installment-linked items are
	// never copied.
	CopyFromPeriod(userID uint, source, target period.Key, flags CarryFlags) ([]models.BudgetItem, error)
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID uint, name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error)
	GetUserGoals(userID uint) ([]models.Goal, error)
	// AddGoalProgress increments the saved amount; increments are positive
	// only, so concurrent additions commute.
	AddGoalProgress(userID, goalID uint, amount int64) (*models.Goal, error)
	DeleteGoal(userID, goalID uint) error
}

// Encouragement is the spending-ratio feedback shown on the dashboard.
type Encouragement struct {
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// MonthlySummary aggregates a period's realized and planned cash flow.
// Unpaid planned items count toward totals as committed-but-unexecuted flow;
// paid items are assumed superseded by a realized transaction.
type MonthlySummary struct {
	Period               period.Key       `json:"period"`
	RealizedIncome       int64            `json:"realized_income"`
	RealizedExpense      int64            `json:"realized_expense"`
	PlannedUnpaidIncome  int64            `json:"planned_unpaid_income"`
	PlannedUnpaidExpense int64            `json:"planned_unpaid_expense"`
	TotalIncome          int64            `json:"total_income"`
	TotalExpense         int64            `json:"total_expense"`
	Balance              int64            `json:"balance"`
	SpendRatio           float64          `json:"spend_ratio"`
	ExpensesByCategory   map[string]int64 `json:"expenses_by_category"`
	Encouragement        *Encouragement   `json:"encouragement,omitempty"`
}

// GoalProgress is the chart-facing series entry for one goal.
type GoalProgress struct {
	GoalID           uint    `json:"goal_id"`
	Name             string  `json:"name"`
	SavedPercent     float64 `json:"saved_percent"`
	RemainingPercent float64 `json:"remaining_percent"`
	RemainingAmount  int64   `json:"remaining_amount"`
	Complete         bool    `json:"complete"`
}

// SummaryServicer defines the read-only aggregation pass over a period.
type SummaryServicer interface {
	GetMonthlySummary(userID uint, p period.Key) (*MonthlySummary, error)
	GetGoalSeries(userID uint) ([]GoalProgress, error)
}

// Bill is the alert-facing view over realized expense transactions and
// soon-due unpaid planned expenses.
type Bill struct {
	SourceID    uint        `json:"source_id"`
	Source      string      `json:"source"` // "transaction" or "budget"
	Description string      `json:"description"`
	Amount      int64       `json:"amount"`
	DueDate     time.Time   `json:"due_date"`
	Category    string      `json:"category"`
	Status      AlertStatus `json:"status"`
	IsPaid      bool        `json:"is_paid"`
}

// AlertServicer builds the deduplicated due-date alert list.
type AlertServicer interface {
	CollectBills(userID uint, p period.Key, today time.Time) ([]Bill, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
