package models

import "time"

// MovementKind is the base direction of a money movement.
type MovementKind string

const (
	MovementKindIncome  MovementKind = "income"
	MovementKindExpense MovementKind = "expense"
)

// Frequency distinguishes fixed (recurring obligation) from variable entries.
type Frequency string

const (
	FrequencyFixed    Frequency = "fixed"
	FrequencyVariable Frequency = "variable"
)

// Payer attributes a movement to one of the partners or to both.
type Payer string

const (
	PayerPartnerOne Payer = "partner_one"
	PayerPartnerTwo Payer = "partner_two"
	PayerJoint      Payer = "joint"
)

// UncategorizedLabel is the sentinel applied when no category resolves.
const UncategorizedLabel = "uncategorized"

// Transaction represents a realized money movement. Transactions are created
// and deleted, never edited.
type Transaction struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Date        time.Time    `gorm:"not null" json:"date"`
	Description string       `gorm:"not null" json:"description"`
	Category    string       `gorm:"not null" json:"category"`
	Amount      int64        `gorm:"type:bigint;not null" json:"amount"`
	Kind        MovementKind `gorm:"not null" json:"kind"`
	Frequency   Frequency    `json:"frequency,omitempty"`
	PaidBy      *Payer       `json:"paid_by,omitempty"`

	// Set when this transaction offsets a planned budget item.
	BudgetItemID *uint       `json:"budget_item_id,omitempty"`
	BudgetItem   *BudgetItem `gorm:"foreignKey:BudgetItemID" json:"budget_item,omitempty"`
}
