package models

import "time"

// BudgetItem represents a planned (estimated) income or expense entry for a
// period, distinct from a realized transaction.
type BudgetItem struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Description string       `gorm:"not null" json:"description"`
	Category    string       `gorm:"not null" json:"category"`
	Amount      int64        `gorm:"type:bigint;not null" json:"amount"`
	Kind        MovementKind `gorm:"not null" json:"kind"`
	Frequency   Frequency    `gorm:"not null" json:"frequency"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	IsPaid      bool         `gorm:"default:false" json:"is_paid"`
	PaidBy      *Payer       `json:"paid_by,omitempty"`

	// Installment descriptor. Siblings created from one recurring obligation
	// share InstallmentParentID; InstallmentCurrent is 1-based. All three
	// fields are zero-valued on non-installment items.
	InstallmentTotal    int    `json:"installment_total,omitempty"`
	InstallmentCurrent  int    `json:"installment_current,omitempty"`
	InstallmentParentID string `gorm:"index" json:"installment_parent_id,omitempty"`
}

// IsInstallment reports whether the item belongs to an installment batch.
func (b *BudgetItem) IsInstallment() bool {
	return b.InstallmentParentID != ""
}
