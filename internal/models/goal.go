package models

import "time"

// GoalPriority represents the priority of a savings goal
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal represents a savings target. CurrentAmount only ever grows; the
// system never decreases progress.
type Goal struct {
	Base
	UserID        uint         `gorm:"not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	TargetAmount  int64        `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64        `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      *time.Time   `json:"deadline,omitempty"`
	Priority      GoalPriority `gorm:"not null;default:medium" json:"priority"`
}

// IsComplete reports whether the saved amount has reached the target.
func (g *Goal) IsComplete() bool {
	return g.CurrentAmount >= g.TargetAmount
}
