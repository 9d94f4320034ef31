package models

import "time"

// User represents the user model in the database. A user owns one planner
// shared by the couple; partner names live in PlannerSettings.
type User struct {
	Base
	Email               string         `gorm:"uniqueIndex;not null" json:"email"`
	Password            string         `gorm:"not null" json:"-"`
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	IsActive            bool           `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string         `gorm:"size:64" json:"-"`
	FailedLoginAttempts int            `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time     `json:"-"`
	LastLoginAt         *time.Time     `json:"last_login_at,omitempty"`
	Transactions        []Transaction  `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	BudgetItems         []BudgetItem   `gorm:"foreignKey:UserID" json:"budget_items,omitempty"`
	Goals               []Goal         `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Categories          []Category     `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Settings            *PlannerSettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}
