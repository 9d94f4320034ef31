package models

// PlannerSettings holds the couple's display preferences: the planner name
// shown in the header and the two partner names used for the "paid by"
// attribution. One row per user.
type PlannerSettings struct {
	Base
	UserID         uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	PlannerName    string `gorm:"not null;default:'Our Planner'" json:"planner_name"`
	PartnerOneName string `json:"partner_one_name"`
	PartnerTwoName string `json:"partner_two_name"`
}
