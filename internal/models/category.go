package models

// Category represents a user-defined custom category label. Predefined
// categories are not stored; the registry in the category service merges
// them with these rows.
type Category struct {
	Base
	UserID uint         `gorm:"not null;index" json:"user_id"`
	Name   string       `gorm:"not null" json:"name"`
	Kind   MovementKind `gorm:"not null" json:"kind"`
}
