package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
)

// settingsService handles planner display settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's planner settings, creating the default row
// for accounts that predate settings.
func (s *settingsService) GetSettings(userID uint) (*models.PlannerSettings, error) {
	var settings models.PlannerSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.PlannerSettings{UserID: userID, PlannerName: "Our Planner"}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings replaces the planner name and partner names. Empty fields
// are left unchanged.
func (s *settingsService) UpdateSettings(userID uint, plannerName, partnerOneName, partnerTwoName string) (*models.PlannerSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if plannerName != "" {
		updates["planner_name"] = plannerName
	}
	if partnerOneName != "" {
		updates["partner_one_name"] = partnerOneName
	}
	if partnerTwoName != "" {
		updates["partner_two_name"] = partnerTwoName
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return settings, nil
}
