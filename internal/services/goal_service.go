package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "planner/internal/errors"
	"planner/internal/models"
)

// goalService handles savings goals.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a savings goal. The saved amount starts at the given
// value (default zero) and only ever grows afterwards.
func (s *goalService) CreateGoal(userID uint, name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "current amount cannot be negative")
	}
	if priority == "" {
		priority = models.GoalPriorityMedium
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Priority:      priority,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserGoals returns all goals for the user in creation order. Goals are
// not period-scoped.
func (s *goalService) GetUserGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *goalService) getGoalByID(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// AddGoalProgress increments the saved amount by a positive delta. The
// increment is applied in SQL so concurrent additions always sum.
func (s *goalService) AddGoalProgress(userID, goalID uint, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "progress amount must be greater than zero")
	}

	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(goal).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.getGoalByID(userID, goalID)
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(userID, goalID uint) error {
	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
