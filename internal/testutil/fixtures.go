package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"planner/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given kind and amount
// (in cents) on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, kind models.MovementKind, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Category:    "Other",
		Amount:      amount,
		Kind:        kind,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudgetItem creates an unpaid budget item due on the given date.
func CreateTestBudgetItem(t *testing.T, db *gorm.DB, userID uint, kind models.MovementKind, amount int64, dueDate time.Time) *models.BudgetItem {
	t.Helper()

	item := &models.BudgetItem{
		UserID:      userID,
		Description: fmt.Sprintf("Test Budget Item %d", nextID()),
		Category:    "Other",
		Amount:      amount,
		Kind:        kind,
		Frequency:   models.FrequencyFixed,
		DueDate:     &dueDate,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test budget item: %v", err)
	}
	return item
}

// CreateTestGoal creates a goal with the given target and current amounts (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target, current int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		Priority:      models.GoalPriorityMedium,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestCategory creates a custom category of the given kind.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, kind models.MovementKind) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Kind:   kind,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
