package services

import (
	"reflect"
	"testing"

	"planner/internal/models"
	"planner/internal/testutil"
)

func TestAllLabels(t *testing.T) {
	t.Run("predefined_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		labels, err := svc.AllLabels(user.ID, models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		if !reflect.DeepEqual(labels, predefinedExpenseCategories) {
			t.Errorf("labels = %v, want the predefined expense list", labels)
		}
	})

	t.Run("custom_labels_follow_predefined", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Pets", models.MovementKindExpense)
		testutil.AssertNoError(t, err)
		_, err = svc.CreateCategory(user.ID, "Subscriptions", models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		labels, err := svc.AllLabels(user.ID, models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		n := len(predefinedExpenseCategories)
		if len(labels) != n+2 {
			t.Fatalf("got %d labels, want %d", len(labels), n+2)
		}
		if labels[n] != "Pets" || labels[n+1] != "Subscriptions" {
			t.Errorf("custom tail = %v, want [Pets Subscriptions]", labels[n:])
		}
	})

	t.Run("shadowing_label_appears_twice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Groceries", models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		labels, err := svc.AllLabels(user.ID, models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		var count int
		for _, label := range labels {
			if label == "Groceries" {
				count++
			}
		}
		if count != 2 {
			t.Errorf("Groceries appears %d times, want 2", count)
		}
	})

	t.Run("kinds_are_separate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Royalties", models.MovementKindIncome)
		testutil.AssertNoError(t, err)

		expenseLabels, err := svc.AllLabels(user.ID, models.MovementKindExpense)
		testutil.AssertNoError(t, err)
		for _, label := range expenseLabels {
			if label == "Royalties" {
				t.Error("income category leaked into expense labels")
			}
		}

		incomeLabels, err := svc.AllLabels(user.ID, models.MovementKindIncome)
		testutil.AssertNoError(t, err)
		if incomeLabels[len(incomeLabels)-1] != "Royalties" {
			t.Errorf("income labels = %v, want Royalties last", incomeLabels)
		}
	})

	t.Run("invalid_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AllLabels(user.ID, models.MovementKind("transfer"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "", models.MovementKindExpense)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_users_not_visible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUserWithEmail(t, db, "other-categories@example.com")

		_, err := svc.CreateCategory(other.ID, "Boats", models.MovementKindExpense)
		testutil.AssertNoError(t, err)

		categories, err := svc.GetUserCategories(user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(categories) != 0 {
			t.Errorf("expected no categories for this user, got %d", len(categories))
		}
	})
}
