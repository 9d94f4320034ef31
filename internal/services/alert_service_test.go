package services

import (
	"testing"
	"time"

	"planner/internal/models"
	"planner/internal/testutil"
)

func TestClassify(t *testing.T) {
	today := day(2025, time.March, 15)

	cases := []struct {
		name string
		due  time.Time
		want AlertStatus
	}{
		{"yesterday", day(2025, time.March, 14), AlertOverdue},
		{"last_month", day(2025, time.February, 1), AlertOverdue},
		{"today", day(2025, time.March, 15), AlertDueSoon},
		{"tomorrow", day(2025, time.March, 16), AlertDueSoon},
		{"window_edge", day(2025, time.March, 22), AlertDueSoon},
		{"past_window", day(2025, time.March, 23), AlertOK},
		{"next_month", day(2025, time.April, 20), AlertOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.due, today); got != tc.want {
				t.Errorf("Classify(%v) = %q, want %q", tc.due, got, tc.want)
			}
		})
	}

	t.Run("ignores_time_of_day", func(t *testing.T) {
		lateToday := time.Date(2025, time.March, 15, 23, 50, 0, 0, time.UTC)
		earlyDue := time.Date(2025, time.March, 15, 0, 5, 0, 0, time.UTC)
		if got := Classify(earlyDue, lateToday); got != AlertDueSoon {
			t.Errorf("same-day due classified %q, want %q", got, AlertDueSoon)
		}
	})
}

func TestCollectBills(t *testing.T) {
	today := day(2025, time.March, 15)

	t.Run("transactions_are_paid_bills", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.MovementKindExpense, 12000, day(2025, time.March, 3))

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		if len(bills) != 1 {
			t.Fatalf("expected 1 bill, got %d", len(bills))
		}
		if bills[0].Source != "transaction" || !bills[0].IsPaid {
			t.Errorf("transaction bill = %+v, want paid transaction source", bills[0])
		}
	})

	t.Run("income_never_appears", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.MovementKindIncome, 500000, day(2025, time.March, 1))
		testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindIncome, 100000, day(2025, time.March, 16))

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		if len(bills) != 0 {
			t.Fatalf("expected no bills, got %d", len(bills))
		}
	})

	t.Run("far_future_items_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindExpense, 9000, day(2025, time.March, 30))

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		if len(bills) != 0 {
			t.Fatalf("item due past the window should be silent, got %d bills", len(bills))
		}
	})

	t.Run("overdue_and_due_soon_items_included", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindExpense, 5000, day(2025, time.March, 10))
		testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindExpense, 7000, day(2025, time.March, 18))

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		if len(bills) != 2 {
			t.Fatalf("expected 2 bills, got %d", len(bills))
		}
		// Sorted by due date.
		if bills[0].Status != AlertOverdue {
			t.Errorf("first bill status = %q, want %q", bills[0].Status, AlertOverdue)
		}
		if bills[1].Status != AlertDueSoon {
			t.Errorf("second bill status = %q, want %q", bills[1].Status, AlertDueSoon)
		}
		if bills[0].IsPaid || bills[1].IsPaid {
			t.Error("unmatched planned items must show unpaid")
		}
	})

	t.Run("matching_transaction_settles_item", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		item := testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindExpense, 15000, day(2025, time.March, 14))
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.MovementKindExpense, 15000, day(2025, time.March, 13))
		if err := db.Model(tx).Update("description", item.Description).Error; err != nil {
			t.Fatalf("failed to align description: %v", err)
		}

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		var budgetBill *Bill
		for i := range bills {
			if bills[i].Source == "budget" {
				budgetBill = &bills[i]
			}
		}
		if budgetBill == nil {
			t.Fatal("expected the planned item in the bill list")
		}
		if !budgetBill.IsPaid {
			t.Error("planned item covered by a matching transaction must show paid")
		}
	})

	t.Run("amount_mismatch_does_not_settle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAlertService(db)
		user := testutil.CreateTestUser(t, db)

		item := testutil.CreateTestBudgetItem(t, db, user.ID, models.MovementKindExpense, 15000, day(2025, time.March, 14))
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.MovementKindExpense, 14000, day(2025, time.March, 13))
		if err := db.Model(tx).Update("description", item.Description).Error; err != nil {
			t.Fatalf("failed to align description: %v", err)
		}

		bills, err := svc.CollectBills(user.ID, "2025-03", today)
		testutil.AssertNoError(t, err)

		for _, bill := range bills {
			if bill.Source == "budget" && bill.IsPaid {
				t.Error("different amount must not settle the planned item")
			}
		}
	})
}
