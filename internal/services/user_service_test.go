package services

import (
	"testing"

	"planner/internal/models"
	"planner/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("success_seeds_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Pair@Example.com", "password123", "Ana", "Silva")
		testutil.AssertNoError(t, err)

		if user.Email != "pair@example.com" {
			t.Errorf("email = %q, want lowercased", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed")
		}

		var settings models.PlannerSettings
		if err := db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil {
			t.Fatalf("expected seeded settings: %v", err)
		}
		if settings.PlannerName != "Our Planner" {
			t.Errorf("planner name = %q, want default", settings.PlannerName)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUP@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("nopass@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("login@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("login@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user == nil {
			t.Fatal("expected a user")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("wrongpw@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("wrongpw@example.com", "nope")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email_looks_like_bad_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("ghost@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("locks_after_repeated_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("lockout@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		for i := 0; i < maxFailedLogins; i++ {
			_, err = svc.AttemptLogin("lockout@example.com", "nope")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Even the right password is refused while locked.
		_, err = svc.AttemptLogin("lockout@example.com", "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("success_resets_failure_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("reset@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("reset@example.com", "nope")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		_, err = svc.AttemptLogin("reset@example.com", "password123")
		testutil.AssertNoError(t, err)

		user, err := svc.GetUserByEmail("reset@example.com")
		testutil.AssertNoError(t, err)
		if user.FailedLoginAttempts != 0 {
			t.Errorf("failed attempts = %d after success, want 0", user.FailedLoginAttempts)
		}
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("refresh@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "somehash"))

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "somehash" {
		t.Errorf("hash = %q, want %q", hash, "somehash")
	}
}
