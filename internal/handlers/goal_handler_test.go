package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "planner/internal/errors"
	"planner/internal/models"
	"planner/internal/services"
)

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn      func(userID uint, name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error)
	getUserGoalsFn    func(userID uint) ([]models.Goal, error)
	addGoalProgressFn func(userID, goalID uint, amount int64) (*models.Goal, error)
	deleteGoalFn      func(userID, goalID uint) error
}

func (m *mockGoalService) CreateGoal(userID uint, name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, targetAmount, currentAmount, deadline, priority)
	}
	return &models.Goal{Base: models.Base{ID: 1}, Name: name, TargetAmount: targetAmount, CurrentAmount: currentAmount}, nil
}

func (m *mockGoalService) GetUserGoals(userID uint) ([]models.Goal, error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID)
	}
	return []models.Goal{}, nil
}

func (m *mockGoalService) AddGoalProgress(userID, goalID uint, amount int64) (*models.Goal, error) {
	if m.addGoalProgressFn != nil {
		return m.addGoalProgressFn(userID, goalID, amount)
	}
	return &models.Goal{Base: models.Base{ID: goalID}, CurrentAmount: amount}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID uint) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/goals", handler.CreateGoal)
	auth.GET("/goals", handler.GetGoals)
	auth.POST("/goals/:id/progress", handler.AddGoalProgress)
	auth.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 and parses both amounts", func(t *testing.T) {
		var gotTarget, gotCurrent int64
		goalSvc := &mockGoalService{
			createGoalFn: func(_ uint, name string, target, current int64, _ *time.Time, _ models.GoalPriority) (*models.Goal, error) {
				gotTarget, gotCurrent = target, current
				return &models.Goal{Base: models.Base{ID: 1}, Name: name, TargetAmount: target, CurrentAmount: current}, nil
			},
		}
		handler := NewGoalHandler(goalSvc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "POST", "/goals",
			`{"name":"Vacation","target_amount":"1.000,00","current_amount":"250,00"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTarget != 100000 || gotCurrent != 25000 {
			t.Errorf("expected amounts 100000/25000, got %d/%d", gotTarget, gotCurrent)
		}
	})

	t.Run("returns 400 for a malformed target amount", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "POST", "/goals", `{"name":"Vacation","target_amount":"-100"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})

	t.Run("returns 400 for an unknown priority", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "POST", "/goals",
			`{"name":"Vacation","target_amount":"100,00","priority":"urgent"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestGoalHandler_AddGoalProgress(t *testing.T) {
	t.Run("returns 200 with the incremented goal", func(t *testing.T) {
		goalSvc := &mockGoalService{
			addGoalProgressFn: func(_ uint, goalID uint, amount int64) (*models.Goal, error) {
				return &models.Goal{Base: models.Base{ID: goalID}, CurrentAmount: 35000 + amount}, nil
			},
		}
		handler := NewGoalHandler(goalSvc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "POST", "/goals/7/progress", `{"amount":"150,00"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["current_amount"].(float64) != 50000 {
			t.Errorf("expected current amount 50000, got %v", goal["current_amount"])
		}
	})

	t.Run("returns 404 for an unknown goal", func(t *testing.T) {
		goalSvc := &mockGoalService{
			addGoalProgressFn: func(_, _ uint, _ int64) (*models.Goal, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		handler := NewGoalHandler(goalSvc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "POST", "/goals/99/progress", `{"amount":"10,00"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
	r := setupGoalRouter(handler)

	rec := doRequest(r, "DELETE", "/goals/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, "DELETE", "/goals/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-numeric id, got %d: %s", rec.Code, rec.Body.String())
	}
}
