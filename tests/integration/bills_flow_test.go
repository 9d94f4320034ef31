package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestBillsFlow_CurrentPeriod(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "bills@test.com", "password123")

	today := time.Now().UTC().Format(time.RFC3339)

	// Unpaid expense item due today surfaces as a pending bill.
	rec := app.request("POST", "/api/v1/budget-items",
		fmt.Sprintf(`{"description":"Electricity","category":"Utilities","amount":"210,00","kind":"expense","frequency":"fixed","due_date":%q}`, today),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Income items never become bills.
	rec = app.request("POST", "/api/v1/budget-items",
		fmt.Sprintf(`{"description":"Paycheck","category":"Income","amount":"4.000,00","kind":"income","frequency":"fixed","due_date":%q}`, today),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// A paid expense transaction shows up as a settled bill.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"description":"Pharmacy","category":"Health","amount":"54,30","kind":"expense","frequency":"variable","date":%q}`, today),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/bills", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	bills := parseJSON(t, rec)["bills"].([]interface{})
	if len(bills) != 2 {
		t.Fatalf("expected 2 bills, got %d: %s", len(bills), rec.Body.String())
	}

	byDescription := map[string]map[string]interface{}{}
	for _, raw := range bills {
		bill := raw.(map[string]interface{})
		byDescription[bill["description"].(string)] = bill
	}

	electricity, ok := byDescription["Electricity"]
	if !ok {
		t.Fatal("expected the Electricity item among bills")
	}
	if electricity["is_paid"] != false {
		t.Errorf("expected Electricity pending, got is_paid=%v", electricity["is_paid"])
	}
	if electricity["status"] != "due_soon" {
		t.Errorf("expected Electricity due_soon, got %v", electricity["status"])
	}
	if electricity["source"] != "budget" {
		t.Errorf("expected budget source, got %v", electricity["source"])
	}

	pharmacy, ok := byDescription["Pharmacy"]
	if !ok {
		t.Fatal("expected the Pharmacy transaction among bills")
	}
	if pharmacy["is_paid"] != true {
		t.Errorf("expected Pharmacy settled, got is_paid=%v", pharmacy["is_paid"])
	}
	if pharmacy["source"] != "transaction" {
		t.Errorf("expected transaction source, got %v", pharmacy["source"])
	}

	if _, ok := byDescription["Paycheck"]; ok {
		t.Error("income items must not appear among bills")
	}
}

func TestBillsFlow_MatchingTransactionSettlesItem(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "settle@test.com", "password123")

	today := time.Now().UTC().Format(time.RFC3339)

	rec := app.request("POST", "/api/v1/budget-items",
		fmt.Sprintf(`{"description":"Water","category":"Utilities","amount":"80,00","kind":"expense","frequency":"fixed","due_date":%q}`, today),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Same description and amount within the period settles the item.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"description":"water","category":"Utilities","amount":"80,00","kind":"expense","frequency":"fixed","date":%q}`, today),
		token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/bills", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	bills := parseJSON(t, rec)["bills"].([]interface{})

	for _, raw := range bills {
		bill := raw.(map[string]interface{})
		if bill["source"] == "budget" && bill["description"] == "Water" {
			if bill["is_paid"] != true {
				t.Errorf("expected the Water item settled by the matching transaction, got is_paid=%v", bill["is_paid"])
			}
			return
		}
	}
	t.Fatal("expected the Water item among bills")
}
