package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestEquipmentFlow_CreateListUpdateStatus(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "mechanic", "password123")

	rec := app.request("POST", "/api/v1/equipment",
		`{"name":"John Deere 8R","type":"Tractor","purchase_date":"2022-05-10","cost":250000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	equipment := parseJSON(t, rec)["equipment"].(map[string]interface{})
	equipmentID := equipment["id"].(float64)
	if equipment["status"] != "Active" {
		t.Errorf("expected default status 'Active', got %v", equipment["status"])
	}

	rec = app.request("GET", "/api/v1/equipment", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 item, got %v", result["total_items"])
	}

	rec = app.request("PUT", fmt.Sprintf("/api/v1/equipment/%.0f/status", equipmentID),
		`{"status":"Under Repair"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/equipment/%.0f", equipmentID), "", token)
	got := parseJSON(t, rec)["equipment"].(map[string]interface{})
	if got["status"] != "Under Repair" {
		t.Errorf("expected status 'Under Repair', got %v", got["status"])
	}

	rec = app.request("DELETE", fmt.Sprintf("/api/v1/equipment/%.0f", equipmentID), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInventoryFlow_CreateUpdatePaginate(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "storekeeper", "password123")

	for i := 1; i <= 25; i++ {
		rec := app.request("POST", "/api/v1/inventory",
			fmt.Sprintf(`{"name":"Item %02d","category":"Supplies","quantity":%d,"unit":"bags"}`, i, i), token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	// Second page with the default page size of 20
	rec := app.request("GET", "/api/v1/inventory?page=2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 25 {
		t.Errorf("expected 25 total items, got %v", result["total_items"])
	}
	if result["total_pages"].(float64) != 2 {
		t.Errorf("expected 2 pages, got %v", result["total_pages"])
	}
	data := result["data"].([]interface{})
	if len(data) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(data))
	}

	// Partial update adjusts quantity only
	itemID := data[0].(map[string]interface{})["id"].(float64)
	rec = app.request("PUT", fmt.Sprintf("/api/v1/inventory/%.0f", itemID), `{"quantity":99}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	item := parseJSON(t, rec)["item"].(map[string]interface{})
	if item["quantity"].(float64) != 99 {
		t.Errorf("expected quantity 99, got %v", item["quantity"])
	}
	if item["category"] != "Supplies" {
		t.Errorf("expected category unchanged, got %v", item["category"])
	}
}

func TestWeatherFlow_RecordAndRangeQuery(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "observer", "password123")

	for _, obs := range []string{
		`{"date":"2024-06-01","temperature":22.5,"humidity":60,"rainfall":0,"description":"Sunny"}`,
		`{"date":"2024-06-15","temperature":18.0,"humidity":85,"rainfall":12.4,"description":"Heavy rain"}`,
		`{"date":"2024-07-01","temperature":30.1,"humidity":40,"description":"Hot and dry"}`,
	} {
		rec := app.request("POST", "/api/v1/weather", obs, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	// June only
	rec := app.request("GET", "/api/v1/weather?from=2024-06-01&to=2024-06-30", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 2 {
		t.Fatalf("expected 2 June observations, got %v", result["total_items"])
	}
	data := result["data"].([]interface{})
	newest := data[0].(map[string]interface{})
	if newest["description"] != "Heavy rain" {
		t.Errorf("expected newest observation first, got %v", newest["description"])
	}

	// Humidity above 100 is rejected
	rec = app.request("POST", "/api/v1/weather", `{"date":"2024-07-02","humidity":120}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
