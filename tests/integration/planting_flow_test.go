package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestPlantingFlow_HarvestDateDerivedFromGrowthPeriod(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "grower", "password123")

	rec := app.request("POST", "/api/v1/farmers", `{"name":"David Wilson"}`, token)
	farmerID := parseJSON(t, rec)["farmer"].(map[string]interface{})["id"].(float64)

	// Corn matures in 90 days
	rec = app.request("POST", "/api/v1/crops", `{"name":"Corn","variety":"Sweet","growth_period":90}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	cropID := parseJSON(t, rec)["crop"].(map[string]interface{})["id"].(float64)

	rec = app.request("POST", "/api/v1/plantings",
		fmt.Sprintf(`{"farmer_id":%.0f,"crop_id":%.0f,"planting_date":"2024-03-15","area_planted":25.5}`, farmerID, cropID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	planting := parseJSON(t, rec)["planting"].(map[string]interface{})
	plantingID := planting["id"].(float64)

	// 2024-03-15 + 90 days = 2024-06-13
	harvest := planting["expected_harvest_date"].(string)
	if !strings.HasPrefix(harvest, "2024-06-13") {
		t.Errorf("expected harvest date 2024-06-13, got %v", harvest)
	}
	if planting["status"] != "Growing" {
		t.Errorf("expected status 'Growing', got %v", planting["status"])
	}

	// The listing joins in the farmer and crop names
	rec = app.request("GET", "/api/v1/plantings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	plantings := parseJSON(t, rec)["plantings"].([]interface{})
	if len(plantings) != 1 {
		t.Fatalf("expected 1 planting, got %d", len(plantings))
	}
	record := plantings[0].(map[string]interface{})
	if record["farmer_name"] != "David Wilson" {
		t.Errorf("expected farmer_name 'David Wilson', got %v", record["farmer_name"])
	}
	if record["crop_name"] != "Corn" {
		t.Errorf("expected crop_name 'Corn', got %v", record["crop_name"])
	}

	// Mark harvested and verify
	rec = app.request("PUT", fmt.Sprintf("/api/v1/plantings/%.0f/status", plantingID),
		`{"status":"Harvested"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/plantings/%.0f", plantingID), "", token)
	got := parseJSON(t, rec)["planting"].(map[string]interface{})
	if got["status"] != "Harvested" {
		t.Errorf("expected status 'Harvested', got %v", got["status"])
	}
}

func TestPlantingFlow_FilterByFarmer(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "filterer", "password123")

	var farmerIDs []float64
	for _, name := range []string{"Sarah Brown", "Michael Davis"} {
		rec := app.request("POST", "/api/v1/farmers", fmt.Sprintf(`{"name":%q}`, name), token)
		farmerIDs = append(farmerIDs, parseJSON(t, rec)["farmer"].(map[string]interface{})["id"].(float64))
	}
	rec := app.request("POST", "/api/v1/crops", `{"name":"Soybeans","growth_period":100}`, token)
	cropID := parseJSON(t, rec)["crop"].(map[string]interface{})["id"].(float64)

	for _, fid := range farmerIDs {
		rec = app.request("POST", "/api/v1/plantings",
			fmt.Sprintf(`{"farmer_id":%.0f,"crop_id":%.0f,"planting_date":"2024-04-01","area_planted":10}`, fid, cropID), token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/plantings?farmer_id=%.0f", farmerIDs[0]), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	plantings := parseJSON(t, rec)["plantings"].([]interface{})
	if len(plantings) != 1 {
		t.Fatalf("expected 1 filtered planting, got %d", len(plantings))
	}
	if plantings[0].(map[string]interface{})["farmer_name"] != "Sarah Brown" {
		t.Errorf("expected Sarah Brown's planting, got %v", plantings[0])
	}
}

func TestPlantingFlow_HarvestSchedule(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "scheduler", "password123")

	rec := app.request("POST", "/api/v1/farmers", `{"name":"John Smith"}`, token)
	farmerID := parseJSON(t, rec)["farmer"].(map[string]interface{})["id"].(float64)
	rec = app.request("POST", "/api/v1/crops", `{"name":"Rice"}`, token)
	cropID := parseJSON(t, rec)["crop"].(map[string]interface{})["id"].(float64)

	now := time.Now().UTC()
	soon := now.AddDate(0, 0, 10).Format("2006-01-02")
	far := now.AddDate(0, 0, 60).Format("2006-01-02")

	for _, harvest := range []string{soon, far} {
		rec = app.request("POST", "/api/v1/plantings",
			fmt.Sprintf(`{"farmer_id":%.0f,"crop_id":%.0f,"planting_date":"2024-05-01","area_planted":5,"expected_harvest_date":%q}`,
				farmerID, cropID, harvest), token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	// Default 30-day window includes only the nearer harvest
	rec = app.request("GET", "/api/v1/plantings/harvest-schedule", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	schedule := parseJSON(t, rec)["schedule"].([]interface{})
	if len(schedule) != 1 {
		t.Fatalf("expected 1 upcoming harvest, got %d", len(schedule))
	}

	// Widening the window includes both
	rec = app.request("GET", "/api/v1/plantings/harvest-schedule?days=90", "", token)
	schedule = parseJSON(t, rec)["schedule"].([]interface{})
	if len(schedule) != 2 {
		t.Fatalf("expected 2 harvests in 90-day window, got %d", len(schedule))
	}
}

func TestPlantingFlow_CropStatistics(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "cropstats", "password123")

	rec := app.request("POST", "/api/v1/farmers", `{"name":"Mary Johnson"}`, token)
	farmerID := parseJSON(t, rec)["farmer"].(map[string]interface{})["id"].(float64)
	rec = app.request("POST", "/api/v1/crops", `{"name":"Cotton","growth_period":180}`, token)
	cottonID := parseJSON(t, rec)["crop"].(map[string]interface{})["id"].(float64)
	app.request("POST", "/api/v1/crops", `{"name":"Barley"}`, token)

	rec = app.request("POST", "/api/v1/plantings",
		fmt.Sprintf(`{"farmer_id":%.0f,"crop_id":%.0f,"planting_date":"2024-04-10","area_planted":30}`, farmerID, cottonID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/crops/statistics", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stats := parseJSON(t, rec)["statistics"].(map[string]interface{})
	cropStats := stats["crop_stats"].([]interface{})
	if len(cropStats) != 2 {
		t.Fatalf("expected stats for 2 crops, got %d", len(cropStats))
	}
	first := cropStats[0].(map[string]interface{})
	if first["crop_name"] != "Cotton" || first["total_plantings"].(float64) != 1 {
		t.Errorf("expected Cotton with 1 planting first, got %v", first)
	}
	second := cropStats[1].(map[string]interface{})
	if second["crop_name"] != "Barley" || second["total_plantings"].(float64) != 0 {
		t.Errorf("expected unplanted Barley second, got %v", second)
	}

	growing := stats["growing_crops"].([]interface{})
	if len(growing) != 1 {
		t.Fatalf("expected 1 growing crop, got %d", len(growing))
	}
	if growing[0].(map[string]interface{})["total_growing_area"].(float64) != 30 {
		t.Errorf("expected growing area 30, got %v", growing[0])
	}
}
