package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "farmstead/internal/errors"
	"farmstead/internal/models"
	"farmstead/internal/services"
)

// --- mock crop service ---

type mockCropService struct {
	createCropFn           func(name, variety string, growthPeriod *int, yieldPerAcre, pricePerUnit *float64) (*models.Crop, error)
	getAllCropsFn          func() ([]models.Crop, error)
	getCropByIDFn          func(id uint) (*models.Crop, error)
	createPlantingFn       func(farmerID, cropID uint, plantingDate time.Time, areaPlanted float64, expectedHarvestDate *time.Time) (*models.Planting, error)
	getAllPlantingsFn      func(farmerID *uint) ([]services.PlantingRecord, error)
	getPlantingByIDFn      func(id uint) (*services.PlantingRecord, error)
	updatePlantingStatusFn func(id uint, status models.PlantingStatus) error
	getCropStatisticsFn    func() (*services.CropStatistics, error)
	getHarvestScheduleFn   func(daysAhead int) ([]services.HarvestEntry, error)
}

func (m *mockCropService) CreateCrop(name, variety string, growthPeriod *int, yieldPerAcre, pricePerUnit *float64) (*models.Crop, error) {
	if m.createCropFn != nil {
		return m.createCropFn(name, variety, growthPeriod, yieldPerAcre, pricePerUnit)
	}
	return &models.Crop{}, nil
}

func (m *mockCropService) GetAllCrops() ([]models.Crop, error) {
	if m.getAllCropsFn != nil {
		return m.getAllCropsFn()
	}
	return []models.Crop{}, nil
}

func (m *mockCropService) GetCropByID(id uint) (*models.Crop, error) {
	if m.getCropByIDFn != nil {
		return m.getCropByIDFn(id)
	}
	return &models.Crop{}, nil
}

func (m *mockCropService) CreatePlanting(farmerID, cropID uint, plantingDate time.Time, areaPlanted float64, expectedHarvestDate *time.Time) (*models.Planting, error) {
	if m.createPlantingFn != nil {
		return m.createPlantingFn(farmerID, cropID, plantingDate, areaPlanted, expectedHarvestDate)
	}
	return &models.Planting{}, nil
}

func (m *mockCropService) GetAllPlantings(farmerID *uint) ([]services.PlantingRecord, error) {
	if m.getAllPlantingsFn != nil {
		return m.getAllPlantingsFn(farmerID)
	}
	return []services.PlantingRecord{}, nil
}

func (m *mockCropService) GetPlantingByID(id uint) (*services.PlantingRecord, error) {
	if m.getPlantingByIDFn != nil {
		return m.getPlantingByIDFn(id)
	}
	return &services.PlantingRecord{}, nil
}

func (m *mockCropService) UpdatePlantingStatus(id uint, status models.PlantingStatus) error {
	if m.updatePlantingStatusFn != nil {
		return m.updatePlantingStatusFn(id, status)
	}
	return nil
}

func (m *mockCropService) GetCropStatistics() (*services.CropStatistics, error) {
	if m.getCropStatisticsFn != nil {
		return m.getCropStatisticsFn()
	}
	return &services.CropStatistics{}, nil
}

func (m *mockCropService) GetHarvestSchedule(daysAhead int) ([]services.HarvestEntry, error) {
	if m.getHarvestScheduleFn != nil {
		return m.getHarvestScheduleFn(daysAhead)
	}
	return []services.HarvestEntry{}, nil
}

// verify interface compliance
var _ services.CropServicer = (*mockCropService)(nil)

func setupCropRouter(handler *CropHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/crops", handler.CreateCrop)
	auth.GET("/crops", handler.GetAllCrops)
	auth.GET("/crops/statistics", handler.GetCropStatistics)
	auth.GET("/crops/:id", handler.GetCropByID)
	auth.POST("/plantings", handler.CreatePlanting)
	auth.GET("/plantings", handler.GetAllPlantings)
	auth.GET("/plantings/harvest-schedule", handler.GetHarvestSchedule)
	auth.GET("/plantings/:id", handler.GetPlantingByID)
	auth.PUT("/plantings/:id/status", handler.UpdatePlantingStatus)
	return r
}

// --- tests ---

func TestCropHandler_CreateCrop(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCropService{
			createCropFn: func(name, variety string, growthPeriod *int, _, _ *float64) (*models.Crop, error) {
				return &models.Crop{ID: 1, Name: name, Variety: variety, GrowthPeriod: growthPeriod}, nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "POST", "/crops",
			`{"name":"Wheat","variety":"Winter Wheat","growth_period":120}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		crop := parseJSON(t, rec)["crop"].(map[string]interface{})
		if crop["growth_period"] != float64(120) {
			t.Errorf("expected growth period 120, got %v", crop["growth_period"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewCropHandler(&mockCropService{})
		r := setupCropRouter(handler)

		rec := doRequest(r, "POST", "/crops", `{"variety":"Winter Wheat"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCropHandler_CreatePlanting(t *testing.T) {
	t.Run("parses dates and passes nil harvest when omitted", func(t *testing.T) {
		var gotPlanting time.Time
		var gotHarvest *time.Time
		svc := &mockCropService{
			createPlantingFn: func(farmerID, cropID uint, plantingDate time.Time, area float64, harvest *time.Time) (*models.Planting, error) {
				gotPlanting = plantingDate
				gotHarvest = harvest
				return &models.Planting{ID: 1, FarmerID: farmerID, CropID: cropID}, nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "POST", "/plantings",
			`{"farmer_id":1,"crop_id":2,"planting_date":"2024-03-15","area_planted":25}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPlanting.Format("2006-01-02") != "2024-03-15" {
			t.Errorf("expected planting date 2024-03-15, got %v", gotPlanting)
		}
		if gotHarvest != nil {
			t.Errorf("expected nil harvest date, got %v", gotHarvest)
		}
	})

	t.Run("returns 400 on malformed planting date", func(t *testing.T) {
		handler := NewCropHandler(&mockCropService{})
		r := setupCropRouter(handler)

		rec := doRequest(r, "POST", "/plantings",
			`{"farmer_id":1,"crop_id":2,"planting_date":"03/15/2024","area_planted":25}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCropHandler_GetAllPlantings(t *testing.T) {
	t.Run("passes farmer filter", func(t *testing.T) {
		var got *uint
		svc := &mockCropService{
			getAllPlantingsFn: func(farmerID *uint) ([]services.PlantingRecord, error) {
				got = farmerID
				return []services.PlantingRecord{}, nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "GET", "/plantings?farmer_id=7", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got != 7 {
			t.Errorf("expected farmer filter 7, got %v", got)
		}
	})

	t.Run("returns 400 on bad farmer_id", func(t *testing.T) {
		handler := NewCropHandler(&mockCropService{})
		r := setupCropRouter(handler)

		rec := doRequest(r, "GET", "/plantings?farmer_id=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCropHandler_UpdatePlantingStatus(t *testing.T) {
	t.Run("passes status through", func(t *testing.T) {
		var gotStatus models.PlantingStatus
		svc := &mockCropService{
			updatePlantingStatusFn: func(_ uint, status models.PlantingStatus) error {
				gotStatus = status
				return nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "PUT", "/plantings/1/status", `{"status":"Harvested"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotStatus != models.PlantingStatusHarvested {
			t.Errorf("expected status Harvested, got %s", gotStatus)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCropService{
			updatePlantingStatusFn: func(uint, models.PlantingStatus) error {
				return apperrors.ErrPlantingNotFound
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "PUT", "/plantings/42/status", `{"status":"Failed"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCropHandler_GetHarvestSchedule(t *testing.T) {
	t.Run("passes days window", func(t *testing.T) {
		var gotDays int
		svc := &mockCropService{
			getHarvestScheduleFn: func(daysAhead int) ([]services.HarvestEntry, error) {
				gotDays = daysAhead
				return []services.HarvestEntry{}, nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "GET", "/plantings/harvest-schedule?days=14", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotDays != 14 {
			t.Errorf("expected 14 days, got %d", gotDays)
		}
	})

	t.Run("missing days passes zero for default", func(t *testing.T) {
		var gotDays = -1
		svc := &mockCropService{
			getHarvestScheduleFn: func(daysAhead int) ([]services.HarvestEntry, error) {
				gotDays = daysAhead
				return []services.HarvestEntry{}, nil
			},
		}
		handler := NewCropHandler(svc)
		r := setupCropRouter(handler)

		rec := doRequest(r, "GET", "/plantings/harvest-schedule", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotDays != 0 {
			t.Errorf("expected 0 passed through, got %d", gotDays)
		}
	})
}
