package services

import (
	"testing"
	"time"

	"farmstead/internal/pagination"
	"farmstead/internal/testutil"
)

func TestRecordObservation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeatherService(db)

		temp := 22.5
		rain := 4.2
		record, err := svc.RecordObservation(testutil.Date("2024-06-01"), &temp, nil, &rain, "Light showers")
		testutil.AssertNoError(t, err)

		if record.ID == 0 {
			t.Fatal("expected non-zero record ID")
		}
		if record.Humidity != nil {
			t.Errorf("expected nil humidity, got %v", *record.Humidity)
		}
	})

	t.Run("missing_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeatherService(db)

		_, err := svc.RecordObservation(time.Time{}, nil, nil, nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetObservations(t *testing.T) {
	t.Run("newest_first_within_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeatherService(db)

		for _, day := range []string{"2024-06-01", "2024-06-05", "2024-07-01"} {
			_, err := svc.RecordObservation(testutil.Date(day), nil, nil, nil, "")
			testutil.AssertNoError(t, err)
		}

		from := testutil.Date("2024-06-01")
		to := testutil.Date("2024-06-30")
		result, err := svc.GetObservations(&from, &to, pagination.PageRequest{Page: 1, PageSize: 20})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 observations in June, got %d", result.TotalItems)
		}
		if !result.Data[0].Date.After(result.Data[1].Date) {
			t.Errorf("expected newest observation first")
		}
	})
}

func TestDeleteObservation(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWeatherService(db)

		record, err := svc.RecordObservation(testutil.Date("2024-06-01"), nil, nil, nil, "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteObservation(record.ID))

		err = svc.DeleteObservation(record.ID)
		testutil.AssertAppError(t, err, "WEATHER_RECORD_NOT_FOUND")
	})
}
