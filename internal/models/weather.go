package models

import "time"

// WeatherRecord represents a daily weather observation.
type WeatherRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `json:"date"`
	Temperature *float64  `json:"temperature,omitempty"`
	Humidity    *float64  `json:"humidity,omitempty"`
	Rainfall    *float64  `json:"rainfall,omitempty"`
	Description string    `json:"description"`
}

// TableName keeps the table name of the original data files.
func (WeatherRecord) TableName() string {
	return "weather_data"
}
