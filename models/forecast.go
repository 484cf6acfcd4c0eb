package models

import (
	"time"
)

// Forecast represents a single forecast point with weather conditions at a specific time
type Forecast struct {
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // upstream icon id, e.g. "10n"
	Timestamp   time.Time `json:"timestamp"`   // time this forecast is for
}

// ForecastData represents forecast data for a city. Forecasts keep the order
// in which the provider returned them.
type ForecastData struct {
	City      string     `json:"city"`
	Country   string     `json:"country"`
	Forecasts []Forecast `json:"forecasts"`
}
