package models

// WeatherData represents the current weather observation for a location
type WeatherData struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"` // upstream icon id, e.g. "01d"
	Temperature float64 `json:"temperature"`
	TempMax     float64 `json:"tempMax"`
	TempMin     float64 `json:"tempMin"`
}
