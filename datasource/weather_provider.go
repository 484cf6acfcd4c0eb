package datasource

import (
	"context"

	"openweather-cli/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a location
	GetWeather(ctx context.Context, q Query) (models.WeatherData, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the forecast entries for a location
	FetchForecast(ctx context.Context, q Query) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// Provider is implemented by services that serve both current weather and forecasts
type Provider interface {
	WeatherProvider
	ForecastSource
}
