package openweathermap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"openweather-cli/datasource"
	"openweather-cli/models"
)

// TimestampLayout is the format of dt_txt in forecast entries
const TimestampLayout = "2006-01-02 15:04:05"

// forecastResponse represents the /forecast response structure
type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}

// FetchForecast fetches the 3-hourly forecast for a location. Entries are
// returned in the order the API lists them.
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, q datasource.Query) (models.ForecastData, error) {
	params := p.params(q)
	if q.Count > 0 {
		params.Add("cnt", strconv.Itoa(q.Count))
	}

	var response forecastResponse
	if err := p.get(ctx, "forecast", params, &response); err != nil {
		return models.ForecastData{}, err
	}

	forecast := models.ForecastData{
		City:      response.City.Name,
		Country:   response.City.Country,
		Forecasts: make([]models.Forecast, 0, len(response.List)),
	}

	// Convert response to our model
	for i, item := range response.List {
		if len(item.Weather) == 0 {
			return models.ForecastData{}, fmt.Errorf("%w: forecast entry %d has no weather conditions", ErrUpstream, i)
		}

		timestamp, err := time.ParseInLocation(TimestampLayout, item.DtTxt, time.UTC)
		if err != nil {
			return models.ForecastData{}, fmt.Errorf("%w: forecast entry %d: bad dt_txt %q: %v", ErrUpstream, i, item.DtTxt, err)
		}

		forecast.Forecasts = append(forecast.Forecasts, models.Forecast{
			Temperature: item.Main.Temp,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
			Timestamp:   timestamp,
		})
	}

	return forecast, nil
}
