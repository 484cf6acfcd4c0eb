// Package report renders weather data as plain text reports.
package report

import (
	"fmt"
	"strings"

	"openweather-cli/models"
)

// FormatCurrent renders the current weather for one location
func FormatCurrent(w models.WeatherData) (string, error) {
	glyph, err := Glyph(IconCode(w.Icon))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, w.City, w.Country)
	fmt.Fprintf(&b, "\n%s %s\n\n", w.Description, glyph)
	fmt.Fprintf(&b, "Current Temperature: %.2f\n", w.Temperature)
	fmt.Fprintf(&b, "Max Temperature: %.2f\n", w.TempMax)
	fmt.Fprintf(&b, "Min Temperature: %.2f", w.TempMin)
	return b.String(), nil
}

// FormatForecast renders every forecast entry in the order given
func FormatForecast(f models.ForecastData) (string, error) {
	var b strings.Builder
	writeHeader(&b, f.City, f.Country)

	for _, entry := range f.Forecasts {
		glyph, err := Glyph(IconCode(entry.Icon))
		if err != nil {
			return "", fmt.Errorf("forecast for %s: %w", entry.Timestamp.Format("2006-01-02 15:04"), err)
		}

		fmt.Fprintf(&b, "\n%s\n", SlotLabel(entry.Timestamp))
		fmt.Fprintf(&b, "%s %s\n", entry.Description, glyph)
		fmt.Fprintf(&b, "Temperature: %.2f\n", entry.Temperature)
	}

	return b.String(), nil
}

func writeHeader(b *strings.Builder, city, country string) {
	fmt.Fprintf(b, "City: %s\n", city)
	fmt.Fprintf(b, "Country: %s\n", country)
}
