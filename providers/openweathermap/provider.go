package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"openweather-cli/datasource"
	"openweather-cli/models"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 API root
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

// ErrUpstream is returned for any failed round-trip or unusable response
var ErrUpstream = errors.New("openweathermap request failed")

// OpenWeatherMapProvider fetches current weather and forecasts from OpenWeatherMap
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// Ensure OpenWeatherMapProvider implements datasource.Provider
var _ datasource.Provider = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(apiKey string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log.New(io.Discard, "", 0),
	}
}

// SetBaseURL changes the API root, mostly for tests
func (p *OpenWeatherMapProvider) SetBaseURL(baseURL string) {
	p.baseURL = baseURL
}

// SetLogger sets where request logs are written
func (p *OpenWeatherMapProvider) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p.logger = logger
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// currentResponse is the subset of /weather the report needs
type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp    float64 `json:"temp"`
		TempMax float64 `json:"temp_max"`
		TempMin float64 `json:"temp_min"`
	} `json:"main"`
}

// errorResponse is the body OpenWeatherMap sends with non-200 statuses
type errorResponse struct {
	Message string `json:"message"`
}

// GetWeather fetches current weather for a location
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, q datasource.Query) (models.WeatherData, error) {
	var response currentResponse
	if err := p.get(ctx, "weather", p.params(q), &response); err != nil {
		return models.WeatherData{}, err
	}

	if len(response.Weather) == 0 {
		return models.WeatherData{}, fmt.Errorf("%w: response has no weather conditions", ErrUpstream)
	}

	return models.WeatherData{
		City:        response.Name,
		Country:     response.Sys.Country,
		Description: response.Weather[0].Description,
		Icon:        response.Weather[0].Icon,
		Temperature: response.Main.Temp,
		TempMax:     response.Main.TempMax,
		TempMin:     response.Main.TempMin,
	}, nil
}

// params builds the query parameters shared by both endpoints
func (p *OpenWeatherMapProvider) params(q datasource.Query) url.Values {
	params := url.Values{}
	params.Add("q", q.Location)
	params.Add("APPID", p.apiKey)
	if q.Celsius {
		params.Add("units", "metric")
	}
	return params
}

// get issues a GET against endpoint and decodes the JSON body into out
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	requestURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())

	redacted := url.Values{}
	for k, v := range params {
		redacted[k] = v
	}
	redacted.Set("APPID", "***")
	p.logger.Printf("GET %s/%s?%s", p.baseURL, endpoint, redacted.Encode())

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrUpstream, err)
	}
	p.logger.Printf("%s responded %d (%d bytes)", endpoint, resp.StatusCode, len(body))

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%w: API error (status %d): %s", ErrUpstream, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: API error (status %d): %s", ErrUpstream, resp.StatusCode, string(body))
	}

	// Parse response
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ErrUpstream, err)
	}

	return nil
}
