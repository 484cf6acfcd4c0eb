package commands

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openweather-cli/config"
	"openweather-cli/datasource"
	"openweather-cli/providers/openweathermap"
)

const currentBody = `{
	"name": "London",
	"sys": {"country": "GB"},
	"weather": [{"description": "clear sky", "icon": "01d"}],
	"main": {"temp": 20.5, "temp_max": 22.0, "temp_min": 18.0}
}`

const forecastBody = `{
	"city": {"name": "London", "country": "GB"},
	"list": [
		{"main": {"temp": 20.5}, "weather": [{"description": "clear sky", "icon": "01d"}], "dt_txt": "2023-06-05 12:00:00"},
		{"main": {"temp": 17}, "weather": [{"description": "overcast clouds", "icon": "04n"}], "dt_txt": "2023-06-05 15:00:00"}
	]
}`

type harness struct {
	mu      sync.Mutex
	app     *App
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	env     map[string]string
	keys    []string
	queries []url.Values
	body    string
	status  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		env:    map[string]string{},
		body:   currentBody,
		status: http.StatusOK,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.queries = append(h.queries, r.URL.Query())
		status, body := h.status, h.body
		h.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	h.app = &App{
		In:        strings.NewReader(""),
		Out:       h.out,
		Err:       h.errOut,
		StorePath: filepath.Join(t.TempDir(), config.FileName),
		Getenv:    func(key string) string { return h.env[key] },
		NewProvider: func(apiKey string, logger *log.Logger) datasource.Provider {
			h.keys = append(h.keys, apiKey)
			p := openweathermap.NewOpenWeatherMapProvider(apiKey)
			p.SetBaseURL(server.URL)
			p.SetLogger(logger)
			return p
		},
		Version: "test",
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := NewRootCmd(h.app)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCurrent_PrintsBannerAndReport(t *testing.T) {
	h := newHarness(t)

	err := h.run("--api-key", "flag-key", "current", "London")
	require.NoError(t, err)

	got := h.out.String()
	assert.Contains(t, got, Banner)
	assert.Contains(t, got, "City: London")
	assert.Contains(t, got, "Country: GB")
	assert.Contains(t, got, "clear sky ☀️")
	assert.Contains(t, got, "Current Temperature: 20.50")
	assert.Less(t, strings.Index(got, Banner), strings.Index(got, "City: London"))
}

func TestCurrent_MissingCredential_PrintsMessageWithoutRequest(t *testing.T) {
	h := newHarness(t)

	err := h.run("current", "London")
	require.ErrorIs(t, err, config.ErrMissingCredential)

	assert.Equal(t, MissingKeyMessage+"\n", h.out.String())
	assert.Empty(t, h.keys, "no provider built")
	assert.Empty(t, h.queries, "no request sent")
}

func TestForecast_MissingCredential_PrintsMessageWithoutRequest(t *testing.T) {
	h := newHarness(t)

	err := h.run("forecast", "London", "-r", "3")
	require.ErrorIs(t, err, config.ErrMissingCredential)

	assert.Contains(t, h.out.String(), MissingKeyMessage)
	assert.Empty(t, h.queries)
}

func TestCurrent_ExplicitKeyWinsOverStoredKey(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, config.NewStore(h.app.StorePath).Write("stored-key"))
	h.env[config.EnvAPIKey] = "env-key"

	require.NoError(t, h.run("-a", "flag-key", "current", "London"))

	require.Len(t, h.queries, 1)
	assert.Equal(t, "flag-key", h.queries[0].Get("APPID"))
}

func TestCurrent_EnvironmentKeyWinsOverStoredKey(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, config.NewStore(h.app.StorePath).Write("stored-key"))
	h.env[config.EnvAPIKey] = "env-key"

	require.NoError(t, h.run("current", "London"))

	assert.Equal(t, []string{"env-key"}, h.keys)
}

func TestCurrent_UsesStoredKey_When_NoFlag(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, config.NewStore(h.app.StorePath).Write("stored-key"))

	require.NoError(t, h.run("current", "London"))

	assert.Equal(t, []string{"stored-key"}, h.keys)
}

func TestCurrent_CelsiusFlagControlsUnits(t *testing.T) {
	t.Run("without flag", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.run("-a", "k", "current", "London"))

		require.Len(t, h.queries, 1)
		_, hasUnits := h.queries[0]["units"]
		assert.False(t, hasUnits)
	})

	t.Run("with flag", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.run("-c", "-a", "k", "current", "London"))

		require.Len(t, h.queries, 1)
		assert.Equal(t, "metric", h.queries[0].Get("units"))
	})
}

func TestCurrent_UpstreamError_PrintsNothing(t *testing.T) {
	h := newHarness(t)
	h.status = http.StatusUnauthorized
	h.body = `{"cod":401,"message":"Invalid API key."}`

	err := h.run("-a", "bad", "current", "London")
	require.ErrorIs(t, err, openweathermap.ErrUpstream)
	assert.Contains(t, err.Error(), "Invalid API key.")
	assert.Empty(t, h.out.String())
}

func TestCurrent_RequiresLocation(t *testing.T) {
	h := newHarness(t)

	err := h.run("-a", "k", "current")
	require.Error(t, err)
	assert.Empty(t, h.queries)
}

func TestForecast_PrintsEntriesAndSendsCount(t *testing.T) {
	h := newHarness(t)
	h.body = forecastBody

	require.NoError(t, h.run("--celsius", "-a", "k", "forecast", "London", "--results", "2"))

	require.Len(t, h.queries, 1)
	assert.Equal(t, "2", h.queries[0].Get("cnt"))
	assert.Equal(t, "metric", h.queries[0].Get("units"))

	got := h.out.String()
	assert.Contains(t, got, Banner)
	assert.Contains(t, got, "Monday 12h\nclear sky ☀️\nTemperature: 20.50")
	assert.Contains(t, got, "Monday 15h\novercast clouds ☁️\nTemperature: 17.00")
	assert.Less(t, strings.Index(got, "Monday 12h"), strings.Index(got, "Monday 15h"))
}

func TestForecast_OmitsCount_When_ResultsNotGiven(t *testing.T) {
	h := newHarness(t)
	h.body = forecastBody

	require.NoError(t, h.run("-a", "k", "forecast", "London"))

	require.Len(t, h.queries, 1)
	_, hasCnt := h.queries[0]["cnt"]
	assert.False(t, hasCnt)
}

func TestForecast_RejectsNegativeResults(t *testing.T) {
	h := newHarness(t)

	err := h.run("-a", "k", "forecast", "London", "--results=-1")
	require.Error(t, err)
	assert.Empty(t, h.queries)
}

func TestForecast_UnmappedIcon_PrintsNothing(t *testing.T) {
	h := newHarness(t)
	h.body = `{"city": {"name": "London", "country": "GB"}, "list": [
		{"main": {"temp": 1}, "weather": [{"description": "???", "icon": "99d"}], "dt_txt": "2023-06-05 12:00:00"}
	]}`

	err := h.run("-a", "k", "forecast", "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmapped icon code")
	assert.Empty(t, h.out.String())
}

func TestConfig_SavesPromptedKey(t *testing.T) {
	h := newHarness(t)
	h.app.In = strings.NewReader("\n  my-api-key  \n")

	require.NoError(t, h.run("config"))

	raw, err := os.ReadFile(h.app.StorePath)
	require.NoError(t, err)
	assert.Equal(t, "my-api-key", string(raw))
	assert.Equal(t, 2, strings.Count(h.out.String(), "Please enter your API key: "), "re-prompts on empty input")
	assert.Contains(t, h.out.String(), "API key saved to "+h.app.StorePath)
}

func TestConfig_ThenCurrent_UsesSavedKey(t *testing.T) {
	h := newHarness(t)
	h.app.In = strings.NewReader("saved-key\n")
	require.NoError(t, h.run("config"))

	require.NoError(t, h.run("current", "London"))
	assert.Equal(t, []string{"saved-key"}, h.keys)
}

func TestConfig_FailsOnEOF(t *testing.T) {
	h := newHarness(t)

	err := h.run("config")
	require.Error(t, err)
	_, statErr := os.Stat(h.app.StorePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVerbose_LogsToErrWriter(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("-v", "-a", "secret", "current", "London"))

	assert.Contains(t, h.errOut.String(), "GET ")
	assert.NotContains(t, h.errOut.String(), "secret")
	assert.NotContains(t, h.out.String(), "GET ")
}
