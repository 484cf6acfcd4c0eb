// Package commands wires the weather CLI's cobra command tree.
package commands

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"openweather-cli/config"
	"openweather-cli/datasource"
	"openweather-cli/providers/openweathermap"
)

// Banner is printed above every report
const Banner = "OpenWeather CLI ✨"

// MissingKeyMessage is shown when no API key could be resolved
const MissingKeyMessage = "Please enter your OpenWeather API KEY"

var bannerStyle = lipgloss.NewStyle().Bold(true)

// App carries the process-level dependencies of the command tree
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// StorePath is the credential file, normally ~/.weather.cfg
	StorePath string

	// Getenv looks up environment variables
	Getenv func(string) string

	// NewProvider builds the weather provider for a resolved API key
	NewProvider func(apiKey string, logger *log.Logger) datasource.Provider

	Version string
}

// NewApp returns an App bound to the process's stdio and environment
func NewApp(storePath, version string) *App {
	return &App{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		StorePath:   storePath,
		Getenv:      os.Getenv,
		NewProvider: NewOpenWeatherMapProvider,
		Version:     version,
	}
}

// NewOpenWeatherMapProvider is the default provider factory
func NewOpenWeatherMapProvider(apiKey string, logger *log.Logger) datasource.Provider {
	provider := openweathermap.NewOpenWeatherMapProvider(apiKey)
	provider.SetLogger(logger)
	return provider
}

// rootOptions holds the global flags, read once per invocation
type rootOptions struct {
	celsius bool
	apiKey  string
	verbose bool
}

// NewRootCmd builds the weather command tree
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "weather",
		Short:         "A CLI to interact with the OpenWeather API",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(app.In)
	cmd.SetOut(app.Out)
	cmd.SetErr(app.Err)

	cmd.PersistentFlags().BoolVarP(&opts.celsius, "celsius", "c", false, "Show all the temperatures in celsius")
	cmd.PersistentFlags().StringVarP(&opts.apiKey, "api-key", "a", "", "Your OpenWeather API Key (default $"+config.EnvAPIKey+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log outgoing requests to stderr")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newCurrentCmd(app, opts))
	cmd.AddCommand(newForecastCmd(app, opts))

	return cmd
}

// provider resolves the API key and builds a provider for it. On a missing
// key the user-facing message is printed and config.ErrMissingCredential returned.
func (a *App) provider(opts *rootOptions) (datasource.Provider, error) {
	apiKey, err := config.ResolveAPIKey(opts.apiKey, a.Getenv(config.EnvAPIKey), config.NewStore(a.StorePath))
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			_, _ = io.WriteString(a.Out, MissingKeyMessage+"\n")
		}
		return nil, err
	}

	var logger *log.Logger
	if opts.verbose {
		logger = log.New(a.Err, "weather: ", log.LstdFlags)
	}
	return a.NewProvider(apiKey, logger), nil
}

// printReport writes the banner followed by the report
func printReport(out io.Writer, report string) error {
	_, err := io.WriteString(out, bannerStyle.Render(Banner)+"\n\n"+strings.TrimRight(report, "\n")+"\n")
	return err
}
