package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"openweather-cli/datasource"
	"openweather-cli/report"
)

func newCurrentCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current <location>",
		Short: "Show the current weather in a given city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := app.provider(opts)
			if err != nil {
				return err
			}

			q := datasource.Query{Location: args[0], Celsius: opts.celsius}
			return runCurrent(cmd.Context(), cmd.OutOrStdout(), provider, q)
		},
	}
}

// runCurrent fetches and prints the current weather for q
func runCurrent(ctx context.Context, out io.Writer, provider datasource.WeatherProvider, q datasource.Query) error {
	data, err := provider.GetWeather(ctx, q)
	if err != nil {
		return err
	}

	text, err := report.FormatCurrent(data)
	if err != nil {
		return err
	}

	return printReport(out, text)
}
