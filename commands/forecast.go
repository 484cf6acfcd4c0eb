package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"openweather-cli/datasource"
	"openweather-cli/report"
)

func newForecastCmd(app *App, opts *rootOptions) *cobra.Command {
	var results int

	cmd := &cobra.Command{
		Use:   "forecast <location>",
		Short: "Show the forecast weather for the next 5 days each 3 hours in a given city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if results < 0 {
				return fmt.Errorf("--results must not be negative, got %d", results)
			}

			provider, err := app.provider(opts)
			if err != nil {
				return err
			}

			q := datasource.Query{Location: args[0], Celsius: opts.celsius, Count: results}
			return runForecast(cmd.Context(), cmd.OutOrStdout(), provider, q)
		},
	}

	cmd.Flags().IntVarP(&results, "results", "r", 0, "Number of forecast entries to show (3 hours apart)")

	return cmd
}

// runForecast fetches and prints the forecast for q
func runForecast(ctx context.Context, out io.Writer, source datasource.ForecastSource, q datasource.Query) error {
	data, err := source.FetchForecast(ctx, q)
	if err != nil {
		return err
	}

	text, err := report.FormatForecast(data)
	if err != nil {
		return err
	}

	return printReport(out, text)
}
