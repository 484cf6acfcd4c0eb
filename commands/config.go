package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"openweather-cli/config"
)

const configShortDesc = "Configure the OpenWeather API key"

const configLongDesc = `Prompt for an OpenWeather API key and save it to ~/.weather.cfg.

The saved key is used by current and forecast when neither --api-key nor
OW_API_KEY is set.`

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, err := promptAPIKey(cmd)
			if err != nil {
				return err
			}

			store := config.NewStore(app.StorePath)
			if err := store.Write(apiKey); err != nil {
				return err
			}

			cmd.Printf("API key saved to %s\n", store.Path())
			return nil
		},
	}
}

// promptAPIKey asks until a non-empty line is entered
func promptAPIKey(cmd *cobra.Command) (string, error) {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("Please enter your API key: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read API key: %w", err)
			}
			cmd.Println()
			return "", errors.New("no API key entered")
		}
		if apiKey := strings.TrimSpace(scanner.Text()); apiKey != "" {
			return apiKey, nil
		}
	}
}
