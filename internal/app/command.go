package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pogoda-hq/pogoda-client/internal/config"
	"github.com/pogoda-hq/pogoda-client/internal/logger"
)

// NewRootCommand builds the pogoda CLI. The city comes from the positional
// argument or from the default_city config key; the API key from --key or
// the WEATHER_API_KEY environment variable.
func NewRootCommand() *cobra.Command {
	var (
		apiKey string
		output string
	)

	cmd := &cobra.Command{
		Use:   "pogoda [city]",
		Short: "Fetch current weather for a city",
		Long: `Pogoda looks up the current weather for a city via OpenWeatherMap
and prints it as text, JSON or YAML. Weather descriptions and error
messages are in Polish, values are metric.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if output != "" {
				cfg.OutputFormat = output
			}

			city := cfg.DefaultCity
			if len(args) > 0 {
				city = args[0]
			}
			if strings.TrimSpace(city) == "" {
				return errors.New("no city given: pass one as an argument or set DEFAULT_CITY")
			}
			if strings.TrimSpace(cfg.APIKey) == "" {
				return errors.New("no API key configured: use --key or set WEATHER_API_KEY")
			}

			log, err := logger.Init(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Close()

			a, err := New(cfg, log)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			return a.Run(cmd.Context(), city)
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "OpenWeatherMap API key (overrides WEATHER_API_KEY)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")

	return cmd
}
