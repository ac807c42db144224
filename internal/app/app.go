package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pogoda-hq/pogoda-client/internal/config"
	"github.com/pogoda-hq/pogoda-client/pkg/httpclient"
	"github.com/pogoda-hq/pogoda-client/pkg/openweather"
)

// WeatherService is the slice of the weather client the app depends on.
type WeatherService interface {
	FetchWeather(ctx context.Context, city string) (openweather.WeatherRecord, error)
}

// App wires configuration, logging and the weather client together for one
// lookup per invocation.
type App struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	weather WeatherService
	out     io.Writer
}

// New builds the app runtime from config. The transport chain is resty with
// the configured timeout, wrapped in a throttle when requests_per_minute is
// set.
func New(cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var transport httpclient.Client = httpclient.NewRestyClient(cfg.HTTPTimeout)
	if cfg.RequestsPerMinute > 0 {
		transport = httpclient.NewThrottledClient(transport, float64(cfg.RequestsPerMinute)/60.0, 1)
	}

	return &App{
		cfg:     cfg,
		log:     log,
		weather: openweather.NewClient(cfg.APIKey, transport),
		out:     os.Stdout,
	}, nil
}

// Run performs a single weather lookup and renders the result to stdout.
// On failure the returned error carries the user-facing text; technical
// detail goes to the log.
func (a *App) Run(ctx context.Context, city string) error {
	if a == nil || a.weather == nil {
		return fmt.Errorf("app is not initialized")
	}

	start := time.Now()
	a.log.Infow("weather lookup started", "city", city)

	record, err := a.weather.FetchWeather(ctx, city)
	if err != nil {
		werr := openweather.Classify(err)
		a.log.Errorw("weather lookup failed",
			"city", city,
			"kind", werr.Kind.String(),
			"error", err,
		)
		return errors.New(werr.UserMessage())
	}

	a.log.Infow("weather lookup completed",
		"city", city,
		"location", record.LocationName,
		"temperature_celsius", record.TemperatureCelsius,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if err := renderRecord(a.out, record, a.cfg.OutputFormat); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}
