package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pogoda-hq/pogoda-client/pkg/openweather"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// renderRecord writes the record to w in the requested format.
func renderRecord(w io.Writer, record openweather.WeatherRecord, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatText, "":
		return renderText(w, record)
	case formatJSON:
		return renderJSON(w, record)
	case formatYAML:
		return renderYAML(w, record)
	default:
		return fmt.Errorf("unsupported output format %q (expected text, json or yaml)", format)
	}
}

func renderText(w io.Writer, record openweather.WeatherRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Miejscowość:\t%s\n", record.LocationName)
	fmt.Fprintf(tw, "Temperatura:\t%.1f °C\n", record.TemperatureCelsius)
	if record.FeelsLikeCelsius != nil {
		fmt.Fprintf(tw, "Temperatura odczuwalna:\t%.1f °C\n", *record.FeelsLikeCelsius)
	}
	fmt.Fprintf(tw, "Ciśnienie:\t%d hPa\n", record.PressureHpa)
	fmt.Fprintf(tw, "Wiatr:\t%.1f m/s\n", record.WindSpeedMetersPerSecond)
	if summary := conditionSummary(record.Conditions); summary != "" {
		fmt.Fprintf(tw, "Warunki:\t%s\n", summary)
	}
	return tw.Flush()
}

// conditionSummary joins condition descriptions in provider order, falling
// back to the category when a description is missing.
func conditionSummary(conditions []openweather.ConditionEntry) string {
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		switch {
		case c.Description != "":
			parts = append(parts, c.Description)
		case c.Category != "":
			parts = append(parts, c.Category)
		}
	}
	return strings.Join(parts, ", ")
}

func renderJSON(w io.Writer, record openweather.WeatherRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func renderYAML(w io.Writer, record openweather.WeatherRecord) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
