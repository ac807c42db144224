package app

import (
	"strings"
	"testing"
)

func TestRootCommandRequiresCity(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "k")
	t.Setenv("DEFAULT_CITY", "")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error when no city is given")
	}
	if !strings.Contains(err.Error(), "no city given") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRootCommandRequiresAPIKey(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("DEFAULT_CITY", "")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"Warszawa"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error when no API key is configured")
	}
	if !strings.Contains(err.Error(), "no API key configured") {
		t.Errorf("unexpected error: %v", err)
	}
}
