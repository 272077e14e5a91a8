// Command render builds the panel offline from a saved Open-Meteo response.
// It derives the display at a fixed instant so the output is reproducible.
//
// Usage:
//
//	go run ./cmd/render \
//	  -forecast internal/pipeline/testdata/forecast.json \
//	  -now 2024-06-01T18:20:00Z \
//	  -out build/panel
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	forecastPath := flag.String("forecast", "", "path to an Open-Meteo /forecast JSON response")
	nowFlag := flag.String("now", "", "RFC 3339 instant to derive at (default: current time)")
	outDir := flag.String("out", ".", "directory for panel.html, display.json and merge_variables.json")
	tempUnit := flag.String("temperature-unit", domain.UnitFahrenheit, "fahrenheit or celsius")
	windUnit := flag.String("wind-speed-unit", "mph", "wind speed unit label")
	flag.Parse()

	if *forecastPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -forecast")
	}

	now := time.Now()
	if *nowFlag != "" {
		t, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			return fmt.Errorf("parse -now: %w", err)
		}
		now = t
	}

	data, err := os.ReadFile(*forecastPath)
	if err != nil {
		return err
	}
	var raw domain.RawForecast
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode %s: %w", *forecastPath, err)
	}

	loc := domain.Location{Latitude: raw.Latitude, Longitude: raw.Longitude}
	units := domain.Units{Temperature: *tempUnit, WindSpeed: *windUnit}
	snap, err := pipeline.NewTransformer(units).Transform(raw, loc, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(*outDir, "panel.html"), []byte(snap.Markup), 0o644); err != nil { //nolint:gosec // generated artifact
		return err
	}
	if err := writeJSON(filepath.Join(*outDir, "display.json"), snap.Display); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(*outDir, "merge_variables.json"), map[string]any{
		"merge_variables": domain.MergeVariables(snap.Display),
	}); err != nil {
		return err
	}

	log.Printf("rendered %s for %s (%s, %d chart hours, %d days)",
		*outDir, now.In(raw.Location()).Format(time.RFC3339),
		snap.Display.Current.Description, len(snap.Display.ChartHours), len(snap.Display.Daily))
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644) //nolint:gosec // generated artifact
}
