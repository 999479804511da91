package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// envDefaults are process-level defaults picked up from MULTIVIEWER_*
// environment variables before flags are parsed. Flags and the
// comparison file both override them.
type envDefaults struct {
	SamplingHz float64 `envconfig:"SAMPLING_HZ" default:"5"`
	LogLevel   string  `envconfig:"LOG_LEVEL" default:"info"`
	Out        string  `envconfig:"OUT" default:"traces.png"`
	Width      int     `envconfig:"CHART_WIDTH" default:"1100"`
	Height     int     `envconfig:"CHART_HEIGHT" default:"420"`
}

// runConfig is the fully resolved set of knobs one invocation runs
// with, after flags, the comparison file and the environment are
// merged.
type runConfig struct {
	Files            []string
	SamplingHz       float64
	Samples          []string
	Segments         []string
	Sides            string
	Normalize        string
	BaselineStart    float64
	BaselineDuration float64
	SmoothPct        float64
	Mean             bool
	Delta            bool
	View             string
	Colors           string
	Align            string
	Title            string
	Out              string
	Width            int
	Height           int
	LogLevel         string
}

// compareConfig is the YAML comparison file: a reusable description of
// which files to compare and how to render them. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
type compareConfig struct {
	Files            []string `yaml:"files"`
	SamplingHz       float64  `yaml:"sampling_hz" validate:"gte=0"`
	Samples          []string `yaml:"samples"`
	Segments         []string `yaml:"segments"`
	Sides            string   `yaml:"sides" validate:"omitempty,oneof=both left right l r"`
	Normalize        string   `yaml:"normalize" validate:"omitempty,oneof=none mean baseline"`
	BaselineStart    float64  `yaml:"baseline_start" validate:"gte=0"`
	BaselineDuration float64  `yaml:"baseline_duration" validate:"gte=0"`
	SmoothPct        float64  `yaml:"smooth_pct" validate:"gte=0,lte=100"`
	Mean             bool     `yaml:"mean"`
	Delta            bool     `yaml:"delta"`
	View             string   `yaml:"view" validate:"omitempty,oneof=overlay stacked"`
	Colors           string   `yaml:"colors" validate:"omitempty,oneof=identity anatomy"`
	Align            string   `yaml:"align" validate:"omitempty,oneof=strict truncate resample"`
	Title            string   `yaml:"title"`
	Out              string   `yaml:"out"`
	Width            int      `yaml:"width" validate:"gte=0,lte=8192"`
	Height           int      `yaml:"height" validate:"gte=0,lte=8192"`
}

func loadCompareConfig(path string) (*compareConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read comparison file: %w", err)
	}
	var cfg compareConfig
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &cfg, nil
}

// applyCompareConfig fills cfg from the comparison file for every knob
// the command line left untouched. set holds the flag names that were
// given explicitly.
func applyCompareConfig(cfg *runConfig, file *compareConfig, set map[string]bool) {
	if len(cfg.Files) == 0 && len(file.Files) > 0 {
		cfg.Files = append([]string(nil), file.Files...)
	}
	if !set["hz"] && file.SamplingHz > 0 {
		cfg.SamplingHz = file.SamplingHz
	}
	if !set["samples"] && len(file.Samples) > 0 {
		cfg.Samples = append([]string(nil), file.Samples...)
	}
	if !set["segments"] && len(file.Segments) > 0 {
		cfg.Segments = append([]string(nil), file.Segments...)
	}
	if !set["sides"] && file.Sides != "" {
		cfg.Sides = file.Sides
	}
	if !set["normalize"] && file.Normalize != "" {
		cfg.Normalize = file.Normalize
	}
	if !set["baseline-start"] && file.BaselineStart != 0 {
		cfg.BaselineStart = file.BaselineStart
	}
	if !set["baseline-duration"] && file.BaselineDuration != 0 {
		cfg.BaselineDuration = file.BaselineDuration
	}
	if !set["smooth"] && file.SmoothPct != 0 {
		cfg.SmoothPct = file.SmoothPct
	}
	if !set["mean"] && file.Mean {
		cfg.Mean = true
	}
	if !set["delta"] && file.Delta {
		cfg.Delta = true
	}
	if !set["view"] && file.View != "" {
		cfg.View = file.View
	}
	if !set["colors"] && file.Colors != "" {
		cfg.Colors = file.Colors
	}
	if !set["align"] && file.Align != "" {
		cfg.Align = file.Align
	}
	if !set["title"] && file.Title != "" {
		cfg.Title = file.Title
	}
	if !set["out"] && file.Out != "" {
		cfg.Out = file.Out
	}
	if !set["width"] && file.Width > 0 {
		cfg.Width = file.Width
	}
	if !set["height"] && file.Height > 0 {
		cfg.Height = file.Height
	}
}
