package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	MaxGenerations int           `json:"max_generations"`
	FrameRate      time.Duration `json:"frame_rate"`

	// Seeding: Cells wins over Pattern, Pattern wins over random
	Pattern       string  `json:"pattern"`
	OriginX       int     `json:"origin_x"`
	OriginY       int     `json:"origin_y"`
	Cells         string  `json:"cells"`
	RandomDensity float64 `json:"random_density"`
	RandomSeed    int64   `json:"random_seed"`

	UpdateMode   string `json:"update_mode"`
	StrictBounds bool   `json:"strict_bounds"`

	StopOnCycle  bool `json:"stop_on_cycle"`
	HistoryDepth int  `json:"history_depth"`

	Render        string `json:"render"`
	ShowCounts    bool   `json:"show_counts"`
	ShowRelations bool   `json:"show_relations"`
	ClearScreen   bool   `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults: a vertical blinker on a 10x10 board
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         10,
		MaxGenerations: 10,
		Pattern:        "blinker",
		OriginX:        1,
		UpdateMode:     "snapshot",
		StopOnCycle:    true,
		HistoryDepth:   5,
		Render:         "bits",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind registers command-line overrides for every field, using the current
// values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "logical board width")
	fs.IntVar(&c.Height, "height", c.Height, "logical board height")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "maximum number of generations")
	fs.DurationVar(&c.FrameRate, "frame", c.FrameRate, "delay between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to seed (empty for random)")
	fs.IntVar(&c.OriginX, "x", c.OriginX, "pattern origin x")
	fs.IntVar(&c.OriginY, "y", c.OriginY, "pattern origin y")
	fs.StringVar(&c.Cells, "cells", c.Cells, `explicit live cells, e.g. "1,0;1,1;1,2"`)
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "random fill density when no pattern is given")
	fs.Int64Var(&c.RandomSeed, "seed", c.RandomSeed, "random fill seed")
	fs.StringVar(&c.UpdateMode, "mode", c.UpdateMode, "generation update mode: snapshot or scan")
	fs.BoolVar(&c.StrictBounds, "strict", c.StrictBounds, "reject out-of-range seed cells")
	fs.BoolVar(&c.StopOnCycle, "stop-on-cycle", c.StopOnCycle, "stop when the board repeats an earlier state")
	fs.IntVar(&c.HistoryDepth, "history", c.HistoryDepth, "number of past states checked for cycles")
	fs.StringVar(&c.Render, "render", c.Render, "grid output: bits, cells or blocks")
	fs.BoolVar(&c.ShowCounts, "show-counts", c.ShowCounts, "also print the neighbor count grid")
	fs.BoolVar(&c.ShowRelations, "show-relations", c.ShowRelations, "also print the relation count grid")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal before every frame")
}

// Validate checks the numeric ranges of the configuration
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board size must be positive, got %dx%d", c.Width, c.Height)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0,1], got %v", c.RandomDensity)
	case c.HistoryDepth < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history depth must not be negative, got %d", c.HistoryDepth)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if _, err := c.SeedCells(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
	}
	return nil
}

// SeedCells parses Cells ("x,y;x,y;...") into coordinate pairs
func (c Config) SeedCells() ([][2]int, error) {
	var out [][2]int
	for _, item := range strings.Split(c.Cells, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		xs, ys, ok := strings.Cut(item, ",")
		if !ok {
			return nil, errors.Errorf("[SeedCells] malformed cell %q, expected x,y", item)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, errors.Wrapf(err, "[SeedCells] bad x in %q", item)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, errors.Wrapf(err, "[SeedCells] bad y in %q", item)
		}
		out = append(out, [2]int{x, y})
	}
	return out, nil
}
