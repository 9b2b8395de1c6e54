package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/segfo/conways-life-of-game/utils"
)

func runGame(t *testing.T, config utils.Config) string {
	t.Helper()
	g, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err = run(context.Background(), g, &out); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestRunStopConditions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*utils.Config)
		summary string
		frames  int
	}{
		{
			name:    "blinker oscillates",
			mutate:  func(c *utils.Config) {},
			summary: "Stopped after 2 generations: oscillating",
			frames:  3,
		},
		{
			name:    "lshape settles into a block",
			mutate:  func(c *utils.Config) { c.Pattern, c.OriginX, c.OriginY = "lshape", 1, 1 },
			summary: "Stopped after 2 generations: stable",
			frames:  3,
		},
		{
			name:    "single cell dies out",
			mutate:  func(c *utils.Config) { c.Cells = "4,4" },
			summary: "Stopped after 1 generations: extinct",
			frames:  2,
		},
		{
			name: "blinker runs to the limit without cycle detection",
			mutate: func(c *utils.Config) {
				c.StopOnCycle = false
				c.MaxGenerations = 4
			},
			summary: "Stopped after 4 generations: generation limit",
			frames:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := utils.DefaultConfig()
			tt.mutate(&config)
			out := runGame(t, config)

			if !strings.Contains(out, tt.summary) {
				t.Fatalf("output missing %q:\n%s", tt.summary, out)
			}
			if got := strings.Count(out, "Gen: "); got != tt.frames {
				t.Fatalf("%d frames, expected %d:\n%s", got, tt.frames, out)
			}
		})
	}
}

func TestRunOptionalGrids(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxGenerations = 0
	config.ShowCounts = true
	config.ShowRelations = true
	config.Render = "cells"
	out := runGame(t, config)

	for _, banner := range []string{"alive/dead(neighbor count)", "--------neighbor count--------", "relations(neighbor count)"} {
		if !strings.Contains(out, banner) {
			t.Fatalf("output missing %q:\n%s", banner, out)
		}
	}
	if !strings.Contains(out, "Gen: 0 | Living: 3 | Density: 3.0% | Status: active") {
		t.Fatalf("unexpected status line:\n%s", out)
	}
}

func TestRunCancelled(t *testing.T) {
	g, err := initializeGame(utils.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err = run(ctx, g, &out); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, expected context.Canceled", err)
	}
	if g.board.Generation() != 0 {
		t.Fatalf("cancelled run advanced to generation %d", g.board.Generation())
	}
}

func TestInitializeGameErrors(t *testing.T) {
	tests := map[string]func(*utils.Config){
		"bad mode":    func(c *utils.Config) { c.UpdateMode = "parallel" },
		"bad render":  func(c *utils.Config) { c.Render = "svg" },
		"bad pattern": func(c *utils.Config) { c.Pattern = "spaceship" },
		"strict clip": func(c *utils.Config) { c.StrictBounds, c.Cells = true, "10,10" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			config := utils.DefaultConfig()
			mutate(&config)
			if _, err := initializeGame(config); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestSeedBoardPrecedence(t *testing.T) {
	config := utils.DefaultConfig()
	config.Cells = "0,0"
	g, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if g.board.LiveCount() != 1 || !g.board.Alive(0, 0) {
		t.Fatalf("explicit cells should replace the pattern, live=%d", g.board.LiveCount())
	}

	config = utils.DefaultConfig()
	config.Pattern = ""
	config.RandomDensity = 1
	g, err = initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if g.board.LiveCount() != config.Width*config.Height {
		t.Fatalf("random fill with density 1 gave %d live cells", g.board.LiveCount())
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name        string
		livingCells int
		stable      bool
		period      int
		stopOnCycle bool
		wantStop    bool
		wantReason  string
	}{
		{"extinct wins", 0, true, 1, true, true, statusExtinct},
		{"stable", 4, true, 1, true, true, statusStable},
		{"oscillating", 3, false, 2, true, true, statusOscillating},
		{"cycle ignored", 3, false, 2, false, false, ""},
		{"active", 5, false, 0, true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.StopOnCycle = tt.stopOnCycle
			stop, reason := checkStopConditions(tt.livingCells, tt.stable, tt.period, config)
			if stop != tt.wantStop || reason != tt.wantReason {
				t.Fatalf("got (%v, %q), expected (%v, %q)", stop, reason, tt.wantStop, tt.wantReason)
			}
		})
	}
}
