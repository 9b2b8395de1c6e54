package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/segfo/conways-life-of-game/model"
	"github.com/segfo/conways-life-of-game/utils"
)

const (
	statusActive      = "active"
	statusExtinct     = "extinct"
	statusStable      = "stable"
	statusOscillating = "oscillating"
	statusLimit       = "generation limit"
)

// game bundles everything one simulation run needs
type game struct {
	config   utils.Config
	board    *model.Board
	pool     *model.BoardPool
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
}

// initializeGame builds, wires and seeds the board described by config
func initializeGame(config utils.Config) (*game, error) {
	mode, err := model.ParseUpdateMode(config.UpdateMode)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	switch config.Render {
	case "bits", "cells", "blocks":
	default:
		return nil, errors.Errorf("[initializeGame] unknown render style: %q", config.Render)
	}

	board := model.NewBoard(config.Width, config.Height,
		model.WithUpdateMode(mode),
		model.WithStrictBounds(config.StrictBounds),
	)
	board.WireNeighbors()

	if err = seedBoard(board, config); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	g := &game{
		config:   config,
		board:    board,
		pool:     model.NewBoardPool(),
		history:  model.NewHistory(config.HistoryDepth),
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
	}
	g.history.Record(board.Hash())
	return g, nil
}

// seedBoard applies explicit cells, else a named pattern, else a random fill
func seedBoard(board *model.Board, config utils.Config) error {
	cells, err := config.SeedCells()
	if err != nil {
		return err
	}
	if len(cells) > 0 {
		for _, c := range cells {
			if err = board.SetCellState(c[0], c[1], true); err != nil {
				return err
			}
		}
		return nil
	}

	if config.Pattern != "" {
		p, err := model.PatternByName(config.Pattern)
		if err != nil {
			return err
		}
		return model.Seed(board, model.Point{X: config.OriginX, Y: config.OriginY}, p)
	}

	return model.Randomize(board, config.RandomDensity, config.RandomSeed)
}

// checkStopConditions determines if the run should end after a generation
func checkStopConditions(livingCells int, stable bool, period int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, statusExtinct
	}
	if stable {
		return true, statusStable
	}
	if config.StopOnCycle && period > 1 {
		return true, statusOscillating
	}
	return false, ""
}

// renderFrame formats the status line and the configured grids
func (g *game) renderFrame(status string) ([]byte, error) {
	var buf bytes.Buffer
	if g.config.ClearScreen {
		if err := g.renderer.Clear(&buf); err != nil {
			return nil, err
		}
	}

	livingCells := g.board.LiveCount()
	density := float64(livingCells) / float64(g.board.Width()*g.board.Height()) * 100
	fmt.Fprintf(&buf, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.board.Generation(), livingCells, density, status)

	var err error
	switch g.config.Render {
	case "blocks":
		err = g.renderer.Display(&buf, g.board)
	case "cells":
		err = g.board.RenderStateGrid(&buf)
	default:
		err = g.board.RenderAliveGrid(&buf)
	}
	if err != nil {
		return nil, err
	}
	if g.config.ShowCounts {
		if err = g.board.RenderNeighborCountGrid(&buf); err != nil {
			return nil, err
		}
	}
	if g.config.ShowRelations {
		if err = g.board.RenderRelationCountGrid(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// step advances one generation and reports whether the run should stop
func (g *game) step() (bool, string, error) {
	snapshot := g.pool.Snapshot(g.board)
	defer model.BoardToPool(snapshot, g.pool)

	start := time.Now()
	if err := g.board.AdvanceGeneration(); err != nil {
		return true, "", err
	}
	livingCells := g.board.LiveCount()
	g.stats.Update(g.board.Generation(), livingCells, time.Since(start))

	period := g.history.Record(g.board.Hash())
	stop, reason := checkStopConditions(livingCells, g.board.Equals(snapshot), period, g.config)
	return stop, reason, nil
}

// simulate produces one frame per generation until a stop condition is met
func (g *game) simulate(ctx context.Context, frames chan<- []byte) error {
	var (
		stop   bool
		status = statusActive
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := g.renderFrame(status)
		if err != nil {
			return err
		}
		if err = emit(ctx, frames, frame); err != nil {
			return err
		}

		if !stop && g.board.Generation() >= g.config.MaxGenerations {
			stop, status = true, statusLimit
		}
		if stop {
			summary := fmt.Sprintf("Stopped after %d generations: %s | Avg Pop: %.1f | Peak Pop: %d\n",
				g.board.Generation(), status, g.stats.AveragePopulation, g.stats.PeakPopulation)
			return emit(ctx, frames, []byte(summary))
		}

		var reason string
		if stop, reason, err = g.step(); err != nil {
			return err
		}
		if stop {
			status = reason
		}

		if g.config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(g.config.FrameRate):
			}
		}
	}
}

func emit(ctx context.Context, frames chan<- []byte, frame []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case frames <- frame:
		return nil
	}
}

// writeFrames copies frames to out until the channel is closed
func writeFrames(out io.Writer, frames <-chan []byte) error {
	for frame := range frames {
		if _, err := out.Write(frame); err != nil {
			return errors.Wrap(err, "[writeFrames] failed to write frame")
		}
	}
	return nil
}
