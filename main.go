package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/segfo/conways-life-of-game/utils"
)

const (
	defaultConfigFile = "config.json"
	configFileEnv     = "LIFE_CONFIG"
)

// run drives the simulation and the output writer until both finish
func run(ctx context.Context, g *game, out io.Writer) error {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan []byte, 1)

	eg.Go(func() error {
		defer close(frames)
		return g.simulate(ctx, frames)
	})
	eg.Go(func() error {
		return writeFrames(out, frames)
	})

	return eg.Wait()
}

func configFile() string {
	if name := os.Getenv(configFileEnv); name != "" {
		return name
	}
	return defaultConfigFile
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, g, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\nShutting down after %d generations\n", g.board.Generation())
			return
		}
		// invariant violations end up here
		log.Fatalf("%+v", err)
	}
}
