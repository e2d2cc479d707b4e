package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/app"
	"github.com/jaminalder/perfect-tic-tac-toe/internal/cli"
	"github.com/jaminalder/perfect-tic-tac-toe/internal/config"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", os.Getenv("TTT_CONFIG"), "Path to a YAML config file")
	first      = flag.String("first", "", "Who plays first: human or computer (asks when empty)")
	noColor    = flag.Bool("no-color", false, "Disable coloured pieces")
	logLevel   = flag.String("log-level", "", "Log level override (debug, info, warn, error)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *first != "" {
		cfg.FirstPlayer = *first
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	loop := cli.New(os.Stdin, os.Stdout, cli.NewRenderer(os.Stdout, cfg.Color), log)
	var res app.Result
	if cfg.FirstPlayer == "" {
		res, err = loop.Play()
	} else {
		p, perr := app.ParsePlayer(cfg.FirstPlayer)
		if perr != nil {
			return perr
		}
		res, err = loop.PlayAs(p)
	}
	if err != nil {
		return err
	}
	log.Debug("game over", zap.Stringer("result", res))
	return nil
}
