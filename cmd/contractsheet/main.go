package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/bussepricing/contractsheet/internal/config"
	"github.com/bussepricing/contractsheet/internal/enrich"
	"github.com/bussepricing/contractsheet/internal/launcher"
	"github.com/bussepricing/contractsheet/internal/loader"
	"github.com/bussepricing/contractsheet/internal/prompt"
	"github.com/bussepricing/contractsheet/internal/render"
	"github.com/bussepricing/contractsheet/internal/report"
	"github.com/bussepricing/contractsheet/internal/window"
	"github.com/bussepricing/contractsheet/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "contractsheet",
		Usage: "Convert a special-pricing contract export into a styled customer pricing workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the settings file (default: config.yaml, then the shared fallback)",
				EnvVars: []string{"CONTRACTSHEET_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "base-dir",
				Usage: "directory holding the contract and sales exports (overrides settings)",
			},
			&cli.StringFlag{
				Name:  "save-dir",
				Usage: "directory the workbook is written to (overrides settings)",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "skip the interactive confirmation gate",
			},
			&cli.BoolFlag{
				Name:  "no-open",
				Usage: "do not open the workbook after writing it",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (trace, debug, info, warn, error)",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "dates",
				Usage:  "Print the suggested sales export start/end dates for this month",
				Action: printDates,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger.SetLevel(c.String("log-level"))

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if dir := c.String("base-dir"); dir != "" {
		cfg.BaseDir = dir
	}
	if dir := c.String("save-dir"); dir != "" {
		cfg.SaveDir = dir
	}

	now := time.Now()
	win := window.Compute(now)

	prompt.Reminder(os.Stdout, now)
	if !c.Bool("yes") {
		if !prompt.Confirm(os.Stdin, os.Stdout, now) {
			return fmt.Errorf("aborted before processing")
		}
	}

	lines, err := loader.LoadContract(cfg.ContractPath())
	if err != nil {
		return err
	}
	sales, err := loader.LoadSales(cfg.SalesPath(), win)
	if err != nil {
		return err
	}
	logger.Log.Info().
		Int("contract_lines", len(lines)).
		Int("sales_records", len(sales)).
		Str("sales_from", win.CurrentStart.Format("2006-01-02")).
		Str("sales_to", win.CurrentEnd.Format("2006-01-02")).
		Msg("inputs loaded")

	ctx := c.Context
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	store, err := enrich.Connect(connectCtx, cfg.MongoURI, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Log.Warn().Err(err).Msg("closing enrichment store")
		}
	}()

	var bar *progressbar.ProgressBar
	onItem := func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "pricing items")
		}
		_ = bar.Add(1)
	}

	header, rows, err := report.Build(ctx, lines, sales, store, win, onItem)
	if err != nil {
		return err
	}

	path, err := render.Render(header, rows, cfg.SaveDir)
	if err != nil {
		return err
	}
	logger.Log.Info().Str("path", path).Int("items", len(rows)).Msg("workbook written")

	if !c.Bool("no-open") {
		if err := launcher.Open(path); err != nil {
			logger.Log.Warn().Err(err).Msg("could not open workbook")
		}
	}
	return nil
}

func printDates(c *cli.Context) error {
	win := window.Compute(time.Now())
	fmt.Printf("Sales export start date: %s (%s)\n",
		win.ExportStart().Format("010206"), win.ExportStart().Format("01/02/2006"))
	fmt.Printf("Sales export end date:   %s (%s)\n",
		win.ExportEnd().Format("010206"), win.ExportEnd().Format("01/02/2006"))
	return nil
}
