package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/osse101/wagerengine/internal/config"
	"github.com/osse101/wagerengine/internal/database"
)

const usage = "Usage: migrate <up|down|status>"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(subcmd string) error {
	cfg, err := config.LoadForTools()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	opts := database.DefaultOptions()
	opts.MaxConns = 2
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), opts)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	switch subcmd {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown subcommand %q\n%s", subcmd, usage)
	}
}
