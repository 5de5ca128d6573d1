// Command benchrunner executes an AIIDE scenario suite against the jump
// point search, cross-checks results against the unpruned baseline and
// optionally persists them to PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/udisondev/gridpath/internal/aiide"
	"github.com/udisondev/gridpath/internal/bench"
	"github.com/udisondev/gridpath/internal/config"
	"github.com/udisondev/gridpath/internal/store"
)

const ConfigPath = "config/benchrunner.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("gridpath benchmark runner starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("GRIDPATH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBenchmark(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded",
		"scenarios", cfg.ScenarioPath,
		"workers", cfg.Workers,
		"check_baseline", cfg.CheckBaseline,
		"save_results", cfg.SaveResults)

	// Load scenario suite and its map
	scens, err := aiide.LoadScenarios(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenarios: %w", err)
	}
	if len(scens) == 0 {
		return fmt.Errorf("scenario file %s is empty", cfg.ScenarioPath)
	}

	mapName := scens[0].MapName
	for _, sc := range scens {
		if sc.MapName != mapName {
			return fmt.Errorf("scenario file mixes maps %q and %q", mapName, sc.MapName)
		}
	}

	m, err := aiide.LoadMap(filepath.Join(cfg.MapDir, mapName))
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}
	slog.Info("suite ready", "map", mapName, "scenarios", len(scens))

	// Run the suite
	results, sum, err := bench.Run(ctx, m, scens, bench.Options{
		Workers:       cfg.Workers,
		CheckBaseline: cfg.CheckBaseline,
	})
	if err != nil {
		return fmt.Errorf("running benchmark: %w", err)
	}

	slog.Info("benchmark finished",
		"total", sum.Total,
		"solved", sum.Solved,
		"unsolved", sum.Unsolved,
		"mismatches", sum.Mismatches,
		"total_duration", sum.TotalDuration,
	)
	if sum.Mismatches > 0 {
		slog.Warn("baseline disagreement detected", "count", sum.Mismatches)
	}

	if !cfg.SaveResults {
		return nil
	}
	return persist(ctx, cfg, mapName, m, results)
}

// persist stores the run under the map's content digest, logging how
// this run compares to the stored history.
func persist(ctx context.Context, cfg config.Benchmark, mapName string, m *aiide.Map, results []bench.Result) error {
	st, err := store.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := store.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	hash := store.MapDigest(m.Width, m.Height, m.Cells)
	if err := st.UpsertMap(ctx, store.MapRow{
		Hash:   hash,
		Name:   mapName,
		Width:  m.Width,
		Height: m.Height,
	}); err != nil {
		return err
	}

	prevMean, err := st.MeanDuration(ctx, hash)
	if err != nil {
		return err
	}

	for _, r := range results {
		err := st.InsertRun(ctx, store.Run{
			MapHash:    hash,
			Scenario:   r.Index,
			Start:      r.Start,
			Goal:       r.Goal,
			Solved:     r.Solved,
			PathLen:    r.PathLen,
			Cost:       r.Cost,
			Duration:   r.Duration,
			BaselineOK: r.BaselineOK,
		})
		if err != nil {
			return err
		}
	}

	slog.Info("results saved", "map_hash", hash, "runs", len(results), "prev_mean", prevMean)
	return nil
}
