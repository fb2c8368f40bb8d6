package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/milk9111/cannonball/arena"
	"github.com/milk9111/cannonball/levels"
	"github.com/milk9111/cannonball/prefabs"
	"github.com/milk9111/cannonball/projectile"
)

type options struct {
	scenario string
	file     string
	seed     string
	seeds    int
	ticks    int
	save     string
	load     string
	store    string
	watch    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.scenario, "scenario", "standard_arc", "embedded scenario name in levels/")
	flag.StringVar(&opts.file, "file", "", "scenario file on disk, overrides -scenario")
	flag.StringVar(&opts.seed, "seed", "", "override the scenario seed")
	flag.IntVar(&opts.seeds, "seeds", 1, "run this many seeds of the scenario in parallel")
	flag.IntVar(&opts.ticks, "ticks", 0, "override the scenario tick budget")
	flag.StringVar(&opts.save, "save", "", "save the final state into this snapshot slot")
	flag.StringVar(&opts.load, "load", "", "restore this snapshot slot before running")
	flag.StringVar(&opts.store, "store", "cannonball", "application name of the snapshot store")
	flag.BoolVar(&opts.watch, "watch", false, "rerun whenever the catalog or scripts change")
	flag.StringVar(&prefabs.Dir, "prefabs", prefabs.Dir, "directory with catalog overrides")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("cannonsim failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger, out io.Writer) error {
	if opts.seeds > 1 && (opts.save != "" || opts.load != "") {
		return errors.New("-save and -load need a single seed")
	}
	if !opts.watch {
		return simulate(ctx, opts, logger, out)
	}

	w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
	if err != nil {
		return fmt.Errorf("watch %s: %w", prefabs.Dir, err)
	}
	defer w.Close()

	for {
		if err := simulate(ctx, opts, logger, out); err != nil {
			logger.Error("run failed, waiting for changes", "err", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Info("catalog changed", "file", name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

func loadScenario(opts options) (*levels.Scenario, error) {
	var (
		sc  *levels.Scenario
		err error
	)
	if opts.file != "" {
		sc, err = levels.LoadScenarioFile(opts.file)
	} else {
		sc, err = levels.LoadScenarioFromFS(opts.scenario)
	}
	if err != nil {
		return nil, err
	}
	if opts.ticks > 0 {
		sc.Ticks = opts.ticks
	}
	return sc, nil
}

// simulate loads the catalog and scenario fresh and runs every seed.
func simulate(ctx context.Context, opts options, logger *slog.Logger, out io.Writer) error {
	table, armory, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}
	sc, err := loadScenario(opts)
	if err != nil {
		return err
	}

	seeds := seedList(sc, opts)
	summaries := make([]summary, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		g.Go(func() error {
			s, err := runSeed(ctx, sc, seed, opts, table, armory, logger)
			if err != nil {
				return fmt.Errorf("seed %s: %w", seed, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range summaries {
		s.write(out)
	}
	return nil
}

func seedList(sc *levels.Scenario, opts options) []string {
	base := opts.seed
	if base == "" {
		base = sc.Arena.Seed
	}
	if opts.seeds <= 1 {
		return []string{base}
	}
	seeds := make([]string, opts.seeds)
	for i := range seeds {
		seeds[i] = base + "-" + strconv.Itoa(i)
	}
	return seeds
}

func runSeed(ctx context.Context, sc *levels.Scenario, seed string, opts options, table *projectile.Table, armory *projectile.Armory, logger *slog.Logger) (summary, error) {
	sess, err := sc.Start(seed, arena.Options{
		Table:  table,
		Armory: armory,
		Logger: logger.With("run", seed),
	})
	if err != nil {
		return summary{}, err
	}

	var store *arena.Store
	if opts.save != "" || opts.load != "" {
		store, err = arena.OpenStore(opts.store)
		if err != nil {
			logger.Warn("snapshot store is memory only", "err", err)
		}
	}
	if opts.load != "" {
		snap, err := store.Load(opts.load)
		if err != nil {
			return summary{}, err
		}
		if err := sess.Arena().Restore(snap); err != nil {
			return summary{}, err
		}
	}

	ticks, err := sess.Run(ctx)
	if err != nil {
		return summary{}, err
	}

	if opts.save != "" {
		if err := store.Save(opts.save, sess.Arena().Snapshot()); err != nil {
			return summary{}, err
		}
		logger.Info("snapshot saved", "slot", opts.save, "persistent", store.Persistent())
	}
	return summarize(sc.Name, seed, ticks, sess.Arena()), nil
}
