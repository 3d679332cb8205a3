// SPDX-License-Identifier: MIT

// Command wordwheel ingests dictionaries into a word-shape database and
// queries it.
//
//	wordwheel ingest words.txt
//	wordwheel peers wheel -c signature
//	wordwheel stats -c perimeter
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordwheel/config"
	"github.com/katalvlaran/wordwheel/logging"
	"github.com/katalvlaran/wordwheel/store"
)

// app carries flag values and what PersistentPreRunE builds from them.
type app struct {
	cfgPath string
	dbPath  string
	verbose bool
	column  string

	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "wordwheel",
		Short: "Word shapes on a 26-letter wheel",
		Long: `wordwheel places the alphabet on a circle, traces every dictionary word
as a path between its letters and stores the resulting geometry in SQLite.

Words are grouped by a symmetry-invariant signature (rotation of the
alphabet, reversal, mirror reflection), by polygon area or by perimeter.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.dbPath, "db", "", "database path (overrides database.path)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.column, "column", "c", "signature", "column to query: signature, polygonArea or perimeter")

	root.AddCommand(
		a.ingestCmd(),
		a.lookupCmd(),
		a.peersCmd(),
		a.commonCmd(),
		a.uniqueCmd(),
		a.totalCmd(),
		a.longestCmd(),
		a.randomCmd(),
		a.statsCmd(),
		a.showCmd(),
		a.validateCmd(),
	)

	return root
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.log = cfg, log

	return nil
}

// openStore opens the configured database; callers defer closeStore.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, a.cfg.Database.Path,
		store.WithBatchSize(a.cfg.Database.BatchSize),
		store.WithLogger(a.log.Named("store")))
	if err != nil {
		return nil, err
	}
	a.log.Debug("database opened", zap.String("path", st.Path()))

	return st, nil
}

// closeStore closes st and folds its error into *errp.
func closeStore(st *store.Store, errp *error) {
	if err := st.Close(); err != nil && *errp == nil {
		*errp = err
	}
}

func (a *app) selectedColumn() (store.Column, error) {
	return store.ParseColumn(a.column)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}
