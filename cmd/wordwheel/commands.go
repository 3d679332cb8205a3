// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordwheel/ingest"
	"github.com/katalvlaran/wordwheel/store"
)

// withStore opens the database, runs fn and closes (flushing) the store on
// every return path.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, st *store.Store) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(st, &err)

	return fn(ctx, st)
}

// argWord sanitizes a word given on the command line.
func argWord(arg string) (string, error) {
	w, ok := ingest.Sanitize(arg)
	if !ok {
		return "", fmt.Errorf("%q is not a word: only letters a-z are allowed", arg)
	}

	return w, nil
}

func (a *app) ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <dictionary>",
		Short: "Compute and store the shape of every word in a dictionary file",
		Long: `Reads one word per line. Lines are trimmed and lowercased; anything that
is not made of letters a-z is skipped. Words already stored keep their
first record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("dictionary: %w", err)
			}
			defer f.Close()

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				opts := []ingest.Option{ingest.WithLogger(a.log.Named("ingest"))}
				if every := a.cfg.Ingest.ProgressEvery; every > 0 {
					opts = append(opts, ingest.WithProgress(every, func(s ingest.Stats) {
						a.log.Info("progress", zap.Int("lines", s.Lines), zap.Int("stored", s.Stored))
					}))
				}
				stats, err := ingest.NewProcessor(st, opts...).Run(ctx, ingest.NewReaderSource(f))
				if err != nil {
					return err
				}

				printTitle(a.out, "Ingested %s", args[0])
				printField(a.out, "lines", stats.Lines)
				printField(a.out, "stored", stats.Stored)
				printField(a.out, "skipped", stats.Skipped)
				printField(a.out, "failed", stats.Failed)
				return nil
			})
		},
	}
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Print the stored value of the selected column for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := argWord(args[0])
			if err != nil {
				return err
			}
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				v, err := st.Lookup(ctx, word, col)
				if err != nil {
					return err
				}
				printField(a.out, col.Name(), v)
				return nil
			})
		},
	}
}

func (a *app) peersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers <word>",
		Short: "List every word sharing the selected column value with a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := argWord(args[0])
			if err != nil {
				return err
			}
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				words, err := st.Peers(ctx, word, col)
				if err != nil {
					return err
				}
				printTitle(a.out, "%d words share the %s of %q", len(words), col.Name(), word)
				printWords(a.out, words)
				return nil
			})
		},
	}
}

func (a *app) commonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common",
		Short: "List the largest group of words sharing a column value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				words, err := st.MostCommon(ctx, col)
				if err != nil {
					return err
				}
				printTitle(a.out, "Most common %s: %d words", col.Name(), len(words))
				printWords(a.out, words)
				return nil
			})
		},
	}
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique",
		Short: "Percentage of words alone in their group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				p, err := st.PercentageUnique(ctx, col)
				if err != nil {
					return err
				}
				printField(a.out, "unique", fmt.Sprintf("%.2f%%", p))
				return nil
			})
		},
	}
}

func (a *app) totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Number of distinct values of the selected column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				n, err := st.TotalDistinct(ctx, col)
				if err != nil {
					return err
				}
				printField(a.out, "distinct", n)
				return nil
			})
		},
	}
}

func (a *app) longestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "longest",
		Short: "Peers of the longest word that shares its column value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				words, err := st.LongestShared(ctx, col)
				if err != nil {
					return err
				}
				printTitle(a.out, "Longest shared %s: %q", col.Name(), words[0])
				printWords(a.out, words)
				return nil
			})
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "A random word from a group of more than two words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				w, err := st.RandomShared(ctx, col)
				if err != nil {
					return err
				}
				printField(a.out, "word", w)
				return nil
			})
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summary of the database for the selected column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := a.selectedColumn()
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				var (
					words, distinct int
					unique          float64
					common          []string
				)
				eg, egCtx := errgroup.WithContext(ctx)
				eg.Go(func() (err error) {
					words, err = st.Count(egCtx)
					return err
				})
				eg.Go(func() (err error) {
					distinct, err = st.TotalDistinct(egCtx, col)
					return err
				})
				eg.Go(func() (err error) {
					unique, err = st.PercentageUnique(egCtx, col)
					return err
				})
				eg.Go(func() (err error) {
					common, err = st.MostCommon(egCtx, col)
					return err
				})
				if err := eg.Wait(); err != nil {
					return err
				}

				printTitle(a.out, "%s (%s)", st.Path(), col.Name())
				printField(a.out, "words", words)
				printField(a.out, "distinct", distinct)
				printField(a.out, "unique", fmt.Sprintf("%.2f%%", unique))
				printField(a.out, "largest group", len(common))
				printWords(a.out, common)
				return nil
			})
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "Print the full stored record of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := argWord(args[0])
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				rec, err := st.Get(ctx, word)
				if err != nil {
					return err
				}
				printTitle(a.out, "%s", rec.Word)
				printField(a.out, "shape", joinCoords(rec.Shape))
				printField(a.out, "signature", rec.Signature)
				printField(a.out, "polygon", joinCoords(rec.PolygonShape))
				printField(a.out, "polygonArea", rec.PolygonArea)
				printField(a.out, "perimeter", rec.Perimeter)
				return nil
			})
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the database has the expected table and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				if err := st.Validate(ctx); err != nil {
					return err
				}
				printField(a.out, "schema", "ok")
				return nil
			})
		},
	}
}
