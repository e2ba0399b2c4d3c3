// Command spcquery answers a batch of shortest-path-count queries against a
// previously built index file.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphlab-go/spc2h/query"
	"github.com/graphlab-go/spc2h/spcio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		indexPath   string
		queriesPath string
		outPath     string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "spcquery",
		Short: "Answer a batch of (s, t) shortest-path-count queries against an index file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			defer log.Sync()

			return run(log, indexPath, queriesPath, outPath)
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to the binary index file (required)")
	cmd.Flags().StringVar(&queriesPath, "queries", "", "path to the query batch file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write answers to (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("index")
	cmd.MarkFlagRequired("queries")

	return cmd
}

func run(log *zap.Logger, indexPath, queriesPath, outPath string) error {
	idxFile, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("spcquery: opening index file: %w", err)
	}
	defer idxFile.Close()

	idx, err := spcio.ReadIndex(idxFile)
	if err != nil {
		return fmt.Errorf("spcquery: reading index: %w", err)
	}
	if !idx.Merged() {
		idx.Merge()
		log.Debug("index was split-shape on disk; merged before querying")
	}

	qf, err := os.Open(queriesPath)
	if err != nil {
		return fmt.Errorf("spcquery: opening query file: %w", err)
	}
	defer qf.Close()

	queries, err := spcio.LoadQueries(qf)
	if err != nil {
		return fmt.Errorf("spcquery: loading queries: %w", err)
	}
	log.Info("queries loaded", zap.Int("count", len(queries)))

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("spcquery: creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, q := range queries {
		start := time.Now()
		d, c, err := query.Count(idx, q.S, q.T)
		elapsed := time.Since(start)
		if err != nil {
			log.Warn("query rejected", zap.Int("s", q.S), zap.Int("t", q.T), zap.Error(err))
			continue
		}
		if err := spcio.WriteAnswer(w, q.S, q.T, d, c, elapsed); err != nil {
			return fmt.Errorf("spcquery: writing answer: %w", err)
		}
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
