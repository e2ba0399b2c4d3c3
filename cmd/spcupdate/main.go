// Command spcupdate applies a batch of edge insertions/deletions to an index
// file in place (incremental/decremental maintenance, spec §4.6/§4.7),
// writing the patched index back out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphlab-go/spc2h/spcio"
	"github.com/graphlab-go/spc2h/update"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		indexPath   string
		updatesPath string
		outPath     string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "spcupdate",
		Short: "Apply a batch of edge insertions/deletions to an index file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			defer log.Sync()

			return run(log, indexPath, updatesPath, outPath)
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "path to the binary index file (required)")
	cmd.Flags().StringVar(&updatesPath, "updates", "", "path to the update batch file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the patched index (default overwrites --index)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagRequired("index")
	cmd.MarkFlagRequired("updates")

	return cmd
}

func run(log *zap.Logger, indexPath, updatesPath, outPath string) error {
	idxFile, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("spcupdate: opening index file: %w", err)
	}
	idx, err := spcio.ReadIndex(idxFile)
	idxFile.Close()
	if err != nil {
		return fmt.Errorf("spcupdate: reading index: %w", err)
	}
	if !idx.Merged() {
		idx.Merge()
	}

	uf, err := os.Open(updatesPath)
	if err != nil {
		return fmt.Errorf("spcupdate: opening update file: %w", err)
	}
	defer uf.Close()

	ops, err := spcio.LoadUpdates(uf)
	if err != nil {
		return fmt.Errorf("spcupdate: loading updates: %w", err)
	}
	log.Info("updates loaded", zap.Int("count", len(ops)))

	for i, op := range ops {
		if op.Insert {
			if _, err := update.Insert(idx, op.U, op.V); err != nil {
				log.Warn("insert failed", zap.Int("i", i), zap.Int("u", op.U), zap.Int("v", op.V), zap.Error(err))
			}
			continue
		}
		if _, err := update.Delete(idx, op.U, op.V); err != nil {
			log.Warn("delete failed", zap.Int("i", i), zap.Int("u", op.U), zap.Int("v", op.V), zap.Error(err))
		}
	}

	if outPath == "" {
		outPath = indexPath
	}
	of, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("spcupdate: creating output file: %w", err)
	}
	defer of.Close()
	if err := spcio.WriteIndex(of, idx); err != nil {
		return fmt.Errorf("spcupdate: writing index: %w", err)
	}
	log.Info("index written", zap.String("path", outPath))
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
