package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vyevs/balda"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := newRootCmd().Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "balda [flags] DICTIONARY GRID",
		Short: "Find every dictionary word on a Balda grid",
		Long: `balda finds every word of DICTIONARY that can be traced on GRID along
orthogonally adjacent cells, filling in the wildcard cell '_' with any letter.

DICTIONARY holds one word per line and may be gzip (.gz) or zstd (.zst) compressed.
GRID holds one row per line with cells separated by single spaces, or a .toml
file with rows = ["c a", "_ t"]. If GRID is a directory, every file in it is
solved and a summary line is printed per grid.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("expected DICTIONARY and GRID, got %d arguments\n\n%s", len(args), cmd.UsageString())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd.Flags(), configFile)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return run(cmd.OutOrStdout(), logger, cfg, args[0], args[1])
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (toml, yaml or json).")
	addConfigFlags(cmd.Flags())

	cmd.AddCommand(newFlattenCmd(&configFile))

	return cmd
}

func run(w io.Writer, logger *slog.Logger, cfg *Config, dictFilePath, gridPath string) error {
	start := time.Now()

	words, err := balda.ReadDictionaryFromFile(dictFilePath)
	if err != nil {
		return fmt.Errorf("failed to get dictionary: %w", err)
	}

	dict := balda.NewDictionary(words...)
	logger.Info("Dictionary loaded.", "path", dictFilePath, "words", dict.Len())

	info, err := os.Stat(gridPath)
	if err != nil {
		return fmt.Errorf("failed to read grid: %w", err)
	}
	if info.IsDir() {
		return solveDir(w, logger, gridPath, dict)
	}

	grid, err := balda.ReadGridFromFile(gridPath)
	if err != nil {
		return fmt.Errorf("failed to read grid: %w", err)
	}

	findings := solve(logger, grid, dict)

	runID := uuid.NewString()
	if err := writeFindings(w, cfg, runID, grid, findings); err != nil {
		return fmt.Errorf("failed to write findings: %w", err)
	}

	logger.Debug("Run finished.", "run", runID, "took", time.Since(start))
	return nil
}

func solve(logger *slog.Logger, grid balda.Grid, dict *balda.Dictionary) []balda.Finding {
	wildcards := grid.Wildcards()
	logger.Debug("Grid loaded.", "rows", grid.Rows(), "cols", grid.Cols(), "wildcards", len(wildcards))
	if len(wildcards) > 1 {
		logger.Warn("Grid has more than one wildcard; each word fills in at most one.", "wildcards", len(wildcards))
	}

	start := time.Now()
	findings := balda.Solve(grid, dict)
	logger.Info("Search finished.", "words", len(findings), "took", time.Since(start))

	return findings
}

// solveDir solves every grid file under dir and prints one line per grid.
func solveDir(w io.Writer, logger *slog.Logger, dir string, dict *balda.Dictionary) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		grid, err := balda.ReadGridFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to read grid %q: %w", path, err)
		}

		start := time.Now()
		findings := solve(logger.With("grid", path), grid, dict)

		longest := ""
		if len(findings) > 0 {
			longest = findings[0].Word
		}

		_, err = fmt.Fprintf(w, "found %5d words for %-50q longest %-20q (%s)\n", len(findings), path, longest, time.Since(start).Round(time.Millisecond))
		return err
	})
}
