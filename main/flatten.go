package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyevs/balda"
)

func newFlattenCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten IN OUT",
		Short: "Write a normalized copy of a dictionary",
		Long: `flatten lower-cases every word of IN and strips spaces, apostrophes
and hyphens, so that phrases like "rock 'n' roll" become single grid words.
Duplicate words are written once.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("expected IN and OUT, got %d arguments\n\n%s", len(args), cmd.UsageString())}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(nil, *configFile)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return flatten(logger, args[0], args[1])
		},
	}
}

func flatten(logger *slog.Logger, in, out string) error {
	words, err := balda.ReadDictionaryFromFile(in)
	if err != nil {
		return fmt.Errorf("failed to get dictionary: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", out, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = balda.NormalizeWord(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}

		bw.WriteString(w)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %q: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", out, err)
	}

	logger.Info("Dictionary flattened.", "in", in, "out", out, "read", len(words), "written", len(seen))
	return nil
}
