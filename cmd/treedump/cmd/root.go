// Package cmd implements the treedump CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/junior176/animated-tree-view/cmd/treedump/internal/outline"
	"github.com/junior176/animated-tree-view/cmd/treedump/internal/render"
	"github.com/junior176/animated-tree-view/pkg/tree"
)

// Version is set at build time.
var Version = "0.1.0-dev"

var (
	pathFlag string
	verbose  bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "treedump <outline.yaml>",
	Short: "Render a YAML outline as a tree",
	Long: `Treedump loads a YAML outline into an ordered, keyed tree and prints
it with branch glyphs. Entries may carry a key, an opaque meta mapping,
and an ordered list of children; omitted keys are generated.

Use --path to resolve a dotted key path and print only that subtree.`,
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&pathFlag, "path", "p", "", "dotted key path to a subtree to print")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// Execute runs the CLI. Errors have already been logged when it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger := newLogger()
		logger.Error().Err(err).Msg("treedump failed")
	}
	return err
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
		Level(level).
		With().Timestamp().Logger()
}

func run(cmd *cobra.Command, file string) error {
	logger := newLogger()

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read outline: %w", err)
	}

	root, err := outline.Parse(data)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("file", file).
		Int("nodes", outline.Count(root)).
		Msg("outline loaded")

	target := root
	if pathFlag != "" {
		target, err = root.ElementAt(pathFlag)
		if err != nil {
			var nf *tree.NodeNotFoundError
			if errors.As(err, &nf) {
				logger.Debug().
					Str("key", nf.Key).
					Str("path", nf.Path).
					Msg("path resolution stopped")
			}
			return err
		}
		logger.Debug().Str("path", target.Path()).Msg("subtree resolved")
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Tree(target, !noColor))
	return nil
}
