// Package cli wires the gutensearch commands: prepare (ingestion) and find
// (interactive query loop).
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/Jacob-Barhak/gutensearch/embed"
	"github.com/Jacob-Barhak/gutensearch/internal/config"
)

var (
	cfgFile string
	dbPath  string
	verbose bool
)

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gutensearch",
		Short: "Semantic line search over Project Gutenberg texts",
		Long: `gutensearch ingests plain-text books, embeds every content line via an
embedding model, stores the vectors in a SQLite database, and answers
free-text queries with the most similar stored lines.

Run 'gutensearch prepare' to build the store from a directory of .txt
files, then 'gutensearch find' for an interactive query session.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "store file path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newPrepareCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "development"
			}
			fmt.Printf("gutensearch %s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// newLogger builds a logr.Logger writing to stderr; V(1) and above is
// dropped unless --verbose is set.
func newLogger() logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
}

// loadConfig resolves the effective configuration including the --db
// override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	return cfg, nil
}

// newEmbedder builds the configured Ollama embedder.
func newEmbedder(cfg *config.Config) embed.Embedder {
	return embed.NewOllama(embed.OllamaConfig{
		BaseURL: cfg.Embedder.Endpoint,
		Model:   cfg.Embedder.Model,
		Token:   cfg.Embedder.Token,
		Timeout: cfg.Embedder.Timeout,
	})
}
