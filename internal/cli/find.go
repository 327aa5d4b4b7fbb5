package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jacob-Barhak/gutensearch/engine"
	"github.com/Jacob-Barhak/gutensearch/search"
	"github.com/Jacob-Barhak/gutensearch/vector"
)

func newFindCommand() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Interactively search the store for similar lines",
		Long: `Open the store read-only and repeatedly accept query strings, printing
the most similar stored lines with their similarity score and provenance.
Type 'exit' or 'quit' (or close stdin) to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if topK < 1 {
				topK = cfg.Search.TopK
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if _, err := os.Stat(cfg.Storage.Path); err != nil {
				return fmt.Errorf("store %s not found; run 'gutensearch prepare' first", cfg.Storage.Path)
			}
			db, err := engine.OpenReadOnly(cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("opening store %s: %w", cfg.Storage.Path, err)
			}
			defer db.Close()

			store, err := vector.NewReadOnlySQLiteStore(db)
			if err != nil {
				return fmt.Errorf("%w; run 'gutensearch prepare' first", err)
			}
			eng, err := search.New(store, newEmbedder(cfg))
			if err != nil {
				return err
			}

			fmt.Printf("Ready to search! (finding top %d matches)\n", topK)
			fmt.Println("Type your query and press Enter. Type 'exit' or 'quit' to stop.")
			queryLoop(ctx, eng, topK)
			fmt.Println("Goodbye!")
			return nil
		},
	}

	cmd.Flags().IntVarP(&topK, "number", "n", 0, "number of matches to return (default from config)")
	return cmd
}

// queryLoop reads queries from stdin until exit/quit, EOF, or cancellation.
// A failed query is reported and the loop keeps accepting new queries.
func queryLoop(ctx context.Context, eng *search.Engine, topK int) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Print("\nEnter query: ")
		if !scanner.Scan() {
			return
		}
		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "exit", "quit":
			return
		case "":
			// Blank input; just prompt again.
			continue
		}

		matches, err := eng.Query(ctx, query, topK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
			continue
		}

		fmt.Printf("\nFound %d matches:\n", len(matches))
		for i, m := range matches {
			fmt.Printf("\n--- Result %d (Similarity: %.4f) ---\n", i+1, m.Similarity)
			fmt.Printf("Source: %s by %s (%s:%d)\n", m.Title, m.Author, m.Filename, m.LineNumber)
			fmt.Printf("Text: %s\n", m.Content)
		}
	}
}
