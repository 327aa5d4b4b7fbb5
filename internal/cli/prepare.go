package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Jacob-Barhak/gutensearch/engine"
	"github.com/Jacob-Barhak/gutensearch/ingest"
	"github.com/Jacob-Barhak/gutensearch/vector"
)

func newPrepareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare [texts-dir]",
		Short: "Ingest text files into the vector store",
		Long: `Parse every .txt file in the texts directory, embed its content lines,
and add them to the store. Lines already present (same filename and line
number) are skipped, so re-running over overlapping file sets is safe.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir := cfg.Texts.Dir
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			db, err := engine.Open(cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("opening store %s: %w", cfg.Storage.Path, err)
			}
			defer db.Close()

			store, err := vector.NewSQLiteStore(db)
			if err != nil {
				return err
			}
			pipeline, err := ingest.New(store, newEmbedder(cfg), newLogger())
			if err != nil {
				return err
			}

			run, err := pipeline.Run(ctx, dir)
			if err != nil {
				return err
			}

			fmt.Printf("Processing complete.\n")
			fmt.Printf("Files ingested: %d (failed: %d)\n", run.Files, run.Failed)
			fmt.Printf("Lines processed: %d\n", run.Processed)
			fmt.Printf("Lines inserted: %d\n", run.Inserted)
			fmt.Printf("Lines skipped (duplicate): %d\n", run.Skipped)
			return nil
		},
	}
}
