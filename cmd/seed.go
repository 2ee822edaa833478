package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/dineforge/restalytics/internal/repositories"
	"github.com/dineforge/restalytics/internal/repositories/postgres"
	"github.com/dineforge/restalytics/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	seedInput    string
	seedTruncate bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a CSV data set into the orders table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if seedInput == "" {
			return fmt.Errorf("--input is required")
		}

		ctx := context.Background()
		source := &store.CSVSource{Path: seedInput, ShowProgress: true}
		records, err := source.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		var repo repositories.OrderRepository = postgres.NewOrderRepository(pool)
		if seedTruncate {
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to truncate orders table: %w", err)
			}
		}
		if err := repo.BulkCreate(ctx, records); err != nil {
			return fmt.Errorf("failed to insert records: %w", err)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		log.Printf("seeded %d records, table now holds %d", len(records), count)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedInput, "input", "", "CSV file to load")
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "empty the orders table first")
	rootCmd.AddCommand(seedCmd)
}
