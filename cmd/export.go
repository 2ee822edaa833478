package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/dineforge/restalytics/internal/cloudwriter"
	"github.com/dineforge/restalytics/internal/export"
	"github.com/dineforge/restalytics/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the loaded records as csv, json or parquet",
	Long: `Exports the record set, after the analyze filters, to a local file
or to the configured cloud storage bucket. Use the same --outlet, --season,
--from and --to flags as analyze to export a slice of the data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOut == "" {
			return fmt.Errorf("--out is required")
		}

		ctx := context.Background()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}

		criteria, err := buildCriteria()
		if err != nil {
			return err
		}
		records := store.Filter(st.Snapshot().Records, criteria)

		exporter := &export.Exporter{}
		if cfg.OutputDestination == "s3" {
			factory, err := cloudwriter.NewS3WriterFactory(ctx, cfg.CloudStorage.Region)
			if err != nil {
				return fmt.Errorf("failed to initialize cloud storage: %w", err)
			}
			exporter.Factory = factory
			exporter.Bucket = cfg.CloudStorage.BucketName
		}

		if err := exporter.Export(ctx, records, exportFormat, exportOut); err != nil {
			return err
		}
		log.Printf("exported %d records to %s", len(records), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format: csv, json or parquet")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path or object key")
	exportCmd.Flags().StringVar(&analyzeOutlet, "outlet", "", "restrict to one outlet id")
	exportCmd.Flags().StringVar(&analyzeSeason, "season", "", "restrict to a season (spring, summer, autumn, winter)")
	exportCmd.Flags().StringVar(&analyzeFrom, "from", "", "restrict to orders placed on or after this date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&analyzeTo, "to", "", "restrict to orders placed on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}
