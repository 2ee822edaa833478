package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/dineforge/restalytics/internal/export"
	"github.com/dineforge/restalytics/internal/factories"
	"github.com/dineforge/restalytics/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sample order data set",
	Long: `Generates a synthetic order record CSV with the configured number
of outlets, customers and orders. The output is accepted back by the csv
record source, so it doubles as a quick way to try the analyses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if generateOut == "" {
			return fmt.Errorf("--out is required")
		}

		factory := factories.NewOrderFactory(cfg)

		bar := progressbar.Default(int64(cfg.GenerateOrders), "generating orders")
		var records []models.OrderRecord
		for i := 0; i < cfg.GenerateOrders; i++ {
			records = append(records, factory.CreateOrder()...)
			bar.Add(1)
		}

		file, err := os.Create(generateOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := export.WriteCSV(file, records); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}

		log.Printf("wrote %d records (%d orders) to %s", len(records), cfg.GenerateOrders, generateOut)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "path of the CSV file to write")
	generateCmd.Flags().Int("orders", 5000, "number of orders to generate")
	generateCmd.Flags().Int("outlets", 4, "number of outlets in the pool")
	generateCmd.Flags().Int("customers", 400, "number of customers in the pool")
	generateCmd.Flags().Int64("seed", 42, "random seed")
	viper.BindPFlag("generate_orders", generateCmd.Flags().Lookup("orders"))
	viper.BindPFlag("generate_outlets", generateCmd.Flags().Lookup("outlets"))
	viper.BindPFlag("generate_customers", generateCmd.Flags().Lookup("customers"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(generateCmd)
}
