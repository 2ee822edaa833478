package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/dineforge/restalytics/internal/repositories/postgres"
	"github.com/dineforge/restalytics/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restalytics",
	Short: "Analytics engine for multi-outlet restaurant order data",
	Long: `restalytics computes dining analyses over restaurant order records:
peak dining times, revenue trends, customer demographics, seasonal behaviour,
menu performance, branch rankings, order-volume anomalies and revenue
forecasts, filtered by outlet, season or date range.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.PersistentFlags().String("source", "csv", "record source: csv or postgres")
	rootCmd.PersistentFlags().String("dataset-path", "", "path to the orders CSV file")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "publish results to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("output-format", "console", "result output format: console or json")
	rootCmd.PersistentFlags().String("output-path", "", "directory for json result output")

	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("dataset_path", rootCmd.PersistentFlags().Lookup("dataset-path"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output-format"))
	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output-path"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()
}

func loadConfig() (*models.Config, error) {
	return models.LoadConfig(cfgFile)
}

// openStore builds the record store for the configured source and loads it.
func openStore(ctx context.Context, cfg *models.Config) (*store.Store, error) {
	var source store.Source
	switch cfg.Source {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := postgres.NewOrderRepository(pool)
		source = store.SourceFunc(repo.GetAll)
	case "csv", "":
		source = &store.CSVSource{Path: cfg.DatasetPath, ShowProgress: true}
	default:
		return nil, fmt.Errorf("unknown record source: %q", cfg.Source)
	}

	st := store.New(source)
	if _, err := st.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return st, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
