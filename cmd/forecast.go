package cmd

import (
	"context"

	"github.com/dineforge/restalytics/internal/analytics"
	"github.com/dineforge/restalytics/internal/output"
	"github.com/spf13/cobra"
)

var forecastOutlet string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project revenue for the next six months",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}

		dest, err := output.ForConfig(cfg)
		if err != nil {
			return err
		}
		defer dest.Close()

		engine := analytics.NewEngine(st)
		return writeResult(dest, "revenue-forecast", engine.Forecast(forecastOutlet))
	},
}

func init() {
	forecastCmd.Flags().StringVar(&forecastOutlet, "outlet", "", "restrict the forecast to one outlet id")
	rootCmd.AddCommand(forecastCmd)
}
