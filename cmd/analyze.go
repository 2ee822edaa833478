package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dineforge/restalytics/internal/analytics"
	"github.com/dineforge/restalytics/internal/models"
	"github.com/dineforge/restalytics/internal/output"
	"github.com/spf13/cobra"
)

var (
	analyzeOutlet string
	analyzeSeason string
	analyzeFrom   string
	analyzeTo     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [type]",
	Short: "Run one or all analyses over the loaded records",
	Long: `Runs the named analysis and writes its result to the configured
destination. Without a type argument, every registered analysis runs in
order. Available types:

  peak-dining            busiest hours, days, heatmaps and branch summaries
  revenue-analysis       revenue totals, trends and growth rate
  customer-demographics  age, gender and loyalty segmentation
  seasonal-behavior      orders and revenue by month and season
  menu-analysis          popular items, categories and combinations
  branch-performance     outlets ranked by revenue
  anomaly-detection      unusual daily order volumes`,
	Args: cobra.MaximumNArgs(1),
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

		criteria, err := buildCriteria()
		if err != nil {
			return err
		}

		engine := analytics.NewEngine(st)
		types := engine.Types()
		if len(args) == 1 {
			types = []string{args[0]}
		}

		dest, err := output.ForConfig(cfg)
		if err != nil {
			return err
		}
		defer dest.Close()

		for _, analysisType := range types {
			result, err := engine.Analyze(analysisType, criteria)
			if err != nil {
				return err
			}
			if err := writeResult(dest, analysisType, result); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOutlet, "outlet", "", "restrict to one outlet id")
	analyzeCmd.Flags().StringVar(&analyzeSeason, "season", "", "restrict to a season (spring, summer, autumn, winter)")
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "restrict to orders placed on or after this date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "restrict to orders placed on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(analyzeCmd)
}

// buildCriteria converts the analyze flags into record filters.
func buildCriteria() (models.Criteria, error) {
	criteria := models.Criteria{}
	if analyzeOutlet != "" {
		criteria = criteria.WithOutlet(analyzeOutlet)
	}
	if analyzeSeason != "" {
		season := models.Season(strings.ToLower(analyzeSeason))
		if !season.Valid() {
			return criteria, fmt.Errorf("unknown season: %q", analyzeSeason)
		}
		criteria = criteria.WithSeason(season)
	}
	if analyzeFrom != "" || analyzeTo != "" {
		var from, to time.Time
		var err error
		if analyzeFrom != "" {
			from, err = time.Parse("2006-01-02", analyzeFrom)
			if err != nil {
				return criteria, fmt.Errorf("invalid --from date: %w", err)
			}
		}
		if analyzeTo != "" {
			to, err = time.Parse("2006-01-02", analyzeTo)
			if err != nil {
				return criteria, fmt.Errorf("invalid --to date: %w", err)
			}
			// inclusive end of day
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		criteria = criteria.WithDateRange(from, to)
	}
	return criteria, nil
}

func writeResult(dest output.Destination, topic string, result models.Result) error {
	msg, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize %s result: %w", topic, err)
	}
	return dest.WriteMessage(topic, msg)
}
