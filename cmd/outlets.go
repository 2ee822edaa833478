package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outletsCmd = &cobra.Command{
	Use:   "outlets",
	Short: "List the outlets present in the loaded records",
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

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(st.Snapshot().Outlets); err != nil {
			return fmt.Errorf("failed to write outlet list: %w", err)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Describe the loaded data set",
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

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(st.Summary()); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outletsCmd)
	rootCmd.AddCommand(summaryCmd)
}
