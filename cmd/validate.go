package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ua-capabilities/core/config"
	"ua-capabilities/core/logger"
	"ua-capabilities/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the dataset and print an integrity report",
	Long: `Checks that the dataset source is reachable, then builds the engine.
Any malformed row, invalid pattern, missing "*" default pattern, dangling parent or
inheritance cycle makes the command fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		src, err := newSource(cfg, logg)
		if err != nil {
			return err
		}

		// Check the source first so an unreachable dataset is reported as such
		// rather than as a load failure.
		svc := integrity.NewService(nil, src, logg)
		srcReport, err := svc.CheckSource(ctx)
		if err != nil {
			return fmt.Errorf("source check failed: %w", err)
		}
		if srcReport.Status != "ok" {
			return fmt.Errorf("dataset source %s is not usable: %v", srcReport.Source, srcReport.Errors)
		}

		eng, err := initEngine(ctx, cfg, src, logg)
		if err != nil {
			return err
		}

		report := integrity.NewService(eng, src, logg).CheckAll(ctx)
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			ds := report.Dataset
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\n=== Dataset Validation ===")
			fmt.Fprintf(out, "Source: %s\n", ds.Source)
			fmt.Fprintf(out, "Entries: %d\n", ds.Entries)
			fmt.Fprintf(out, "Properties: %d\n", ds.Properties)
			fmt.Fprintf(out, "Roots: %d\n", ds.Roots)
			fmt.Fprintf(out, "Max Depth: %d\n", ds.MaxDepth)
			fmt.Fprintf(out, "Buckets: %d (largest %d, catch-all %d)\n", ds.Buckets, ds.LargestBucket, ds.CatchAll)
			fmt.Fprintf(out, "Execution Time: %s\n", time.Since(startTime).String())
		}

		logg.Info("Dataset validation completed",
			zap.String("status", report.Status),
			zap.Duration("execution_time", time.Since(startTime)),
		)

		if report.Status != "ok" {
			return fmt.Errorf("integrity report status: %s", report.Status)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Output the report as JSON")
}
