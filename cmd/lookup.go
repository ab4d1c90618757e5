package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ua-capabilities/core/config"
	"ua-capabilities/core/logger"

	"github.com/spf13/cobra"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <user-agent>",
	Short: "Classify a user agent and print its capabilities",
	Long:  `Builds the engine from the configured dataset and prints the capabilities of the given user agent as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Build logs go to stderr at warn level so stdout stays pure JSON.
		logCfg := cfg.Log
		logCfg.Level = "warn"
		logg, err := logger.New(&logCfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		eng, _, err := buildEngine(ctx, cfg, logg)
		if err != nil {
			return err
		}

		caps, err := eng.Lookup(strings.Join(args, " "))
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		var data []byte
		if pretty {
			data, err = json.MarshalIndent(caps, "", "  ")
		} else {
			data, err = json.Marshal(caps)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
