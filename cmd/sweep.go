package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/panelverse-api/config"
)

var sweepOlderThan time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Clean up images left behind by interrupted publishes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, svc, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}

		olderThan := sweepOlderThan
		if olderThan == 0 {
			olderThan = config.Duration(cfg.PendingPublishTTL)
		}

		report, err := svc.SweepPendingPublishes(cmd.Context(), olderThan)
		if err != nil {
			return err
		}
		log.Printf("sweep: %d stale markers, %d committed, %d abandoned, %d images deleted",
			report.Markers, report.Committed, report.Abandoned, report.ImagesDeleted)
		return nil
	},
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepOlderThan, "older-than", 0, "only sweep markers older than this (defaults to pending_publish_ttl)")
}
