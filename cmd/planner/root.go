package main

import (
	"fmt"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"

	"github.com/spf13/cobra"
)

// commandContext carries the persistent flags shared by every subcommand.
type commandContext struct {
	storeDir string
	dayStart string
	jsonOut  bool
}

func (c *commandContext) session() (*services.EditSession, error) {
	start, ok := domain.ParseClock(c.dayStart)
	if !ok {
		return nil, fmt.Errorf("--day-start %q is not a clock time", c.dayStart)
	}
	s := services.NewEditSession()
	s.DefaultStart = start
	return s, nil
}

func (c *commandContext) repository() *repositories.DiskvItineraryRepository {
	return repositories.NewDiskvItineraryRepository(c.storeDir)
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Offline itinerary scheduling tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.storeDir, "store", "data/planner", "Directory holding locally stored itineraries")
	rootCmd.PersistentFlags().StringVar(&ctx.dayStart, "day-start", "08:00", "Default start of day (HH:MM)")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOut, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(newRebuildCommand(ctx))
	rootCmd.AddCommand(newAllocateCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newApplyCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))

	return rootCmd
}
