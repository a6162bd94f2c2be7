package main

import (
	"fmt"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
	"strings"

	"github.com/spf13/cobra"
)

func newRebuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild <day.json>",
		Short: "Rebuild one day's time slots from a JSON file",
		Long: "Reads {\"default_start\": \"HH:MM\", \"items\": [...]} and prints the rebuilt day.\n" +
			"Transit items are dropped and overlapping items are pushed later.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.session()
			if err != nil {
				return err
			}

			var req dto.RebuildDayRequest
			if err := readJSONFile(cmd, args[0], &req); err != nil {
				return err
			}

			start := session.DefaultStart
			if s := strings.TrimSpace(req.DefaultStart); s != "" {
				ms, ok := domain.ParseClock(s)
				if !ok {
					return fmt.Errorf("default_start %q is not a clock time", s)
				}
				start = ms
			}

			items := services.RebuildDay(dto.ItemsToDomain(req.Items), start)
			if ctx.jsonOut {
				return writeJSON(cmd, dto.RebuildDayResponse{Items: dto.ItemsFromDomain(items)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(itemHeaders, itemRows(items), itemAligns))
			return nil
		},
	}
}

func newAllocateCommand(ctx *commandContext) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "allocate <itinerary.json>",
		Short: "Allocate sequential time slots for a generated itinerary without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.session()
			if err != nil {
				return err
			}

			var req dto.ImportRequest
			if err := readJSONFile(cmd, args[0], &req); err != nil {
				return err
			}

			svc := req.ToService()
			it := services.AllocateItinerary(domain.Itinerary{ID: svc.ID, Title: svc.Title, Days: svc.Days}, session.DefaultStart)
			if canonical {
				it = services.RebuildItinerary(it, session.DefaultStart)
			}
			return printItinerary(cmd, ctx, it)
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "Also rebuild every day into the form edits produce")
	return cmd
}

func printItinerary(cmd *cobra.Command, ctx *commandContext, it domain.Itinerary) error {
	if ctx.jsonOut {
		return writeJSON(cmd, dto.ItineraryFromDomain(it))
	}

	out := cmd.OutOrStdout()
	if it.Title != "" || it.ID != "" {
		fmt.Fprintf(out, "%s (%s)\n", it.Title, it.ID)
	}
	fmt.Fprintln(out, renderItinerary(it))
	return nil
}
