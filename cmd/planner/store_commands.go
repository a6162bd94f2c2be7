package main

import (
	"fmt"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/services"
	"strings"

	"github.com/spf13/cobra"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init <itinerary.json>",
		Short: "Import a generated itinerary into the local store",
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

			it, err := services.ImportItinerary(cmd.Context(), req.ToService(), session, ctx.repository(), nil)
			if err != nil {
				return err
			}
			return printItinerary(cmd, ctx, it)
		},
	}
}

func newApplyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id> <operation-json>",
		Short: "Apply one edit operation to a stored itinerary",
		Long: "Operations use the same JSON as the HTTP API, for example:\n" +
			"  planner apply trip '{\"type\":\"move\",\"from_day\":1,\"to_day\":2,\"from_index\":0,\"to_index\":0}'",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := ctx.session()
			if err != nil {
				return err
			}

			op, err := services.DecodeOperation([]byte(args[1]))
			if err != nil {
				return err
			}

			it, err := services.ApplyEdit(cmd.Context(), args[0], op, session, ctx.repository(), nil)
			if err != nil {
				return err
			}
			return printItinerary(cmd, ctx, it)
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a stored itinerary, or list stored ids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := ctx.repository()

			if len(args) == 0 {
				keys := repo.Keys(cmd.Context())
				if ctx.jsonOut {
					return writeJSON(cmd, keys)
				}
				if len(keys) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No itineraries stored.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(keys, "\n"))
				return nil
			}

			it, err := services.LoadItinerary(cmd.Context(), args[0], repo, nil)
			if err != nil {
				return err
			}
			return printItinerary(cmd, ctx, it)
		},
	}
}
