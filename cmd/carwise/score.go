package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carwise/carwise/internal/cli"
	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/scoring"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <id>",
		Short: "Show scores for one vehicle",
		Long: `Display the value score, environmental score, and projected five-year
cost of ownership for a vehicle in your garage.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vehicle, err := store.GetVehicle(ctx, args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("vehicle %q is not in your garage", args[0]), err)
			}
			if err != nil {
				return fmt.Errorf("failed to load vehicle: %w", err)
			}

			return cli.RenderScores(os.Stdout, vehicle,
				scoring.Value(vehicle),
				scoring.Environmental(vehicle),
				scoring.OwnershipCost(vehicle))
		},
	}
}
