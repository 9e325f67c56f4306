package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carwise/carwise/internal/cli"
	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/compare"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left-id> <right-id>",
		Short: "Compare two vehicles side by side",
		Long: `Compare two vehicles from your garage: attribute-by-attribute winners,
pros and cons, suggested use cases, and an overall recommendation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			left, err := store.GetVehicle(ctx, args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("vehicle %q is not in your garage", args[0]), err)
			}
			if err != nil {
				return fmt.Errorf("failed to load left vehicle: %w", err)
			}
			right, err := store.GetVehicle(ctx, args[1])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("vehicle %q is not in your garage", args[1]), err)
			}
			if err != nil {
				return fmt.Errorf("failed to load right vehicle: %w", err)
			}

			return cli.RenderComparison(os.Stdout, compare.Vehicles(left, right))
		},
	}
}
