package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carwise/carwise/internal/cli"
	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/service"
)

func vehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Manage your favorites garage",
		Long:  `List, inspect, and remove the vehicles saved in your local garage.`,
	}

	cmd.AddCommand(listVehiclesCmd())
	cmd.AddCommand(showVehicleCmd())
	cmd.AddCommand(removeVehicleCmd())

	return cmd
}

func listVehiclesCmd() *cobra.Command {
	var (
		makeFilter     string
		categoryFilter string
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved vehicles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vehicles, err := store.ListVehicles(ctx, service.VehicleFilter{
				Make:     makeFilter,
				Category: categoryFilter,
				Limit:    limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list vehicles: %w", err)
			}

			if len(vehicles) == 0 {
				fmt.Println(cli.InfoStyle.Render("No vehicles saved. Use 'carwise import' to add listings."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Vehicle"),
				cli.BoldStyle.Render("Price"),
				cli.BoldStyle.Render("Mileage"),
				cli.BoldStyle.Render("Fuel"),
				cli.BoldStyle.Render("Category"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10), strings.Repeat("-", 24),
				strings.Repeat("-", 10), strings.Repeat("-", 10),
				strings.Repeat("-", 8), strings.Repeat("-", 10))

			for _, v := range vehicles {
				fmt.Fprintf(w, "%s\t%s\t$%.0f\t%.0f\t%s\t%s\n",
					v.ID, v.DisplayName(), v.Price, v.Mileage, v.Type, v.Category)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			total, err := store.CountVehicles(ctx)
			if err != nil {
				return fmt.Errorf("failed to count vehicles: %w", err)
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Showing %d of %d saved vehicles.", len(vehicles), total)))

			return nil
		},
	}

	cmd.Flags().StringVar(&makeFilter, "make", "", "filter by make")
	cmd.Flags().StringVar(&categoryFilter, "category", "", "filter by body category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of vehicles to show")

	return cmd
}

func showVehicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			v, err := store.GetVehicle(ctx, args[0])
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("vehicle %q is not in your garage", args[0]), err)
			}
			if err != nil {
				return fmt.Errorf("failed to load vehicle: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render(cli.CarIcon + " " + v.DisplayName()))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Price\t$%.0f\n", v.Price)
			fmt.Fprintf(w, "Condition\t%s\n", v.Condition)
			fmt.Fprintf(w, "Mileage\t%.0f\n", v.Mileage)
			fmt.Fprintf(w, "Transmission\t%s\n", v.Transmission)
			fmt.Fprintf(w, "Drivetrain\t%s\n", v.Drivetrain)
			fmt.Fprintf(w, "Fuel type\t%s\n", v.Type)
			fmt.Fprintf(w, "Category\t%s\n", v.Category)
			fmt.Fprintf(w, "Color\t%s\n", v.Color)
			if len(v.Features) > 0 {
				fmt.Fprintf(w, "Features\t%s\n", strings.Join(v.Features, ", "))
			}
			return w.Flush()
		},
	}
}

func removeVehicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a vehicle from the garage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteVehicle(ctx, args[0]); errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("vehicle %q is not in your garage", args[0]), err)
			} else if err != nil {
				return fmt.Errorf("failed to remove vehicle: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(cli.SuccessIcon + " Vehicle removed."))
			return nil
		},
	}
}
