package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/spf13/cobra"
)

var (
	ordersStatus   string
	ordersPage     int
	ordersLimit    int
	updateStatus   string
	updateTracking string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders on a running server (admin token required)",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		page, err := client.ListOrders(cmd.Context(), ordersStatus, ordersPage, ordersLimit)
		if err != nil {
			return fmt.Errorf("client.ListOrders: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tSTATUS\tITEMS\tTOTAL\tCREATED")
		for _, o := range page.Orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				o.ID, o.Number, o.CustomerEmail, o.Status, o.ItemCount, o.Total, o.CreatedAt.Format("2006-01-02 15:04"))
		}
		_ = w.Flush()

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d orders\n", page.Total)
		return nil
	},
}

var ordersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change the status or tracking number of an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("uuid.Parse: %w", err)
		}

		var req api.OrderUpdateRequest
		if cmd.Flags().Changed("status") {
			req.Status = &updateStatus
		}
		if cmd.Flags().Changed("tracking") {
			req.TrackingNumber = &updateTracking
		}
		if req.Status == nil && req.TrackingNumber == nil {
			return fmt.Errorf("nothing to update: set --status or --tracking")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		order, err := client.UpdateOrder(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("client.UpdateOrder: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s", order.Number, order.Status)
		if order.TrackingNumber != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (tracking %s)", order.TrackingNumber)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	ordersListCmd.Flags().StringVar(&ordersStatus, "status", "", "Only orders with this status")
	ordersListCmd.Flags().IntVar(&ordersPage, "page", 1, "Page to show")
	ordersListCmd.Flags().IntVar(&ordersLimit, "limit", 20, "Orders per page")

	ordersUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "New status")
	ordersUpdateCmd.Flags().StringVar(&updateTracking, "tracking", "", "Tracking number")

	ordersCmd.AddCommand(ordersListCmd, ordersUpdateCmd)
}
