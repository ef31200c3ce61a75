package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/models"
)

var ordersLimit int

// NewOrdersCommand creates the orders command group
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect the active store's orders",
		Long: `List recent orders of the active store, newest first.

Examples:
  # List all orders
  nexus orders list

  # Only the ten most recent
  nexus orders list --limit 10

  # Full records as YAML
  nexus orders list -o yaml`,
	}

	cmd.AddCommand(newOrdersListCommand())
	return cmd
}

func newOrdersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders for the active store",
		Args:  cobra.NoArgs,
		RunE:  runOrdersList,
	}

	cmd.Flags().IntVar(&ordersLimit, "limit", 0, "Maximum number of orders to show (0 = all)")
	return cmd
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	active := ctx.Container.ActiveStore()
	orders, err := ctx.Source.Orders(cmd.Context(), active.ID)
	if err != nil {
		return fmt.Errorf("failed to load orders for %s: %w", active.ID, err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if ordersLimit > 0 && len(orders) > ordersLimit {
		orders = orders[:ordersLimit]
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, orders)
	default:
		return outputOrdersTable(cmd, active, orders)
	}
}

func outputOrdersTable(cmd *cobra.Command, store models.Store, orders []models.Order) error {
	if len(orders) == 0 {
		cli.PrintInfo("No orders found for %s", store.Name)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nORDERS · %s\n", store.Name)

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Order", "Date", "Customer", "Status", "Payment", "Total")
	for _, o := range orders {
		table.Row(
			o.OrderNumber,
			o.CreatedAt.Format("2006-01-02"),
			cli.TruncateString(o.Customer.Name, 24),
			string(o.Status),
			string(o.PaymentStatus),
			cli.FormatMoney(o.Total, o.Currency),
		)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d orders\n", len(orders))
	return nil
}
