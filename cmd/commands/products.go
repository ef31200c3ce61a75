package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/models"
)

var productsStatus string

// NewProductsCommand creates the products command group
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect the active store's product catalog",
		Long: `List the product catalog of the active store.

Examples:
  # List products
  nexus products list

  # Only active products
  nexus products list --status active

  # Full records as JSON
  nexus products list -o json`,
	}

	cmd.AddCommand(newProductsListCommand())
	return cmd
}

func newProductsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products for the active store",
		Args:  cobra.NoArgs,
		RunE:  runProductsList,
	}

	cmd.Flags().StringVar(&productsStatus, "status", "", "Filter by status (active, draft, archived)")
	return cmd
}

func runProductsList(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	active := ctx.Container.ActiveStore()
	products, err := ctx.Source.Products(cmd.Context(), active.ID)
	if err != nil {
		return fmt.Errorf("failed to load products for %s: %w", active.ID, err)
	}

	if productsStatus != "" {
		filtered := products[:0]
		for _, p := range products {
			if string(p.Status) == productsStatus {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, products)
	default:
		return outputProductsTable(cmd, active, products)
	}
}

func outputProductsTable(cmd *cobra.Command, store models.Store, products []models.Product) error {
	if len(products) == 0 {
		cli.PrintInfo("No products found for %s", store.Name)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nPRODUCTS · %s\n", store.Name)

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Title", "Category", "Status", "Variants", "Stock", "Price")
	for _, p := range products {
		min, max := p.PriceRange()
		price := cli.FormatMoney(min, store.Currency)
		if !min.Equal(max) {
			price = min.StringFixed(2) + "–" + cli.FormatMoney(max, store.Currency)
		}
		table.Row(
			cli.TruncateString(p.Title, 40),
			p.Category,
			string(p.Status),
			fmt.Sprintf("%d", len(p.Variants)),
			fmt.Sprintf("%d", p.TotalStock()),
			price,
		)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d products\n", len(products))
	return nil
}
