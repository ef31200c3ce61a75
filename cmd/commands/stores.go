package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/models"
)

// StoresResult represents the output structure for stores list
type StoresResult struct {
	Stores []StoreItem `json:"stores" yaml:"stores"`
	Count  int         `json:"count" yaml:"count"`
}

// StoreItem is a single store in the list output
type StoreItem struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Provider string `json:"provider" yaml:"provider"`
	Domain   string `json:"domain" yaml:"domain"`
	Currency string `json:"currency" yaml:"currency"`
	Active   bool   `json:"active" yaml:"active"`
}

var (
	updateName     string
	updateDomain   string
	updateCurrency string
)

// NewStoresCommand creates the stores command group
func NewStoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Manage connected stores",
		Long: `List, switch between, and update the connected stores.

The active store selection and profile edits persist across sessions,
shared with the interactive TUI.

Examples:
  # List all connected stores
  nexus stores list

  # Switch the active store
  nexus stores switch medusa-1

  # Rename a store
  nexus stores update shopify-1 --name "Flagship Store"

  # List with JSON output
  nexus stores list -o json`,
	}

	cmd.AddCommand(newStoresListCommand())
	cmd.AddCommand(newStoresSwitchCommand())
	cmd.AddCommand(newStoresUpdateCommand())

	return cmd
}

func newStoresListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connected stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			st := ctx.Container.State()
			result := StoresResult{Count: len(st.Stores)}
			for _, s := range st.Stores {
				result.Stores = append(result.Stores, StoreItem{
					ID:       s.ID,
					Name:     s.Name,
					Provider: string(s.Provider),
					Domain:   s.Domain,
					Currency: s.Currency,
					Active:   s.ID == st.ActiveStoreID,
				})
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			switch outputFormat {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
			default:
				table := cli.NewTableFormatter(cmd.OutOrStdout())
				table.Header("", "ID", "Name", "Provider", "Domain", "Currency")
				for _, s := range result.Stores {
					marker := ""
					if s.Active {
						marker = "*"
					}
					table.Row(marker, s.ID, s.Name, s.Provider, s.Domain, s.Currency)
				}
				table.Flush()
				return nil
			}
		},
	}
}

func newStoresSwitchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <store-id>",
		Short: "Set the active store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			storeID := args[0]
			if _, ok := findStoreByID(ctx.Container.Stores(), storeID); !ok {
				return fmt.Errorf("unknown store id %q (see 'nexus stores list')", storeID)
			}

			ctx.Container.SetActiveStore(storeID)
			active := ctx.Container.ActiveStore()
			cli.PrintSuccess("Active store: %s (%s)", active.Name, active.ID)
			return nil
		},
	}
}

func newStoresUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <store-id>",
		Short: "Update a store's profile",
		Long: `Update the name, domain, or currency of a connected store.

Only the provided flags change; everything else keeps its value. The
store id and provider are immutable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			storeID := args[0]
			if _, ok := findStoreByID(ctx.Container.Stores(), storeID); !ok {
				return fmt.Errorf("unknown store id %q (see 'nexus stores list')", storeID)
			}

			var patch models.StorePatch
			if cmd.Flags().Changed("name") {
				name := strings.TrimSpace(updateName)
				if name == "" {
					return fmt.Errorf("store name cannot be blank")
				}
				patch.Name = &name
			}
			if cmd.Flags().Changed("domain") {
				domain := strings.TrimSpace(updateDomain)
				if domain == "" {
					return fmt.Errorf("store domain cannot be blank")
				}
				patch.Domain = &domain
			}
			if cmd.Flags().Changed("currency") {
				currency := strings.ToUpper(strings.TrimSpace(updateCurrency))
				if !models.ValidCurrency(currency) {
					return fmt.Errorf("unsupported currency %q", updateCurrency)
				}
				patch.Currency = &currency
			}
			if patch.Name == nil && patch.Domain == nil && patch.Currency == nil {
				return fmt.Errorf("nothing to update: pass --name, --domain, or --currency")
			}

			ctx.Container.UpdateStore(storeID, patch)
			updated, _ := findStoreByID(ctx.Container.Stores(), storeID)
			cli.PrintSuccess("Updated %s: %s · %s · %s", updated.ID, updated.Name, updated.Domain, updated.Currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&updateName, "name", "", "New store name")
	cmd.Flags().StringVar(&updateDomain, "domain", "", "New store domain")
	cmd.Flags().StringVar(&updateCurrency, "currency", "", "New currency code (USD, EUR, GBP)")

	return cmd
}

func findStoreByID(stores []models.Store, id string) (models.Store, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return models.Store{}, false
}
