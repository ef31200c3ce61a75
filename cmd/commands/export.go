package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/files"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <products|orders|customers>",
		Short: "Export store records to a file",
		Long: `Export records of the active store to a timestamped file under
.nexus/exports. The -o flag selects json (default) or yaml.

Examples:
  # Export orders as JSON
  nexus export orders

  # Export the product catalog as YAML
  nexus export products -o yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"products", "orders", "customers"},
		RunE:      runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	active := ctx.Container.ActiveStore()

	var records interface{}
	switch args[0] {
	case "products":
		records, err = ctx.Source.Products(cmd.Context(), active.ID)
	case "orders":
		records, err = ctx.Source.Orders(cmd.Context(), active.ID)
	case "customers":
		records, err = ctx.Source.Customers(cmd.Context(), active.ID)
	default:
		return fmt.Errorf("unknown export kind %q (must be: products, orders, or customers)", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to load %s for %s: %w", args[0], active.ID, err)
	}

	format, _ := cmd.Flags().GetString("output")
	ext := "json"
	if format == "yaml" {
		ext = "yaml"
	} else {
		format = "json"
	}

	dir := filepath.Join(files.NexusDir, files.ExportsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create exports directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s.%s", active.ID, args[0], time.Now().Format("20060102-150405"), ext)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := cli.OutputResults(f, format, records); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	cli.PrintSuccess("Exported %s for %s to %s", args[0], active.Name, path)
	return nil
}
