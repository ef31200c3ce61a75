package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/files"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the panel configuration",
		Long: `Show the panel deployment configuration loaded from ` + files.NexusDir + `/` + files.PanelConfigFile + `.

Examples:
  # Human-readable summary
  nexus config show

  # Full configuration as YAML
  nexus config show -o yaml`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the panel configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateProject(); err != nil {
				return err
			}
			cfg, err := files.ReadPanelConfig()
			if err != nil {
				return fmt.Errorf("failed to load panel config: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			switch outputFormat {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, cfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s · %s\n", cfg.Branding.AppName, cfg.Branding.Tagline)
			fmt.Fprintf(out, "Admin: %s <%s>\n", cfg.Admin.DisplayName, cfg.Admin.Email)
			fmt.Fprintf(out, "Default store: %s\n", cfg.DefaultStoreID)
			fmt.Fprintf(out, "Mock data: %v\n\n", cfg.UseMockData)

			table := cli.NewTableFormatter(out)
			table.Header("ID", "Name", "Provider", "Domain", "Currency")
			for _, s := range cfg.Stores {
				table.Row(s.ID, s.Name, string(s.Provider), s.Domain, s.Currency)
			}
			table.Flush()

			fmt.Fprintf(out, "\nNavigation: ")
			for i, nav := range cfg.Navigation {
				if i > 0 {
					fmt.Fprint(out, " · ")
				}
				fmt.Fprint(out, nav.Label)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
