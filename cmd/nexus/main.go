package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nexusadmin/nexus-cli/cmd/commands"
	"github.com/nexusadmin/nexus-cli/internal/cli"
	"github.com/nexusadmin/nexus-cli/pkg/data"
	"github.com/nexusadmin/nexus-cli/pkg/files"
	"github.com/nexusadmin/nexus-cli/pkg/notify"
	"github.com/nexusadmin/nexus-cli/pkg/state"
	"github.com/nexusadmin/nexus-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	outputFormat string
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Terminal admin panel for multi-provider eCommerce stores",
	Long: `Nexus is a terminal admin panel for managing Shopify, Medusa, and
custom eCommerce stores from one unified interface. It keeps the panel
configuration and UI state as plain files under .nexus/ and provides a
TUI plus scripting subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(quiet)
		return cli.ValidateOutputFormat(outputFormat)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.NexusDir)
			fmt.Fprintf(os.Stderr, "Please run 'nexus init' first to initialize the panel.\n")
			os.Exit(1)
		}

		cfg, err := files.ReadPanelConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load panel configuration: %v\n", err)
			os.Exit(1)
		}

		container := state.New(cfg, state.NewFileSnapshotStore(files.StatePath()))
		app := tui.NewApp(cfg, container, data.NewSource(cfg), notify.NewDispatcher())

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the panel in the current directory",
	Long:  `Creates the .nexus folder structure with a default panel configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Nexus panel in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .nexus folder structure")
		fmt.Println("✓ Edit .nexus/panel.yaml to configure branding and stores")
		fmt.Println("\nRun 'nexus' to start the interactive panel.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Nexus",
	Long:  `Display the current version of the Nexus CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Nexus version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewStoresCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewOrdersCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
