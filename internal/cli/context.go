package cli

import (
	"fmt"

	"github.com/nexusadmin/nexus-cli/pkg/data"
	"github.com/nexusadmin/nexus-cli/pkg/files"
	"github.com/nexusadmin/nexus-cli/pkg/models"
	"github.com/nexusadmin/nexus-cli/pkg/state"
)

// CommandContext wires a non-interactive command to the same panel
// configuration, state container, and data source the TUI uses. Each
// invocation loads fresh; mutations persist through the usual snapshot.
type CommandContext struct {
	Config    *models.PanelConfig
	Container *state.Container
	Source    data.Source
}

// NewCommandContext loads the project and builds the shared context.
func NewCommandContext() (*CommandContext, error) {
	if err := ValidateProject(); err != nil {
		return nil, err
	}

	cfg, err := files.ReadPanelConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load panel config: %w", err)
	}

	container := state.New(cfg, state.NewFileSnapshotStore(files.StatePath()))
	return &CommandContext{
		Config:    cfg,
		Container: container,
		Source:    data.NewSource(cfg),
	}, nil
}

// ValidateProject ensures the project is initialized
func ValidateProject() error {
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'nexus init' first", files.NexusDir)
	}
	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: table, json, or yaml)", format)
}
