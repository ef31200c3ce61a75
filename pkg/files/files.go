package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nexusadmin/nexus-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	NexusDir        = ".nexus"
	PanelConfigFile = "panel.yaml"
	StateFile       = "state.json"
	ExportsDir      = "exports"
)

// InitProjectStructure creates the .nexus directory layout in the current
// working directory and writes the default panel configuration if none exists.
func InitProjectStructure() error {
	dirs := []string{
		NexusDir,
		filepath.Join(NexusDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	panelPath := filepath.Join(NexusDir, PanelConfigFile)
	if _, err := os.Stat(panelPath); os.IsNotExist(err) {
		if err := WritePanelConfig(models.DefaultPanelConfig()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether a .nexus directory is present in the
// current working directory.
func ProjectExists() bool {
	info, err := os.Stat(NexusDir)
	return err == nil && info.IsDir()
}

// StatePath returns the path of the persisted UI state snapshot.
func StatePath() string {
	return filepath.Join(NexusDir, StateFile)
}

// ReadPanelConfig loads the panel configuration from .nexus/panel.yaml.
// A missing file yields the built-in defaults; any loaded config is
// normalized so the panel can always render.
func ReadPanelConfig() (*models.PanelConfig, error) {
	path := filepath.Join(NexusDir, PanelConfigFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultPanelConfig(), nil
		}
		return nil, fmt.Errorf("failed to read panel config %s: %w", path, err)
	}

	cfg := &models.PanelConfig{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse panel config YAML %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// WritePanelConfig saves the panel configuration to .nexus/panel.yaml.
func WritePanelConfig(cfg *models.PanelConfig) error {
	if err := os.MkdirAll(NexusDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for panel config: %w", err)
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal panel config to YAML: %w", err)
	}

	path := filepath.Join(NexusDir, PanelConfigFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write panel config %s: %w", path, err)
	}

	return nil
}
