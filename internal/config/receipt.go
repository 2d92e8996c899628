package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Receipt records what a successful live install produced. It is written to
// ~/.forge/receipt.json and optionally posted to the report endpoint.
type Receipt struct {
	Package     string    `json:"package"`
	NodeVersion string    `json:"node_version"`
	Platform    string    `json:"platform"`
	UserName    string    `json:"user_name"`
	MachineID   string    `json:"machine_id"`
	InstalledAt time.Time `json:"installed_at"`
}

// NewReceipt builds a receipt for the current run.
func NewReceipt(cfg *Config, platform, nodeVersion string) *Receipt {
	return &Receipt{
		Package:     cfg.Package,
		NodeVersion: nodeVersion,
		Platform:    platform,
		UserName:    cfg.UserName,
		MachineID:   cfg.MachineID,
		InstalledAt: time.Now().UTC(),
	}
}

// ForgeDir resolves the per-user state directory.
func ForgeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home dir: %w", err)
	}
	return filepath.Join(home, ".forge"), nil
}

// Write persists the receipt and returns its path.
func (r *Receipt) Write() (string, error) {
	dir, err := ForgeDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal receipt: %w", err)
	}
	target := filepath.Join(dir, "receipt.json")
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}
