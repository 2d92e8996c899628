package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultUsesBuiltinPackage(t *testing.T) {
	t.Setenv("FORGE_CLI_PACKAGE", "")
	t.Setenv("FORGE_MIN_NODE_MAJOR", "")

	cfg := Default()
	if cfg.Package != DefaultPackage {
		t.Errorf("Package = %q, want %q", cfg.Package, DefaultPackage)
	}
	if cfg.MinNodeMajor != DefaultMinNodeMajor {
		t.Errorf("MinNodeMajor = %d, want %d", cfg.MinNodeMajor, DefaultMinNodeMajor)
	}
	if cfg.MachineID == "" {
		t.Error("expected a machine ID (or the fallback value)")
	}
}

func TestDefaultEnvOverrides(t *testing.T) {
	t.Setenv("FORGE_CLI_PACKAGE", "@forgelabs/cli-next")
	t.Setenv("FORGE_MIN_NODE_MAJOR", "20")
	t.Setenv("FORGE_NPM_MIRROR", "https://mirror.example.com/npm")
	t.Setenv("FORGE_REPORT_ENDPOINT", "https://reports.example.com/installs")

	cfg := Default()
	if cfg.Package != "@forgelabs/cli-next" {
		t.Errorf("Package = %q", cfg.Package)
	}
	if cfg.MinNodeMajor != 20 {
		t.Errorf("MinNodeMajor = %d, want 20", cfg.MinNodeMajor)
	}
	if cfg.NPMMirror != "https://mirror.example.com/npm" {
		t.Errorf("NPMMirror = %q", cfg.NPMMirror)
	}
	if cfg.ReportEndpoint != "https://reports.example.com/installs" {
		t.Errorf("ReportEndpoint = %q", cfg.ReportEndpoint)
	}
}

func TestDefaultIgnoresBadMinNodeMajor(t *testing.T) {
	for _, bad := range []string{"soon", "-3", "0"} {
		t.Setenv("FORGE_MIN_NODE_MAJOR", bad)
		if cfg := Default(); cfg.MinNodeMajor != DefaultMinNodeMajor {
			t.Errorf("FORGE_MIN_NODE_MAJOR=%q: MinNodeMajor = %d, want %d", bad, cfg.MinNodeMajor, DefaultMinNodeMajor)
		}
	}
}

func TestReceiptWrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &Config{Package: DefaultPackage, UserName: "tester", MachineID: "machine-1"}
	receipt := NewReceipt(cfg, "posix", "v22.18.0")

	path, err := receipt.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "receipt.json" {
		t.Errorf("unexpected receipt path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read receipt: %v", err)
	}
	var got Receipt
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal receipt: %v", err)
	}
	if got.Package != DefaultPackage || got.Platform != "posix" || got.NodeVersion != "v22.18.0" {
		t.Errorf("unexpected receipt contents: %+v", got)
	}
	if got.InstalledAt.IsZero() || got.InstalledAt.After(time.Now().Add(time.Minute)) {
		t.Errorf("implausible install time %v", got.InstalledAt)
	}
}
