// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devifyx/devterm/internal/config"
)

func TestConfigPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.cue")
	out, _, err := execute(t, "", "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `ui: { typing_delay: "50ms", color_scheme: "light" }
ssh: { port: 2323, host_key_path: "/tmp/devterm_key" }
`)
	out, _, err := execute(t, "", "--config", cfgPath, "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	for _, want := range []string{`typing_delay: "50ms"`, `color_scheme: "light"`, "port: 2323", `username: "user"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}

	// The dump is itself a valid configuration.
	roundTrip := writeConfig(t, out)
	if _, _, err := execute(t, "", "--config", roundTrip, "config", "dump"); err != nil {
		t.Errorf("loading the dump failed: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `session: { hostname: "lab" }
ssh: { metrics_addr: "127.0.0.1:9090" }
`)
	out, _, err := execute(t, "", "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"Current Configuration", cfgPath, "hostname: lab", "metrics_addr: 127.0.0.1:9090", "file: (none)"} {
		if !strings.Contains(out, want) {
			t.Errorf("show does not contain %q:\n%s", want, out)
		}
	}
}

func TestConfigShow_InvalidFileFallsBack(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `ssh: { port: 0 }
`)
	out, errOut, err := execute(t, "", "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(errOut, "failed to load configuration") {
		t.Errorf("stderr = %q, want a warning", errOut)
	}
	if !strings.Contains(out, "(using defaults)") {
		t.Errorf("show should fall back to defaults:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.cue")
	out, _, err := execute(t, "", "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Created "+path) {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != config.GenerateCUE(config.DefaultConfig()) {
		t.Errorf("written file = %q", data)
	}

	out, _, err = execute(t, "", "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("second init output = %q", out)
	}
}
