package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agent-motor/controller/pkg/config"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

const sampleConfig = `version: "1.0"
config_id: "cfg-001"
fleet_id: "fleet-1"
agents:
  - agent_id: "agent_01"
action_mappings:
  - action: "move_forward"
    priority: "HIGH"
defaults:
  priority: "STANDARD"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motor_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestServiceLoadsInitialConfig(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	svc, err := NewMotorConfigService(path, nopLogger{})
	if err != nil {
		t.Fatalf("service creation failed: %v", err)
	}

	cfg := svc.GetCurrent()
	if cfg == nil {
		t.Fatal("expected loaded config")
	}
	if cfg.ConfigID != "cfg-001" || cfg.FleetID != "fleet-1" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestServiceSurvivesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	svc, err := NewMotorConfigService(path, nopLogger{})
	if err != nil {
		t.Fatalf("missing file must not fail creation: %v", err)
	}
	if svc.GetCurrent() != nil {
		t.Fatal("expected nil config when file is absent")
	}
}

func TestUpdateConfigValidatesAndPersists(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	svc, _ := NewMotorConfigService(path, nopLogger{})

	var hookCfg *config.Config
	svc.OnUpdate(func(c *config.Config) { hookCfg = c })

	updated := strings.Replace(sampleConfig, "cfg-001", "cfg-002", 1)
	if err := svc.UpdateConfig([]byte(updated)); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if svc.GetCurrent().ConfigID != "cfg-002" {
		t.Fatalf("active config not replaced: %s", svc.GetCurrent().ConfigID)
	}
	if hookCfg == nil || hookCfg.ConfigID != "cfg-002" {
		t.Fatal("update hook not invoked with new config")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read persisted config: %v", err)
	}
	if !strings.Contains(string(onDisk), "cfg-002") {
		t.Fatal("updated config not persisted to disk")
	}
}

func TestUpdateConfigRejectsIncomplete(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	svc, _ := NewMotorConfigService(path, nopLogger{})

	if err := svc.UpdateConfig([]byte("version: \"2.0\"\n")); err == nil {
		t.Fatal("expected validation error for missing required fields")
	}
	if svc.GetCurrent().ConfigID != "cfg-001" {
		t.Fatal("failed update must not replace active config")
	}

	if err := svc.UpdateConfig([]byte("{not yaml")); err == nil {
		t.Fatal("expected parse error")
	}
}
