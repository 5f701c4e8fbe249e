package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
version: "1.0"
config_id: "test-motor-config"
lastUpdated: "2026-01-01T00:00:00Z"
fleet_id: "test-fleet"

agents:
  - agent_id: "agent_01"
    description: "bench rig"
  - agent_id: "agent_02"
    topic: "motor.lab.agent_02"

action_mappings:
  - action: "set_agent_pose"
    priority: "HIGH"
  - action: "move_forward"
    priority: "STANDARD"
  - action: "turn_left"

defaults:
  priority: "STANDARD"
  topic_prefix: "motor.agent."
`

	configPath := filepath.Join(tempDir, "test_config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", config.Version)
	}
	if config.ConfigID != "test-motor-config" {
		t.Errorf("Expected config_id test-motor-config, got %s", config.ConfigID)
	}
	if config.FleetID != "test-fleet" {
		t.Errorf("Expected fleet_id test-fleet, got %s", config.FleetID)
	}
	if len(config.Agents) != 2 {
		t.Errorf("Expected 2 agents, got %d", len(config.Agents))
	}
	if len(config.ActionMappings) != 3 {
		t.Errorf("Expected 3 action mappings, got %d", len(config.ActionMappings))
	}
}

func TestActionMappingHelpers(t *testing.T) {
	config := &Config{
		ActionMappings: []ActionMapping{
			{Action: "set_agent_pose", Priority: "HIGH"},
			{Action: "move_forward", Priority: "STANDARD"},
			{Action: "turn_left"}, // Missing priority, will use default
		},
		Defaults: DefaultsConfig{
			Priority:    "STANDARD",
			TopicPrefix: "motor.agent.",
		},
	}

	highMappings := config.GetActionMappingsByPriority("HIGH")
	if len(highMappings) != 1 {
		t.Errorf("Expected 1 HIGH mapping, got %d", len(highMappings))
	}
	if len(highMappings) > 0 && highMappings[0].Action != "set_agent_pose" {
		t.Errorf("Expected set_agent_pose, got %s", highMappings[0].Action)
	}

	standardMappings := config.GetActionMappingsByPriority("STANDARD")
	if len(standardMappings) != 2 {
		t.Errorf("Expected 2 STANDARD mappings, got %d", len(standardMappings))
	}

	poseMapping, found := config.GetActionMapping("set_agent_pose")
	if !found {
		t.Errorf("Expected to find set_agent_pose mapping")
	}
	if poseMapping.Priority != "HIGH" {
		t.Errorf("Expected HIGH priority, got %s", poseMapping.Priority)
	}

	// Defaults application
	turnMapping, found := config.GetActionMapping("turn_left")
	if !found {
		t.Errorf("Expected to find turn_left mapping")
	}
	if turnMapping.Priority != "STANDARD" {
		t.Errorf("Expected default STANDARD priority, got %s", turnMapping.Priority)
	}

	_, found = config.GetActionMapping("not_a_real_action")
	if found {
		t.Errorf("Expected not to find not_a_real_action mapping")
	}
}

func TestAgentHelpers(t *testing.T) {
	config := &Config{
		Agents: []AgentMapping{
			{AgentID: "agent_01"},
			{AgentID: "agent_02", Topic: "motor.lab.agent_02"},
		},
		Defaults: DefaultsConfig{TopicPrefix: "motor.agent."},
	}

	if _, found := config.GetAgent("agent_01"); !found {
		t.Errorf("Expected to find agent_01")
	}
	if _, found := config.GetAgent("agent_99"); found {
		t.Errorf("Expected not to find agent_99")
	}

	if topic := config.AgentTopic("agent_01"); topic != "motor.agent.agent_01" {
		t.Errorf("Expected prefixed topic, got %s", topic)
	}
	if topic := config.AgentTopic("agent_02"); topic != "motor.lab.agent_02" {
		t.Errorf("Expected explicit topic, got %s", topic)
	}
}

func TestLoadBootstrapConfig(t *testing.T) {
	tempDir := t.TempDir()

	bootstrapContent := `
logging:
  level: "debug"
  log_path: "/var/log/motord"
server:
  http_port: 9090
zeromq:
  command_bind_address: "tcp://*:6666"
  publish_bind_address: "tcp://*:7777"
  message_buffer_size: 2000
  reconnect_interval_ms: 500
data:
  directory: "/data/motord"
  motor_config_file: "my_motor_config.yaml"
processing:
  high_priority_workers: 5
  standard_priority_workers: 3
  low_priority_workers: 2
  queue_size: 250
`
	configPath := filepath.Join(tempDir, "motord_config.yaml")
	if err := os.WriteFile(configPath, []byte(bootstrapContent), 0644); err != nil {
		t.Fatalf("Failed to write test bootstrap config: %v", err)
	}

	bootstrapCfg, err := LoadBootstrapConfig(tempDir)
	if err != nil {
		t.Fatalf("LoadBootstrapConfig failed: %v", err)
	}

	if bootstrapCfg.Logging.Level != "debug" {
		t.Errorf("Expected logging level 'debug', got '%s'", bootstrapCfg.Logging.Level)
	}
	if bootstrapCfg.Server.HTTPPort != 9090 {
		t.Errorf("Expected server http_port 9090, got %d", bootstrapCfg.Server.HTTPPort)
	}
	if bootstrapCfg.ZeroMQ.CommandBindAddress != "tcp://*:6666" {
		t.Errorf("Expected zeromq command_bind_address 'tcp://*:6666', got '%s'", bootstrapCfg.ZeroMQ.CommandBindAddress)
	}
	if bootstrapCfg.ZeroMQ.PublishBindAddress != "tcp://*:7777" {
		t.Errorf("Expected zeromq publish_bind_address 'tcp://*:7777', got '%s'", bootstrapCfg.ZeroMQ.PublishBindAddress)
	}
	if bootstrapCfg.ZeroMQ.MessageBufferSize != 2000 {
		t.Errorf("Expected zeromq message_buffer_size 2000, got %d", bootstrapCfg.ZeroMQ.MessageBufferSize)
	}
	if bootstrapCfg.Data.Directory != "/data/motord" {
		t.Errorf("Expected data directory '/data/motord', got '%s'", bootstrapCfg.Data.Directory)
	}
	if bootstrapCfg.Data.MotorConfigFilename != "my_motor_config.yaml" {
		t.Errorf("Expected data motor_config_file 'my_motor_config.yaml', got '%s'", bootstrapCfg.Data.MotorConfigFilename)
	}
	if bootstrapCfg.Processing.HighPriorityWorkers != 5 {
		t.Errorf("Expected processing high_priority_workers 5, got %d", bootstrapCfg.Processing.HighPriorityWorkers)
	}
	if bootstrapCfg.Processing.StandardPriorityWorkers != 3 {
		t.Errorf("Expected processing standard_priority_workers 3, got %d", bootstrapCfg.Processing.StandardPriorityWorkers)
	}
	if bootstrapCfg.Processing.LowPriorityWorkers != 2 {
		t.Errorf("Expected processing low_priority_workers 2, got %d", bootstrapCfg.Processing.LowPriorityWorkers)
	}
	if bootstrapCfg.Processing.QueueSize != 250 {
		t.Errorf("Expected processing queue_size 250, got %d", bootstrapCfg.Processing.QueueSize)
	}
}

func TestLoadBootstrapConfigMissingRequired(t *testing.T) {
	tempDir := t.TempDir()

	// Missing 'zeromq.command_bind_address'
	bootstrapContentMissing := `
logging:
  level: "info"
server:
  http_port: 8080
zeromq:
  publish_bind_address: "tcp://*:7777"
  message_buffer_size: 1000
  reconnect_interval_ms: 1000
data:
  directory: "/data"
  motor_config_file: "motor_config.yaml"
processing:
  high_priority_workers: 4
  standard_priority_workers: 2
  low_priority_workers: 1
`
	configPath := filepath.Join(tempDir, "motord_config.yaml")
	if err := os.WriteFile(configPath, []byte(bootstrapContentMissing), 0644); err != nil {
		t.Fatalf("Failed to write test bootstrap config: %v", err)
	}

	_, err := LoadBootstrapConfig(tempDir)
	if err == nil {
		t.Fatalf("Expected error when loading bootstrap config with missing required fields, but got nil")
	}

	expectedErrorSubstr := "missing required field in bootstrap config: zeromq.command_bind_address"
	if !strings.Contains(err.Error(), expectedErrorSubstr) {
		t.Errorf("Expected error message to contain '%s', but got: %v", expectedErrorSubstr, err)
	}
}
