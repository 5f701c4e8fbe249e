package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BootstrapConfig holds the initial configuration loaded from motord_config.yaml
type BootstrapConfig struct {
	Logging    LoggingConfig         `yaml:"logging"`
	Server     BootstrapServerConfig `yaml:"server"`
	ZeroMQ     ZeroMQBootstrap       `yaml:"zeromq"`
	Data       DataConfig            `yaml:"data"`
	Processing ProcessingConfig      `yaml:"processing"`
}

// LoggingConfig holds logging settings from bootstrap
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogPath string `yaml:"log_path,omitempty"`
}

// BootstrapServerConfig holds bootstrap HTTP server settings
type BootstrapServerConfig struct {
	HTTPPort int `yaml:"http_port"`
}

// ZeroMQBootstrap holds ZeroMQ settings from bootstrap
type ZeroMQBootstrap struct {
	CommandBindAddress  string `yaml:"command_bind_address"`
	PublishBindAddress  string `yaml:"publish_bind_address"`
	StatusBindAddress   string `yaml:"status_bind_address,omitempty"`
	MessageBufferSize   int    `yaml:"message_buffer_size"`
	ReconnectIntervalMs int    `yaml:"reconnect_interval_ms"`
}

// ProcessingConfig holds action processing worker configuration from bootstrap
type ProcessingConfig struct {
	HighPriorityWorkers     int `yaml:"high_priority_workers"`
	StandardPriorityWorkers int `yaml:"standard_priority_workers"`
	LowPriorityWorkers      int `yaml:"low_priority_workers"`
	QueueSize               int `yaml:"queue_size,omitempty"`
}

// DataConfig holds data directory settings from bootstrap
type DataConfig struct {
	Directory           string `yaml:"directory"`
	MotorConfigFilename string `yaml:"motor_config_file"`
}

// LoadBootstrapConfig loads the bootstrap configuration from motord_config.yaml
func LoadBootstrapConfig(configDir string) (*BootstrapConfig, error) {
	bootstrapConfigPath := filepath.Join(configDir, "motord_config.yaml")

	data, err := os.ReadFile(bootstrapConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error reading bootstrap config file '%s': %w", bootstrapConfigPath, err)
	}

	var bootstrapCfg BootstrapConfig
	if err := yaml.Unmarshal(data, &bootstrapCfg); err != nil {
		return nil, fmt.Errorf("error parsing bootstrap config file '%s': %w", bootstrapConfigPath, err)
	}

	if bootstrapCfg.ZeroMQ.CommandBindAddress == "" {
		return nil, fmt.Errorf("missing required field in bootstrap config: zeromq.command_bind_address")
	}
	if bootstrapCfg.ZeroMQ.PublishBindAddress == "" {
		return nil, fmt.Errorf("missing required field in bootstrap config: zeromq.publish_bind_address")
	}
	if bootstrapCfg.Data.Directory == "" {
		return nil, fmt.Errorf("missing required field in bootstrap config: data.directory")
	}
	if bootstrapCfg.Data.MotorConfigFilename == "" {
		return nil, fmt.Errorf("missing required field in bootstrap config: data.motor_config_file")
	}

	return &bootstrapCfg, nil
}
