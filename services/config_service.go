package services

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/agent-motor/controller/pkg/config"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// ConfigPublisher broadcasts a new configuration snapshot to subscribed
// agents. Avoids a direct dependency on the ZeroMQ implementation.
type ConfigPublisher interface {
	PublishConfigUpdate(yamlData []byte) error
}

// MotorConfigService manages the operational motor configuration: loading
// it from disk, serving the current snapshot, and applying updates.
type MotorConfigService interface {
	LoadConfig() error
	GetCurrent() *config.Config
	GetCurrentConfigYAML() ([]byte, error)
	UpdateConfig(newConfigYAML []byte) error
	PersistConfig(yamlData []byte) error
	SetPublisher(p ConfigPublisher)
	OnUpdate(hook func(*config.Config))
}

type motorConfigService struct {
	configPath  string
	logger      customlog.Logger
	publisher   ConfigPublisher
	current     *config.Config
	updateHooks []func(*config.Config)
	mu          sync.RWMutex
}

// NewMotorConfigService creates the service and attempts an initial load.
// A missing config file is not fatal; the config can arrive via the API.
func NewMotorConfigService(configPath string, logger customlog.Logger) (MotorConfigService, error) {
	if configPath == "" {
		return nil, fmt.Errorf("operational configuration path cannot be empty")
	}

	service := &motorConfigService{
		configPath: configPath,
		logger:     logger,
	}

	if err := service.LoadConfig(); err != nil {
		logger.Warnf("Initial load of motor config '%s' failed: %v. Service created with no active config.", configPath, err)
		return service, nil
	}

	logger.Infof("Motor config service initialized from %s", configPath)
	return service, nil
}

// LoadConfig reads the config file from disk and replaces the active config.
func (s *motorConfigService) LoadConfig() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		s.current = nil
		return fmt.Errorf("error reading motor config file '%s': %w", s.configPath, err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		s.current = nil
		return fmt.Errorf("error parsing motor config file '%s': %w", s.configPath, err)
	}

	s.current = &cfg
	s.logger.Infof("Loaded motor configuration ID: %s, Version: %s", cfg.ConfigID, cfg.Version)
	return nil
}

// GetCurrent returns the active configuration. Treat as read-only;
// modifications go through UpdateConfig.
func (s *motorConfigService) GetCurrent() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// GetCurrentConfigYAML returns the raw YAML content as stored on disk.
func (s *motorConfigService) GetCurrentConfigYAML() ([]byte, error) {
	s.mu.RLock()
	path := s.configPath
	s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading motor config file '%s': %w", path, err)
	}
	return data, nil
}

// UpdateConfig validates, persists and applies a new configuration, then
// notifies subscribers and registered hooks.
func (s *motorConfigService) UpdateConfig(newConfigYAML []byte) error {
	s.mu.Lock()

	var newCfg config.Config
	if err := yaml.Unmarshal(newConfigYAML, &newCfg); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("invalid YAML format: %w", err)
	}
	if newCfg.ConfigID == "" || newCfg.Version == "" || newCfg.FleetID == "" {
		s.mu.Unlock()
		return fmt.Errorf("validation failed: missing required fields (config_id, version, fleet_id)")
	}

	if err := s.persistConfigUnlocked(newConfigYAML); err != nil {
		s.mu.Unlock()
		return err
	}

	oldID := "none"
	if s.current != nil {
		oldID = s.current.ConfigID
	}
	s.current = &newCfg
	hooks := s.updateHooks
	publisher := s.publisher
	s.mu.Unlock()

	s.logger.Infof("Updated motor configuration %s -> %s (version %s)", oldID, newCfg.ConfigID, newCfg.Version)

	for _, hook := range hooks {
		hook(&newCfg)
	}

	if publisher != nil {
		go func() {
			if err := publisher.PublishConfigUpdate(newConfigYAML); err != nil {
				s.logger.Warnf("Failed to publish config update: %v", err)
			}
		}()
	}

	return nil
}

// PersistConfig writes the YAML data to the config file path.
func (s *motorConfigService) PersistConfig(yamlData []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistConfigUnlocked(yamlData)
}

func (s *motorConfigService) persistConfigUnlocked(yamlData []byte) error {
	if err := os.WriteFile(s.configPath, yamlData, 0644); err != nil {
		return fmt.Errorf("error writing motor config file '%s': %w", s.configPath, err)
	}
	return nil
}

// SetPublisher injects the publisher after the transport layer comes up.
func (s *motorConfigService) SetPublisher(p ConfigPublisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publisher = p
}

// OnUpdate registers a hook invoked with every applied configuration.
// Used to reload routing state without restarting the controller.
func (s *motorConfigService) OnUpdate(hook func(*config.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateHooks = append(s.updateHooks, hook)
}
