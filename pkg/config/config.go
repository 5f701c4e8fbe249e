package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the operational motor configuration: the agent fleet the
// controller is allowed to command and how each action variant is routed.
type Config struct {
	Version        string          `yaml:"version" json:"version"`
	ConfigID       string          `yaml:"config_id" json:"config_id"`
	LastUpdated    string          `yaml:"lastUpdated" json:"lastUpdated"`
	FleetID        string          `yaml:"fleet_id" json:"fleet_id"`
	Agents         []AgentMapping  `yaml:"agents" json:"agents"`
	ActionMappings []ActionMapping `yaml:"action_mappings" json:"action_mappings"`
	Defaults       DefaultsConfig  `yaml:"defaults" json:"defaults"`
}

// AgentMapping describes one controllable agent and the transport topic its
// actions are published on.
type AgentMapping struct {
	AgentID     string `yaml:"agent_id" json:"agent_id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Topic       string `yaml:"topic,omitempty" json:"topic,omitempty"`
}

// ActionMapping assigns a processing priority to one action variant,
// identified by its wire token.
type ActionMapping struct {
	Action   string `yaml:"action" json:"action"`
	Priority string `yaml:"priority" json:"priority"`
}

// DefaultsConfig holds default values for action mappings
type DefaultsConfig struct {
	Priority string `yaml:"priority" json:"priority"`
	// TopicPrefix is prepended to an agent id when the agent mapping does
	// not name an explicit topic.
	TopicPrefix string `yaml:"topic_prefix" json:"topic_prefix"`
}

// LoadConfig loads the operational configuration from the specified file path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// GetActionMapping returns the mapping for an action token with defaults
// applied.
func (c *Config) GetActionMapping(action string) (ActionMapping, bool) {
	for _, mapping := range c.ActionMappings {
		if mapping.Action == action {
			return applyDefaults(mapping, c.Defaults), true
		}
	}
	return ActionMapping{}, false
}

// GetActionMappingsByPriority returns action mappings filtered by priority,
// with defaults applied.
func (c *Config) GetActionMappingsByPriority(priority string) []ActionMapping {
	var result []ActionMapping
	for _, mapping := range c.ActionMappings {
		withDefaults := applyDefaults(mapping, c.Defaults)
		if withDefaults.Priority == priority {
			result = append(result, withDefaults)
		}
	}
	return result
}

// GetAgent returns the mapping for an agent id.
func (c *Config) GetAgent(agentID string) (AgentMapping, bool) {
	for _, agent := range c.Agents {
		if agent.AgentID == agentID {
			return agent, true
		}
	}
	return AgentMapping{}, false
}

// AgentTopic returns the transport topic actions for the given agent are
// published on. Agents without an explicit topic get topic_prefix + agent_id.
func (c *Config) AgentTopic(agentID string) string {
	if agent, ok := c.GetAgent(agentID); ok && agent.Topic != "" {
		return agent.Topic
	}
	prefix := c.Defaults.TopicPrefix
	if prefix == "" {
		prefix = "motor.agent."
	}
	return prefix + agentID
}

// applyDefaults merges default values into an action mapping where fields
// are empty
func applyDefaults(mapping ActionMapping, defaults DefaultsConfig) ActionMapping {
	result := mapping
	if result.Priority == "" {
		result.Priority = defaults.Priority
	}
	return result
}
