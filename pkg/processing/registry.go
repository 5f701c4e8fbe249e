package processing

import (
	"sync"

	"github.com/agent-motor/controller/pkg/config"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// ActionInfo holds routing metadata and stats for one action variant.
type ActionInfo struct {
	Action     string
	Priority   string
	StatCount  int64
	LastRouted int64
}

// ActionRegistry maintains priority and routing statistics per action token
type ActionRegistry struct {
	logger  customlog.Logger
	actions map[string]*ActionInfo
	mu      sync.RWMutex
}

// NewActionRegistry creates a new action registry
func NewActionRegistry(logger customlog.Logger) *ActionRegistry {
	return &ActionRegistry{
		logger:  logger,
		actions: make(map[string]*ActionInfo),
	}
}

// LoadFromConfig loads action mappings from the operational config
func (r *ActionRegistry) LoadFromConfig(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = make(map[string]*ActionInfo)

	for _, mapping := range cfg.ActionMappings {
		priority := mapping.Priority
		if priority == "" {
			priority = cfg.Defaults.Priority
		}

		r.actions[mapping.Action] = &ActionInfo{
			Action:   mapping.Action,
			Priority: priority,
		}
	}

	r.logger.Infof("Loaded %d action mappings into registry", len(r.actions))
}

// GetPriority gets the configured priority for an action token
func (r *ActionRegistry) GetPriority(action string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.actions[action]
	if !exists {
		return "", false
	}
	return info.Priority, true
}

// UpdateStats updates routing statistics for an action token, registering
// unmapped tokens with the standard priority.
func (r *ActionRegistry) UpdateStats(action string, timestamp int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, exists := r.actions[action]
	if !exists {
		info = &ActionInfo{
			Action:   action,
			Priority: PriorityStandard,
		}
		r.actions[action] = info
	}

	info.StatCount++
	info.LastRouted = timestamp
}

// GetAllActions returns all registered action tokens
func (r *ActionRegistry) GetAllActions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	return names
}

// GetStats returns a map of per-action routing statistics
func (r *ActionRegistry) GetStats() map[string]map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make(map[string]map[string]interface{})
	for name, info := range r.actions {
		stats[name] = map[string]interface{}{
			"count":       info.StatCount,
			"last_routed": info.LastRouted,
			"priority":    info.Priority,
		}
	}
	return stats
}
