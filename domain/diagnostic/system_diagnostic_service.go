package diagnostic

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agent-motor/controller/pkg/processing"
)

// AgentStatus is the last known state reported by an agent.
type AgentStatus struct {
	AgentID        string    `json:"agent_id"`
	Status         string    `json:"status"` // "online", "busy", "error", "offline"
	BatteryPercent float64   `json:"battery_percent"`
	LastSeen       time.Time `json:"last_seen"`
}

// DiagnosticService tracks agent health and exposes controller runtime
// metrics over the API.
type DiagnosticService struct {
	mu       sync.RWMutex
	agents   map[string]AgentStatus
	director *processing.ActionDirector
	registry *processing.ActionRegistry
	started  time.Time
}

func NewDiagnosticService(director *processing.ActionDirector, registry *processing.ActionRegistry) *DiagnosticService {
	return &DiagnosticService{
		agents:   make(map[string]AgentStatus),
		director: director,
		registry: registry,
		started:  time.Now(),
	}
}

// UpdateAgentStatus records a status report. Implements zeromq.AgentStatusSink.
func (s *DiagnosticService) UpdateAgentStatus(agentID, status string, batteryPercent float64, timestampMs int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastSeen := time.Now()
	if timestampMs > 0 {
		lastSeen = time.UnixMilli(timestampMs)
	}

	s.agents[agentID] = AgentStatus{
		AgentID:        agentID,
		Status:         status,
		BatteryPercent: batteryPercent,
		LastSeen:       lastSeen,
	}
}

// GetAgentStatuses returns a snapshot of all known agents.
func (s *DiagnosticService) GetAgentStatuses() []AgentStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]AgentStatus, 0, len(s.agents))
	for _, st := range s.agents {
		statuses = append(statuses, st)
	}
	return statuses
}

// GetAgentsHandler handles API requests for agent statuses.
func (s *DiagnosticService) GetAgentsHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"agents": s.GetAgentStatuses(),
	})
}

// GetMetricsHandler handles API requests for controller runtime metrics:
// worker pool throughput and per-action routing counts.
func (s *DiagnosticService) GetMetricsHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "success",
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
		"pools":          s.director.GetPoolMetrics(),
		"actions":        s.registry.GetStats(),
	})
}
