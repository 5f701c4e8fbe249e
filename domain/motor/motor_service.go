package motor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agent-motor/controller/pkg/actions"
	"github.com/agent-motor/controller/pkg/config"
	"github.com/agent-motor/controller/pkg/log"
	"github.com/agent-motor/controller/pkg/processing"
)

// ConfigSource exposes the active motor configuration. The config can be
// replaced at runtime, so callers fetch it per request.
type ConfigSource interface {
	GetCurrent() *config.Config
}

// Router queues a job for prioritized execution.
type Router interface {
	Route(job *processing.Job) error
}

// MotorService is the single entry point for command submission. Every
// transport (HTTP, WebSocket, ZeroMQ) decodes to an Action and hands it
// here; the service validates the target agent, assigns a command id and
// routes the job to the director.
type MotorService struct {
	cfg    ConfigSource
	router Router
	logger log.Logger
}

func NewMotorService(cfg ConfigSource, router Router, logger log.Logger) *MotorService {
	return &MotorService{cfg: cfg, router: router, logger: logger}
}

// Submit validates and queues an action, returning its command id.
func (s *MotorService) Submit(action actions.Action) (string, error) {
	if action.AgentID() == "" {
		return "", fmt.Errorf("action %s has no agent id", action.Name())
	}

	// When the fleet is declared in config, only known agents are commandable.
	if cfg := s.cfg.GetCurrent(); cfg != nil && len(cfg.Agents) > 0 {
		if _, ok := cfg.GetAgent(action.AgentID()); !ok {
			return "", fmt.Errorf("unknown agent: %s", action.AgentID())
		}
	}

	commandID := uuid.NewString()
	job := &processing.Job{
		CommandID:  commandID,
		Action:     action,
		ReceivedNs: processing.GetCurrentTimestamp(),
	}

	if err := s.router.Route(job); err != nil {
		return "", fmt.Errorf("failed to route %s: %w", action.Name(), err)
	}

	s.logger.Debugf("Queued %s for agent %s as %s", action.Name(), action.AgentID(), commandID)
	return commandID, nil
}

// SubmitJSON decodes a wire action object and submits it.
func (s *MotorService) SubmitJSON(data []byte) (string, error) {
	action, err := actions.DecodeJSON(data)
	if err != nil {
		return "", err
	}
	return s.Submit(action)
}
