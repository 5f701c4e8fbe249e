package processing

import (
	"fmt"

	"github.com/agent-motor/controller/pkg/actions"
	customlog "github.com/agent-motor/controller/pkg/log"
)

// ActuatorExecutor executes queued jobs by dispatching each action to its
// specialized entry point on the actuator.
type ActuatorExecutor struct {
	logger   customlog.Logger
	actuator actions.Actuator
}

// NewActuatorExecutor creates a new actuator-backed executor
func NewActuatorExecutor(logger customlog.Logger, actuator actions.Actuator) *ActuatorExecutor {
	return &ActuatorExecutor{
		logger:   logger,
		actuator: actuator,
	}
}

// Execute runs one job against the actuator
func (e *ActuatorExecutor) Execute(job *Job) error {
	action := job.Action

	e.logger.Debugf("Executing %s for agent '%s' (command: %s)",
		action.Name(), action.AgentID(), job.CommandID)

	if err := action.Act(e.actuator); err != nil {
		return fmt.Errorf("actuating %s for agent '%s': %w", action.Name(), action.AgentID(), err)
	}

	return nil
}

// CreateProcessorFunc creates an ActionProcessor for use with the ActionDirector
func (e *ActuatorExecutor) CreateProcessorFunc() ActionProcessor {
	return func(job *Job) error {
		return e.Execute(job)
	}
}
