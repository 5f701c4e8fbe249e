package processing

import (
	"encoding/json"

	customlog "github.com/agent-motor/controller/pkg/log"
)

// MessagePublisher defines the interface for publishing messages
type MessagePublisher interface {
	PublishMessage(topic string, data []byte) error
}

// AckTopic is the transport topic execution acknowledgements are published on.
const AckTopic = "motor.ack"

// ack is the wire form of an execution acknowledgement.
type ack struct {
	CommandID   string `json:"command_id"`
	Action      string `json:"action"`
	AgentID     string `json:"agent_id"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	TimestampNs int64  `json:"timestamp_ns"`
}

// AckResultHandler logs execution results and publishes acknowledgements
type AckResultHandler struct {
	logger    customlog.Logger
	publisher MessagePublisher
}

// NewAckResultHandler creates a new acknowledgement result handler
func NewAckResultHandler(logger customlog.Logger, publisher MessagePublisher) *AckResultHandler {
	return &AckResultHandler{
		logger:    logger,
		publisher: publisher,
	}
}

// HandleResult handles one execution result
func (h *AckResultHandler) HandleResult(result *Result) {
	job := result.Job

	response := ack{
		CommandID:   job.CommandID,
		Action:      job.Action.Name(),
		AgentID:     job.Action.AgentID(),
		Status:      "executed",
		TimestampNs: GetCurrentTimestamp(),
	}

	if result.Err != nil {
		h.logger.Errorf("Error executing %s (command: %s): %v", response.Action, job.CommandID, result.Err)
		response.Status = "failed"
		response.Error = result.Err.Error()
	} else {
		h.logger.Debugf("Executed %s for agent '%s' (command: %s)",
			response.Action, response.AgentID, job.CommandID)
	}

	if h.publisher == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		h.logger.Errorf("Failed to serialize ack for command %s: %v", job.CommandID, err)
		return
	}

	if err := h.publisher.PublishMessage(AckTopic, data); err != nil {
		h.logger.Errorf("Failed to publish ack for command %s: %v", job.CommandID, err)
	}
}

// CreateHandlerFunc creates a ResultHandler function for the ActionPool
func (h *AckResultHandler) CreateHandlerFunc() ResultHandler {
	return func(result *Result) {
		if result == nil {
			h.logger.Errorf("Received nil Result")
			return
		}
		h.HandleResult(result)
	}
}
