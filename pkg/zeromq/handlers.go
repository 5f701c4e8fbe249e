package zeromq

import (
	"fmt"
	"log"
	"time"

	"github.com/agent-motor/controller/pkg/actions"
)

// ConfigProvider exposes the current motor configuration as YAML.
type ConfigProvider interface {
	GetCurrentConfigYAML() ([]byte, error)
}

// ConfigHandler answers CONFIG_REQUEST messages with the active configuration.
type ConfigHandler struct {
	provider ConfigProvider
	logger   *log.Logger
}

func NewConfigHandler(provider ConfigProvider, logger *log.Logger) *ConfigHandler {
	return &ConfigHandler{provider: provider, logger: logger}
}

func (h *ConfigHandler) HandleMessage(msg *ZeroMQMessage) (*ZeroMQMessage, error) {
	if msg.Type != MsgTypeConfigRequest {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrInvalidMessage, MsgTypeConfigRequest, msg.Type)
	}

	yamlData, err := h.provider.GetCurrentConfigYAML()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}

	h.logger.Printf("Serving config request (%d bytes)", len(yamlData))
	return &ZeroMQMessage{
		Type:      MsgTypeConfigResponse,
		Timestamp: time.Now().UnixMilli(),
		Data:      map[string]interface{}{"config_yaml": string(yamlData)},
	}, nil
}

// ActionRouter accepts a decoded action for execution and returns the
// command id assigned to it.
type ActionRouter interface {
	Submit(action actions.Action) (string, error)
}

// ActionSubmitHandler decodes ACTION_SUBMIT payloads and hands the action
// to the router. The payload data is the wire object itself.
type ActionSubmitHandler struct {
	router ActionRouter
	logger *log.Logger
}

func NewActionSubmitHandler(router ActionRouter, logger *log.Logger) *ActionSubmitHandler {
	return &ActionSubmitHandler{router: router, logger: logger}
}

func (h *ActionSubmitHandler) HandleMessage(msg *ZeroMQMessage) (*ZeroMQMessage, error) {
	if msg.Type != MsgTypeActionSubmit {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrInvalidMessage, MsgTypeActionSubmit, msg.Type)
	}

	obj, ok := msg.Data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: data is not an action object", ErrInvalidMessage)
	}

	action, err := actions.Decode(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to decode action: %w", err)
	}

	commandID, err := h.router.Submit(action)
	if err != nil {
		return nil, fmt.Errorf("failed to submit action: %w", err)
	}

	h.logger.Printf("Accepted %s for agent %s (command %s)", action.Name(), action.AgentID(), commandID)
	return &ZeroMQMessage{
		Type:      MsgTypeActionAck,
		Timestamp: time.Now().UnixMilli(),
		Data: map[string]interface{}{
			"command_id": commandID,
			"action":     action.Name(),
			"agent_id":   action.AgentID(),
			"status":     "accepted",
		},
	}, nil
}
