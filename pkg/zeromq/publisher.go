package zeromq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// ConfigUpdateTopic carries full configuration snapshots to subscribers.
const ConfigUpdateTopic = "motor.config"

// ConfigPublisher pushes configuration snapshots over the PUB socket so
// agents pick up changes without re-requesting.
type ConfigPublisher struct {
	sender *MessageSender
	logger *log.Logger
}

func NewConfigPublisher(sender *MessageSender, logger *log.Logger) *ConfigPublisher {
	return &ConfigPublisher{sender: sender, logger: logger}
}

// PublishConfigUpdate broadcasts the given YAML snapshot on the config topic.
func (p *ConfigPublisher) PublishConfigUpdate(yamlData []byte) error {
	msg := &ZeroMQMessage{
		Type:      MsgTypeConfigUpdate,
		Timestamp: time.Now().UnixMilli(),
		Data:      map[string]interface{}{"config_yaml": string(yamlData)},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal config update: %w", err)
	}

	if err := p.sender.PublishMessage(ConfigUpdateTopic, data); err != nil {
		return fmt.Errorf("failed to publish config update: %w", err)
	}

	p.logger.Printf("Published config update (%d bytes)", len(yamlData))
	return nil
}

// RegisterConfigHandlers wires the config request handler into the service
// dispatcher.
func RegisterConfigHandlers(service *ZeroMQService, provider ConfigProvider, logger *log.Logger) {
	service.Dispatcher.RegisterHandler(MsgTypeConfigRequest, NewConfigHandler(provider, logger))
}
