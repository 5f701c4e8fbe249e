package zeromq

import (
	"fmt"
	"log"

	"github.com/agent-motor/controller/pkg/actions"
)

// ActionPublisher publishes an encoded action under a topic. Satisfied by
// MessageSender.
type ActionPublisher interface {
	PublishMessage(topic string, data []byte) error
}

// TopicResolver maps an agent id to the topic its actions are published on.
type TopicResolver interface {
	AgentTopic(agentID string) string
}

// RemoteActuator delivers actions to agents by publishing their wire form
// on per-agent topics. Each entry point encodes the action and forwards it
// unchanged, so the subscriber sees exactly the object that was routed.
type RemoteActuator struct {
	publisher ActionPublisher
	topics    TopicResolver
	logger    *log.Logger
}

func NewRemoteActuator(publisher ActionPublisher, topics TopicResolver, logger *log.Logger) *RemoteActuator {
	return &RemoteActuator{publisher: publisher, topics: topics, logger: logger}
}

var _ actions.Actuator = (*RemoteActuator)(nil)

func (r *RemoteActuator) publish(a actions.Action) error {
	data, err := actions.EncodeJSON(a)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", a.Name(), err)
	}

	topic := r.topics.AgentTopic(a.AgentID())
	if err := r.publisher.PublishMessage(topic, data); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", a.Name(), topic, err)
	}

	r.logger.Printf("Published %s to %s", a.Name(), topic)
	return nil
}

func (r *RemoteActuator) ActuateLookDown(a actions.LookDown) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateLookUp(a actions.LookUp) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateMoveForward(a actions.MoveForward) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateMoveTangentially(a actions.MoveTangentially) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateOrientHorizontal(a actions.OrientHorizontal) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateOrientVertical(a actions.OrientVertical) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetAgentPitch(a actions.SetAgentPitch) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetAgentPose(a actions.SetAgentPose) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetSensorPitch(a actions.SetSensorPitch) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetSensorPose(a actions.SetSensorPose) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetSensorRotation(a actions.SetSensorRotation) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateSetYaw(a actions.SetYaw) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateTurnLeft(a actions.TurnLeft) error {
	return r.publish(a)
}

func (r *RemoteActuator) ActuateTurnRight(a actions.TurnRight) error {
	return r.publish(a)
}
