package zeromq

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/agent-motor/controller/pkg/actions"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubRouter struct {
	submitted []actions.Action
	err       error
}

func (s *stubRouter) Submit(a actions.Action) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.submitted = append(s.submitted, a)
	return "cmd-1", nil
}

func TestDispatchRejectsMalformedEnvelope(t *testing.T) {
	d := NewMessageDispatcher(testLogger())

	if _, err := d.Dispatch([]byte("not json")); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
	if _, err := d.Dispatch([]byte(`{"timestamp":1}`)); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage for missing type, got %v", err)
	}
}

func TestDispatchUnknownType(t *testing.T) {
	d := NewMessageDispatcher(testLogger())

	_, err := d.Dispatch([]byte(`{"type":"BOGUS","timestamp":1}`))
	if !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("expected ErrUnknownMessageType, got %v", err)
	}
}

func TestActionSubmitHandlerAccepts(t *testing.T) {
	router := &stubRouter{}
	d := NewMessageDispatcher(testLogger())
	d.RegisterHandler(MsgTypeActionSubmit, NewActionSubmitHandler(router, testLogger()))

	raw := `{"type":"ACTION_SUBMIT","timestamp":1,"data":{"action":"turn_left","agent_id":"agent_01","rotation_degrees":45}}`
	reply, err := d.Dispatch([]byte(raw))
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if reply.Type != MsgTypeActionAck {
		t.Fatalf("expected %s reply, got %s", MsgTypeActionAck, reply.Type)
	}

	payload, ok := reply.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("reply data has wrong shape: %T", reply.Data)
	}
	if payload["command_id"] != "cmd-1" || payload["action"] != "turn_left" || payload["status"] != "accepted" {
		t.Fatalf("unexpected ack payload: %v", payload)
	}

	if len(router.submitted) != 1 {
		t.Fatalf("expected 1 submitted action, got %d", len(router.submitted))
	}
	if _, ok := router.submitted[0].(actions.TurnLeft); !ok {
		t.Fatalf("expected TurnLeft, got %T", router.submitted[0])
	}
}

func TestActionSubmitHandlerRejectsBadAction(t *testing.T) {
	router := &stubRouter{}
	d := NewMessageDispatcher(testLogger())
	d.RegisterHandler(MsgTypeActionSubmit, NewActionSubmitHandler(router, testLogger()))

	raw := `{"type":"ACTION_SUBMIT","timestamp":1,"data":{"action":"warp_drive","agent_id":"agent_01"}}`
	if _, err := d.Dispatch([]byte(raw)); !errors.Is(err, actions.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if len(router.submitted) != 0 {
		t.Fatalf("bad action must not reach the router")
	}
}

type stubConfigProvider struct{ yaml []byte }

func (s *stubConfigProvider) GetCurrentConfigYAML() ([]byte, error) { return s.yaml, nil }

func TestConfigHandlerServesYAML(t *testing.T) {
	provider := &stubConfigProvider{yaml: []byte("version: \"1.0\"\n")}
	d := NewMessageDispatcher(testLogger())
	d.RegisterHandler(MsgTypeConfigRequest, NewConfigHandler(provider, testLogger()))

	reply, err := d.Dispatch([]byte(`{"type":"CONFIG_REQUEST","timestamp":1}`))
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if reply.Type != MsgTypeConfigResponse {
		t.Fatalf("expected %s, got %s", MsgTypeConfigResponse, reply.Type)
	}
	payload := reply.Data.(map[string]interface{})
	if payload["config_yaml"] != "version: \"1.0\"\n" {
		t.Fatalf("unexpected config payload: %v", payload)
	}
}

type recordingPublisher struct {
	topics []string
	frames [][]byte
}

func (p *recordingPublisher) PublishMessage(topic string, data []byte) error {
	p.topics = append(p.topics, topic)
	p.frames = append(p.frames, data)
	return nil
}

type prefixTopics struct{}

func (prefixTopics) AgentTopic(agentID string) string { return "motor.agent." + agentID }

func TestRemoteActuatorPublishesWireForm(t *testing.T) {
	pub := &recordingPublisher{}
	actuator := NewRemoteActuator(pub, prefixTopics{}, testLogger())

	a := actions.NewMoveForward("agent_01", 0.25)
	if err := a.Act(actuator); err != nil {
		t.Fatalf("actuate failed: %v", err)
	}

	if len(pub.topics) != 1 || pub.topics[0] != "motor.agent.agent_01" {
		t.Fatalf("unexpected topics: %v", pub.topics)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(pub.frames[0], &obj); err != nil {
		t.Fatalf("published frame is not valid JSON: %v", err)
	}
	if obj["action"] != "move_forward" || obj["agent_id"] != "agent_01" || obj["distance"] != 0.25 {
		t.Fatalf("unexpected wire object: %v", obj)
	}

	decoded, err := actions.Decode(obj)
	if err != nil {
		t.Fatalf("published frame does not decode: %v", err)
	}
	if decoded != a {
		t.Fatalf("round trip mismatch: %#v != %#v", decoded, a)
	}
}
