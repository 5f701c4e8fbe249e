package actions

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode errors. All three conditions are fail-fast: a partially valid wire
// object never yields a partially populated action.
var (
	// ErrMissingAction reports a wire object without the "action" key.
	ErrMissingAction = errors.New(`action object missing "action" key`)
	// ErrUnknownAction reports a discriminator that matches no variant.
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingField reports a required field absent from the wire object.
	ErrMissingField = errors.New("missing action field")
	// ErrInvalidField reports a field whose value has the wrong type, or a
	// vector/quaternion sequence of the wrong length.
	ErrInvalidField = errors.New("invalid action field")
)

// decodeFunc builds one variant from a wire object, extracting exactly the
// fields that variant declares.
type decodeFunc func(obj map[string]interface{}) (Action, error)

// decoders is the dispatch table mapping every known wire token to its
// variant constructor. It is the single extension point: a new variant means
// one new entry, never a change to Decode itself.
var decoders = map[string]decodeFunc{
	nameLookDown:          decodeLookDown,
	nameLookUp:            decodeLookUp,
	nameMoveForward:       decodeMoveForward,
	nameMoveTangentially:  decodeMoveTangentially,
	nameOrientHorizontal:  decodeOrientHorizontal,
	nameOrientVertical:    decodeOrientVertical,
	nameSetAgentPitch:     decodeSetAgentPitch,
	nameSetAgentPose:      decodeSetAgentPose,
	nameSetSensorPitch:    decodeSetSensorPitch,
	nameSetSensorPose:     decodeSetSensorPose,
	nameSetSensorRotation: decodeSetSensorRotation,
	nameSetYaw:            decodeSetYaw,
	nameTurnLeft:          decodeTurnLeft,
	nameTurnRight:         decodeTurnRight,
}

// Decode reconstructs an action from its generic wire representation.
// Keys a variant does not declare are ignored; anything else wrong with the
// object (no "action" key, unknown discriminator, missing or malformed
// field) fails immediately with a distinct error.
func Decode(obj map[string]interface{}) (Action, error) {
	v, ok := obj["action"]
	if !ok {
		return nil, ErrMissingAction
	}
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf(`%w: "action" is not a string`, ErrInvalidField)
	}
	decode, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return decode(obj)
}

// DecodeJSON parses data as a single flat JSON object and decodes it.
func DecodeJSON(data []byte) (Action, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid action JSON: %w", err)
	}
	return Decode(obj)
}

// --- Field extraction helpers ---

func stringField(obj map[string]interface{}, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrInvalidField, key)
	}
	return s, nil
}

func floatField(obj map[string]interface{}, key string) (float64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidField, key)
	}
	return f, nil
}

// sequenceField extracts an ordered numeric sequence of exactly arity
// elements. The length check is deliberate: a wrong-length vector or
// quaternion is malformed input, not a best-effort value.
func sequenceField(obj map[string]interface{}, key string, arity int) ([]float64, error) {
	v, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	seq, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a sequence", ErrInvalidField, key)
	}
	if len(seq) != arity {
		return nil, fmt.Errorf("%w: %q has %d elements, want %d", ErrInvalidField, key, len(seq), arity)
	}
	out := make([]float64, arity)
	for i, e := range seq {
		f, err := toFloat(e)
		if err != nil {
			return nil, fmt.Errorf("%w: %q element %d is not a number", ErrInvalidField, key, i)
		}
		out[i] = f
	}
	return out, nil
}

func vectorField(obj map[string]interface{}, key string) (VectorXYZ, error) {
	seq, err := sequenceField(obj, key, 3)
	if err != nil {
		return VectorXYZ{}, err
	}
	return VectorXYZ{seq[0], seq[1], seq[2]}, nil
}

func quaternionField(obj map[string]interface{}, key string) (QuaternionWXYZ, error) {
	seq, err := sequenceField(obj, key, 4)
	if err != nil {
		return QuaternionWXYZ{}, err
	}
	return QuaternionWXYZ{seq[0], seq[1], seq[2], seq[3]}, nil
}

// toFloat accepts the numeric representations a wire object can reasonably
// carry: float64 from JSON decoding, plus int variants from hand-built maps.
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	}
	return 0, errors.New("not a number")
}

// --- Per-variant constructors ---

func decodeLookDown(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	constraint, err := floatField(obj, "constraint_degrees")
	if err != nil {
		return nil, err
	}
	return NewLookDownConstrained(agentID, rotation, constraint), nil
}

func decodeLookUp(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	constraint, err := floatField(obj, "constraint_degrees")
	if err != nil {
		return nil, err
	}
	return NewLookUpConstrained(agentID, rotation, constraint), nil
}

func decodeMoveForward(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	distance, err := floatField(obj, "distance")
	if err != nil {
		return nil, err
	}
	return NewMoveForward(agentID, distance), nil
}

func decodeMoveTangentially(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	distance, err := floatField(obj, "distance")
	if err != nil {
		return nil, err
	}
	direction, err := vectorField(obj, "direction")
	if err != nil {
		return nil, err
	}
	return NewMoveTangentially(agentID, distance, direction), nil
}

func decodeOrientHorizontal(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	left, err := floatField(obj, "left_distance")
	if err != nil {
		return nil, err
	}
	forward, err := floatField(obj, "forward_distance")
	if err != nil {
		return nil, err
	}
	return NewOrientHorizontal(agentID, rotation, left, forward), nil
}

func decodeOrientVertical(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	down, err := floatField(obj, "down_distance")
	if err != nil {
		return nil, err
	}
	forward, err := floatField(obj, "forward_distance")
	if err != nil {
		return nil, err
	}
	return NewOrientVertical(agentID, rotation, down, forward), nil
}

func decodeSetAgentPitch(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	pitch, err := floatField(obj, "pitch_degrees")
	if err != nil {
		return nil, err
	}
	return NewSetAgentPitch(agentID, pitch), nil
}

func decodeSetAgentPose(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	location, err := vectorField(obj, "location")
	if err != nil {
		return nil, err
	}
	rotation, err := quaternionField(obj, "rotation_quat")
	if err != nil {
		return nil, err
	}
	return NewSetAgentPose(agentID, location, rotation), nil
}

func decodeSetSensorPitch(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	pitch, err := floatField(obj, "pitch_degrees")
	if err != nil {
		return nil, err
	}
	return NewSetSensorPitch(agentID, pitch), nil
}

func decodeSetSensorPose(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	location, err := vectorField(obj, "location")
	if err != nil {
		return nil, err
	}
	rotation, err := quaternionField(obj, "rotation_quat")
	if err != nil {
		return nil, err
	}
	return NewSetSensorPose(agentID, location, rotation), nil
}

func decodeSetSensorRotation(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := quaternionField(obj, "rotation_quat")
	if err != nil {
		return nil, err
	}
	return NewSetSensorRotation(agentID, rotation), nil
}

func decodeSetYaw(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	return NewSetYaw(agentID, rotation), nil
}

func decodeTurnLeft(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	return NewTurnLeft(agentID, rotation), nil
}

func decodeTurnRight(obj map[string]interface{}) (Action, error) {
	agentID, err := stringField(obj, "agent_id")
	if err != nil {
		return nil, err
	}
	rotation, err := floatField(obj, "rotation_degrees")
	if err != nil {
		return nil, err
	}
	return NewTurnRight(agentID, rotation), nil
}
