package actions

import "fmt"

// Actuator executes motor actions against a physical or simulated agent,
// one specialized entry point per variant. Implementations live outside this
// package and may fail for environment reasons the action model knows
// nothing about.
type Actuator interface {
	ActuateLookDown(a LookDown) error
	ActuateLookUp(a LookUp) error
	ActuateMoveForward(a MoveForward) error
	ActuateMoveTangentially(a MoveTangentially) error
	ActuateOrientHorizontal(a OrientHorizontal) error
	ActuateOrientVertical(a OrientVertical) error
	ActuateSetAgentPitch(a SetAgentPitch) error
	ActuateSetAgentPose(a SetAgentPose) error
	ActuateSetSensorPitch(a SetSensorPitch) error
	ActuateSetSensorPose(a SetSensorPose) error
	ActuateSetSensorRotation(a SetSensorRotation) error
	ActuateSetYaw(a SetYaw) error
	ActuateTurnLeft(a TurnLeft) error
	ActuateTurnRight(a TurnRight) error
}

// Sampler produces fully-populated action instances for an agent, one
// specialized entry point per variant. How the field values are chosen
// (policy, randomization) is the sampler's business.
type Sampler interface {
	SampleLookDown(agentID string) (LookDown, error)
	SampleLookUp(agentID string) (LookUp, error)
	SampleMoveForward(agentID string) (MoveForward, error)
	SampleMoveTangentially(agentID string) (MoveTangentially, error)
	SampleOrientHorizontal(agentID string) (OrientHorizontal, error)
	SampleOrientVertical(agentID string) (OrientVertical, error)
	SampleSetAgentPitch(agentID string) (SetAgentPitch, error)
	SampleSetAgentPose(agentID string) (SetAgentPose, error)
	SampleSetSensorPitch(agentID string) (SetSensorPitch, error)
	SampleSetSensorPose(agentID string) (SetSensorPose, error)
	SampleSetSensorRotation(agentID string) (SetSensorRotation, error)
	SampleSetYaw(agentID string) (SetYaw, error)
	SampleTurnLeft(agentID string) (TurnLeft, error)
	SampleTurnRight(agentID string) (TurnRight, error)
}

// sampleFunc routes one variant's sampling to the sampler entry point that
// produces exactly that variant.
type sampleFunc func(agentID string, s Sampler) (Action, error)

var samplers = map[string]sampleFunc{
	nameLookDown: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleLookDown(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameLookUp: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleLookUp(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameMoveForward: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleMoveForward(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameMoveTangentially: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleMoveTangentially(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameOrientHorizontal: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleOrientHorizontal(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameOrientVertical: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleOrientVertical(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetAgentPitch: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetAgentPitch(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetAgentPose: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetAgentPose(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetSensorPitch: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetSensorPitch(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetSensorPose: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetSensorPose(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetSensorRotation: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetSensorRotation(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameSetYaw: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleSetYaw(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameTurnLeft: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleTurnLeft(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
	nameTurnRight: func(id string, s Sampler) (Action, error) {
		a, err := s.SampleTurnRight(id)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
}

// SampleByName asks the sampler for an instance of the variant identified by
// its wire token. Unknown tokens fail with ErrUnknownAction.
func SampleByName(name, agentID string, s Sampler) (Action, error) {
	sample, ok := samplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return sample(agentID, s)
}
